package ports

import (
	"ClassicalCrypto/internal/core/domain"
	"context"

	"github.com/google/uuid"
)

// KeyRepository defines the persistence operations for saved cipher keys.
// Lookups return (nil, nil) when no record matches.
type KeyRepository interface {
	// Save stores a new key record. Labels are unique; saving a duplicate
	// label fails.
	Save(ctx context.Context, record *domain.KeyRecord) error

	// GetByID finds a key record by its internal UUID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KeyRecord, error)

	// GetByLabel finds a key record by its user-chosen label.
	GetByLabel(ctx context.Context, label string) (*domain.KeyRecord, error)

	// List returns all key records, oldest first.
	List(ctx context.Context) ([]*domain.KeyRecord, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
