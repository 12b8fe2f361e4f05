package keyring

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// memoryKeyring implements ports.KeyRepository in process memory. It is the
// default keyring: keys vanish when the process exits, so users are asked
// to remember their keys in perpetuity.
type memoryKeyring struct {
	log     zerolog.Logger
	mu      sync.RWMutex
	byID    map[uuid.UUID]*domain.KeyRecord
	byLabel map[string]uuid.UUID
}

var _ ports.KeyRepository = (*memoryKeyring)(nil)

// NewMemoryKeyring creates a new, empty in-memory keyring.
func NewMemoryKeyring(baseLogger *zerolog.Logger) ports.KeyRepository {
	return &memoryKeyring{
		log:     baseLogger.With().Str("component", "memory_keyring").Logger(),
		byID:    make(map[uuid.UUID]*domain.KeyRecord),
		byLabel: make(map[string]uuid.UUID),
	}
}

func (k *memoryKeyring) Save(ctx context.Context, record *domain.KeyRecord) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.byLabel[record.Label]; exists {
		return fmt.Errorf("a key labeled %q already exists", record.Label)
	}
	if _, exists := k.byID[record.ID]; exists {
		return fmt.Errorf("a key with id %s already exists", record.ID)
	}

	stored := *record
	k.byID[record.ID] = &stored
	k.byLabel[record.Label] = record.ID

	k.log.Info().Str("label", record.Label).Str("cipher", record.Cipher).Msg("Key saved")
	return nil
}

func (k *memoryKeyring) GetByID(ctx context.Context, id uuid.UUID) (*domain.KeyRecord, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	record, ok := k.byID[id]
	if !ok {
		return nil, nil
	}
	found := *record
	return &found, nil
}

func (k *memoryKeyring) GetByLabel(ctx context.Context, label string) (*domain.KeyRecord, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	id, ok := k.byLabel[label]
	if !ok {
		return nil, nil
	}
	found := *k.byID[id]
	return &found, nil
}

func (k *memoryKeyring) List(ctx context.Context) ([]*domain.KeyRecord, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	records := make([]*domain.KeyRecord, 0, len(k.byID))
	for _, record := range k.byID {
		found := *record
		records = append(records, &found)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.Before(records[j].CreatedAt)
	})
	return records, nil
}

func (k *memoryKeyring) Delete(ctx context.Context, id uuid.UUID) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	record, ok := k.byID[id]
	if !ok {
		return fmt.Errorf("no key with id %s", id)
	}
	delete(k.byLabel, record.Label)
	delete(k.byID, id)

	k.log.Info().Str("label", record.Label).Msg("Key deleted")
	return nil
}
