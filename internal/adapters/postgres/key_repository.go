package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Schema, for reference:
//
//	CREATE TABLE cipher_keys (
//	    id         UUID PRIMARY KEY,
//	    label      TEXT NOT NULL UNIQUE,
//	    cipher     TEXT NOT NULL,
//	    material   TEXT NOT NULL, -- sealed, base64
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);

// keyRepository persists the keyring in postgres. Key material is sealed
// before it touches a row and opened on the way back out.
type keyRepository struct {
	db     *DB
	sealer ports.KeySealer
	log    zerolog.Logger
}

var _ ports.KeyRepository = (*keyRepository)(nil)

// NewKeyRepository creates a new repository for keyring operations.
func NewKeyRepository(db *DB, sealer ports.KeySealer, baseLogger *zerolog.Logger) ports.KeyRepository {
	return &keyRepository{
		db:     db,
		sealer: sealer,
		log:    baseLogger.With().Str("component", "key_repo").Logger(),
	}
}

// Save seals the key material and inserts a new record.
func (r *keyRepository) Save(ctx context.Context, record *domain.KeyRecord) error {
	sealed, err := r.sealer.Seal([]byte(record.Material))
	if err != nil {
		r.log.Error().Err(err).Str("label", record.Label).Msg("Failed to seal key material")
		return err
	}

	query := `
		INSERT INTO cipher_keys (id, label, cipher, material, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.pool.Exec(ctx, query,
		record.ID,
		record.Label,
		record.Cipher,
		base64.StdEncoding.EncodeToString(sealed),
		record.CreatedAt,
	)
	if err != nil {
		r.log.Error().Err(err).Str("label", record.Label).Msg("Failed to insert key record")
		return err
	}

	r.log.Info().Str("label", record.Label).Str("cipher", record.Cipher).Msg("Key saved")
	return nil
}

// GetByID finds a key record by its UUID. Returns (nil, nil) when missing.
func (r *keyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.KeyRecord, error) {
	query := `
		SELECT id, label, cipher, material, created_at
		FROM cipher_keys WHERE id = $1
	`
	return r.scanOne(ctx, r.db.pool.QueryRow(ctx, query, id))
}

// GetByLabel finds a key record by its label. Returns (nil, nil) when missing.
func (r *keyRepository) GetByLabel(ctx context.Context, label string) (*domain.KeyRecord, error) {
	query := `
		SELECT id, label, cipher, material, created_at
		FROM cipher_keys WHERE label = $1
	`
	return r.scanOne(ctx, r.db.pool.QueryRow(ctx, query, label))
}

// List returns all key records, oldest first.
func (r *keyRepository) List(ctx context.Context) ([]*domain.KeyRecord, error) {
	query := `
		SELECT id, label, cipher, material, created_at
		FROM cipher_keys ORDER BY created_at ASC
	`
	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to list key records")
		return nil, err
	}
	defer rows.Close()

	var records []*domain.KeyRecord
	for rows.Next() {
		record, err := r.scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes a key record.
func (r *keyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM cipher_keys WHERE id = $1`, id)
	if err != nil {
		r.log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete key record")
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no key with id %s", id)
	}
	return nil
}

func (r *keyRepository) scanOne(ctx context.Context, row pgx.Row) (*domain.KeyRecord, error) {
	record, err := r.scanRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return record, err
}

func (r *keyRepository) scanRecord(scan func(dest ...any) error) (*domain.KeyRecord, error) {
	var record domain.KeyRecord
	var encoded string

	if err := scan(&record.ID, &record.Label, &record.Cipher, &encoded, &record.CreatedAt); err != nil {
		return nil, err
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		r.log.Error().Err(err).Str("label", record.Label).Msg("Stored key material is not valid base64")
		return nil, err
	}
	material, err := r.sealer.Open(sealed)
	if err != nil {
		r.log.Error().Err(err).Str("label", record.Label).Msg("Failed to open stored key material")
		return nil, err
	}
	record.Material = string(material)

	return &record, nil
}
