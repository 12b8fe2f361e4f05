package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ClassicalCrypto/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func uniqueLabel(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func cleanupTestKey(t *testing.T, id uuid.UUID) {
	t.Helper()
	if _, err := testDB.pool.Exec(context.Background(), "DELETE FROM cipher_keys WHERE id = $1", id); err != nil {
		t.Logf("Warning: failed to cleanup key %s: %v", id, err)
	}
}

func TestKeyRepository_Save_GetByLabel_Roundtrip(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewKeyRepository(testDB, testSealer, &nopLogger)
	ctx := context.Background()

	record := &domain.KeyRecord{
		ID:        uuid.New(),
		Label:     uniqueLabel("midnight"),
		Cipher:    "shift",
		Material:  "11",
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("Failed to save key: %v", err)
	}
	defer cleanupTestKey(t, record.ID)

	found, err := repo.GetByLabel(ctx, record.Label)
	if err != nil {
		t.Fatalf("Failed to get key by label: %v", err)
	}
	if found == nil {
		t.Fatal("GetByLabel: key not found, but should exist")
	}

	if found.ID != record.ID {
		t.Errorf("ID mismatch: got %v, want %v", found.ID, record.ID)
	}
	if found.Cipher != "shift" {
		t.Errorf("Cipher mismatch: got %q", found.Cipher)
	}
	// Material must come back opened, not sealed.
	if found.Material != "11" {
		t.Errorf("Material mismatch: got %q, want \"11\"", found.Material)
	}
}

func TestKeyRepository_MaterialSealedAtRest(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewKeyRepository(testDB, testSealer, &nopLogger)
	ctx := context.Background()

	record := &domain.KeyRecord{
		ID:        uuid.New(),
		Label:     uniqueLabel("sealed"),
		Cipher:    "vigenere",
		Material:  "lemon",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("Failed to save key: %v", err)
	}
	defer cleanupTestKey(t, record.ID)

	var raw string
	err := testDB.pool.QueryRow(ctx, "SELECT material FROM cipher_keys WHERE id = $1", record.ID).Scan(&raw)
	if err != nil {
		t.Fatalf("Failed to read raw row: %v", err)
	}
	if raw == "lemon" {
		t.Error("key material is stored in the clear")
	}
}

func TestKeyRepository_GetByID_Missing(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewKeyRepository(testDB, testSealer, &nopLogger)

	found, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetByID(missing) errored: %v", err)
	}
	if found != nil {
		t.Errorf("GetByID(missing) = %+v, want nil", found)
	}
}

func TestKeyRepository_List_Delete(t *testing.T) {
	nopLogger := zerolog.Nop()
	repo := NewKeyRepository(testDB, testSealer, &nopLogger)
	ctx := context.Background()

	record := &domain.KeyRecord{
		ID:        uuid.New(),
		Label:     uniqueLabel("listed"),
		Cipher:    "affine",
		Material:  "5,8",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Save(ctx, record); err != nil {
		t.Fatalf("Failed to save key: %v", err)
	}
	defer cleanupTestKey(t, record.ID)

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	var seen bool
	for _, r := range records {
		if r.ID == record.ID {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("List did not include the saved record")
	}

	if err := repo.Delete(ctx, record.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, record.ID); err == nil {
		t.Error("deleting a missing record should fail")
	}
}
