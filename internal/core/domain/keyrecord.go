package domain

import (
	"time"

	"github.com/google/uuid"
)

// KeyRecord is a saved cipher key in the keyring.
//
// Material is the cipher's exported key string (see Cipher.ExportKey). The
// postgres keyring seals it at rest; everywhere else it travels in the clear,
// which is exactly as much key hygiene as a classical cipher deserves.
type KeyRecord struct {
	ID        uuid.UUID
	Label     string
	Cipher    string
	Material  string
	CreatedAt time.Time
}
