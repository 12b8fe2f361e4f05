package ports

import "ClassicalCrypto/internal/core/domain"

// Cipher is a keyed symbol permutation over the Latin Alphabet. Shift,
// affine, substitution, and Vigenère are all variants of this one contract,
// so the round-trip law is stated once for everybody:
//
//	Decrypt(Encrypt(m)) == m for every message m and every valid key.
//
// The key is validated when the cipher is constructed and bound to the
// instance; Encrypt and Decrypt are total and cannot fail. Implementations
// must not mutate their key or their inputs, so a single instance is safe
// for concurrent use.
type Cipher interface {
	// Name identifies the cryptosystem, e.g. "shift".
	Name() string

	// Encrypt applies the keyed permutation to each plaintext symbol
	// independently.
	Encrypt(msg domain.Message) domain.Ciphertext

	// Decrypt applies the exact algebraic inverse of Encrypt.
	Decrypt(ct domain.Ciphertext) domain.Message

	// ExportKey renders the key as a string the factory can parse back.
	// Nothing about this is secure key handling; use caution, or better
	// yet, don't use this library for anything that matters.
	ExportKey() string
}
