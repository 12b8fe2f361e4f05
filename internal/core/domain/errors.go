package domain

import "errors"

// Both failures are detected at construction time, never mid-transform:
// once a key and a container exist, encryption and decryption are total.
var (
	// ErrInvalidInput reports raw text containing a character outside the
	// Latin Alphabet.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidKey reports key material outside the cipher's key space,
	// e.g. a shift outside [0, 26) or an affine multiplier that is not
	// invertible modulo 26.
	ErrInvalidKey = errors.New("invalid key")
)
