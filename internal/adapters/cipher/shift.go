// Package cipher implements the classical cryptosystems as keyed symbol
// permutations over the Latin Alphabet, one engine per file, all behind the
// same ports.Cipher contract.
//
// None of these systems is secure, and we model them faithfully, weaknesses
// included. The shift cipher in particular has 26 keys; an attacker with a
// pencil breaks it before their coffee cools.
package cipher

import (
	"fmt"
	"strconv"
	"strings"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// NameShift identifies the Latin Shift Cipher.
const NameShift = "shift"

// ShiftKey is a key for the Latin Shift Cipher: a single residue in [0, 26).
// Note that 0 is a valid key, under which encryption is the identity; the
// mathematical description does not disallow sending messages in the clear,
// and neither do we.
type ShiftKey struct {
	k domain.Residue
}

// NewShiftKey validates an integer as a shift key.
func NewShiftKey(value int) (ShiftKey, error) {
	if value < 0 || value >= domain.Modulus {
		return ShiftKey{}, fmt.Errorf("%w: shift %d is outside the range [0, %d)", domain.ErrInvalidKey, value, domain.Modulus)
	}
	return ShiftKey{k: domain.ResidueFromInt(value)}, nil
}

// ParseShiftKey parses a shift key from exported material, e.g. "11".
func ParseShiftKey(material string) (ShiftKey, error) {
	n, err := strconv.Atoi(strings.TrimSpace(material))
	if err != nil {
		return ShiftKey{}, fmt.Errorf("%w: %q does not represent an integer", domain.ErrInvalidKey, material)
	}
	return NewShiftKey(n)
}

// RandomShiftKey picks a key uniformly at random from the key space.
// Uniform, but not secure; see domain.RandomResidue.
func RandomShiftKey() ShiftKey {
	return ShiftKey{k: domain.RandomResidue()}
}

// Value returns the shift as an integer.
func (k ShiftKey) Value() int {
	return k.k.Int()
}

// shiftCipher implements ports.Cipher for the Latin Shift Cipher:
// E(p) = p + k and D(c) = c - k in Z/26Z.
type shiftCipher struct {
	key ShiftKey
	log zerolog.Logger
}

var _ ports.Cipher = (*shiftCipher)(nil)

// NewShift binds a validated key to a shift cipher engine.
func NewShift(key ShiftKey, baseLogger *zerolog.Logger) ports.Cipher {
	log := baseLogger.With().Str("component", "shift_cipher").Logger()
	log.Debug().Msg("Shift cipher initialized")
	return &shiftCipher{key: key, log: log}
}

func (c *shiftCipher) Name() string {
	return NameShift
}

func (c *shiftCipher) Encrypt(msg domain.Message) domain.Ciphertext {
	rs := msg.Residues()
	for i, r := range rs {
		rs[i] = r.Add(c.key.k)
	}
	return domain.CiphertextFromResidues(rs)
}

func (c *shiftCipher) Decrypt(ct domain.Ciphertext) domain.Message {
	rs := ct.Residues()
	for i, r := range rs {
		rs[i] = r.Sub(c.key.k)
	}
	return domain.MessageFromResidues(rs)
}

// ExportKey renders the key, insecurely. Please remember it in perpetuity.
func (c *shiftCipher) ExportKey() string {
	return strconv.Itoa(c.key.Value())
}
