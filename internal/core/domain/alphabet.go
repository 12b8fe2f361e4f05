package domain

import (
	"fmt"
	"math/rand"
)

// The Latin Alphabet is encoded in the ring of integers modulo 26: each
// letter maps to exactly one residue in [0, 26) and back. This ring is the
// plaintext space, the ciphertext space, and (for the shift cipher) the
// key space.

// Modulus is the size of the Latin Alphabet, i.e. the m in Z/mZ.
const Modulus = 26

// Residue is an element of Z/26Z, the position of a letter in the alphabet.
// Always construct residues through ResidueFromInt or ResidueFromChar so the
// inner value stays in canonical form.
type Residue int8

// ResidueFromInt reduces an arbitrary integer to its least nonnegative
// remainder modulo 26.
func ResidueFromInt(n int) Residue {
	m := n % Modulus
	if m < 0 {
		m += Modulus
	}
	return Residue(m)
}

// ResidueFromChar encodes a letter as a ring element. Input is case-folded:
// 'a' and 'A' both map to residue 0. Anything outside the Latin Alphabet is
// rejected with ErrInvalidInput; this is the single normalization policy for
// the whole library (reject, never strip or pass through).
func ResidueFromChar(c rune) (Residue, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return Residue(c - 'a'), nil
	case c >= 'A' && c <= 'Z':
		return Residue(c - 'A'), nil
	default:
		return 0, fmt.Errorf("%w: %q is not a letter of the Latin Alphabet", ErrInvalidInput, c)
	}
}

// RandomResidue picks a ring element uniformly at random.
//
// The source is math/rand, which is uniform but NOT cryptographically
// secure. That is fine here: nothing in this library is secure, and we say
// so out loud rather than hide it.
func RandomResidue() Residue {
	return Residue(rand.Intn(Modulus))
}

// Add computes self + other in Z/26Z.
func (r Residue) Add(other Residue) Residue {
	s := r + other
	if s >= Modulus {
		s -= Modulus
	}
	return s
}

// Sub computes self - other in Z/26Z.
func (r Residue) Sub(other Residue) Residue {
	d := r - other
	if d < 0 {
		d += Modulus
	}
	return d
}

// Mul computes self * other in Z/26Z.
func (r Residue) Mul(other Residue) Residue {
	return Residue(int(r) * int(other) % Modulus)
}

// Int returns the inner value.
func (r Residue) Int() int {
	return int(r)
}

// Char decodes the residue back to its (lowercase) letter.
//
// Panics if the residue is outside [0, 26). That can only happen when a
// developer bypasses the constructors, which is a programming defect rather
// than bad input, so it is not reported as an error.
func (r Residue) Char() rune {
	if r < 0 || r >= Modulus {
		panic(fmt.Sprintf("domain: residue %d is outside Z/%dZ; a constructor was bypassed", r, Modulus))
	}
	return 'a' + rune(r)
}
