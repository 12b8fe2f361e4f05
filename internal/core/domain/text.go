package domain

import "strings"

// Message and Ciphertext are structurally identical sequences of ring
// elements, but deliberately distinct types: the compiler rejects passing a
// ciphertext where a plaintext is expected, so "encrypt twice" or "decrypt
// plaintext" mistakes cannot survive a build.

// Message is a plaintext of arbitrary length over the Latin Alphabet.
type Message struct {
	rs []Residue
}

// Ciphertext is an encrypted text of arbitrary length over the Latin
// Alphabet. It is produced by a cipher's Encrypt, or parsed from an
// externally supplied string (e.g. something you were handed to crack).
type Ciphertext struct {
	rs []Residue
}

// NewMessage parses a plaintext from a raw string. Case is folded; any
// character outside the Latin Alphabet (including spaces and punctuation)
// fails with ErrInvalidInput naming the offender.
func NewMessage(s string) (Message, error) {
	rs, err := encode(s)
	if err != nil {
		return Message{}, err
	}
	return Message{rs: rs}, nil
}

// NewCiphertext parses a ciphertext from a raw string under the same policy
// as NewMessage. By convention ciphertexts are written in ALL CAPS, but
// parsing ignores case.
func NewCiphertext(s string) (Ciphertext, error) {
	rs, err := encode(s)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{rs: rs}, nil
}

// MessageFromResidues builds a plaintext directly from ring elements.
// The slice is copied; the caller keeps ownership of its argument.
func MessageFromResidues(rs []Residue) Message {
	return Message{rs: append([]Residue(nil), rs...)}
}

// CiphertextFromResidues builds a ciphertext directly from ring elements.
func CiphertextFromResidues(rs []Residue) Ciphertext {
	return Ciphertext{rs: append([]Residue(nil), rs...)}
}

func encode(s string) ([]Residue, error) {
	rs := make([]Residue, 0, len(s))
	for _, c := range s {
		r, err := ResidueFromChar(c)
		if err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, nil
}

// Residues returns a copy of the underlying ring elements.
func (m Message) Residues() []Residue {
	return append([]Residue(nil), m.rs...)
}

// Len returns the number of symbols in the message.
func (m Message) Len() int {
	return len(m.rs)
}

// Equal reports element-wise equality.
func (m Message) Equal(other Message) bool {
	return residuesEqual(m.rs, other.rs)
}

// String renders the plaintext in lowercase.
func (m Message) String() string {
	return decode(m.rs)
}

// Residues returns a copy of the underlying ring elements.
func (c Ciphertext) Residues() []Residue {
	return append([]Residue(nil), c.rs...)
}

// Len returns the number of symbols in the ciphertext.
func (c Ciphertext) Len() int {
	return len(c.rs)
}

// Equal reports element-wise equality.
func (c Ciphertext) Equal(other Ciphertext) bool {
	return residuesEqual(c.rs, other.rs)
}

// String renders the ciphertext in ALL CAPS, following Stinson's convention.
func (c Ciphertext) String() string {
	return strings.ToUpper(decode(c.rs))
}

func decode(rs []Residue) string {
	var b strings.Builder
	b.Grow(len(rs))
	for _, r := range rs {
		b.WriteRune(r.Char())
	}
	return b.String()
}

func residuesEqual(a, b []Residue) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
