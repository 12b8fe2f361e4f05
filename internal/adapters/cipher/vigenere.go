package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// NameVigenere identifies the Vigenère cipher.
const NameVigenere = "vigenere"

// Random Vigenère keywords are drawn with a length in [4, 10); long enough
// to not be a glorified shift cipher, short enough to type.
const (
	minRandomKeywordLen = 4
	maxRandomKeywordLen = 10
)

// VigenereKey is a nonempty keyword over the Latin Alphabet. The symbol at
// position i of a text is shifted by keyword[i mod len(keyword)], so each
// transform is still per-symbol and stateless given the position.
type VigenereKey struct {
	shifts []domain.Residue
}

// NewVigenereKey validates a keyword as a Vigenère key. Case is folded;
// an empty keyword or one containing a non-letter is rejected.
func NewVigenereKey(keyword string) (VigenereKey, error) {
	if keyword == "" {
		return VigenereKey{}, fmt.Errorf("%w: a Vigenère keyword must not be empty", domain.ErrInvalidKey)
	}
	shifts := make([]domain.Residue, 0, len(keyword))
	for _, c := range keyword {
		r, err := domain.ResidueFromChar(c)
		if err != nil {
			return VigenereKey{}, fmt.Errorf("%w: %q is not a letter of the Latin Alphabet", domain.ErrInvalidKey, c)
		}
		shifts = append(shifts, r)
	}
	return VigenereKey{shifts: shifts}, nil
}

// ParseVigenereKey parses a key from exported material, i.e. the keyword.
func ParseVigenereKey(material string) (VigenereKey, error) {
	return NewVigenereKey(strings.TrimSpace(material))
}

// RandomVigenereKey picks a random keyword. Uniform per symbol, but not
// secure; see domain.RandomResidue.
func RandomVigenereKey() VigenereKey {
	n := minRandomKeywordLen + rand.Intn(maxRandomKeywordLen-minRandomKeywordLen)
	shifts := make([]domain.Residue, n)
	for i := range shifts {
		shifts[i] = domain.RandomResidue()
	}
	return VigenereKey{shifts: shifts}
}

// Keyword returns the key rendered as a lowercase word.
func (k VigenereKey) Keyword() string {
	var b strings.Builder
	b.Grow(len(k.shifts))
	for _, r := range k.shifts {
		b.WriteRune(r.Char())
	}
	return b.String()
}

// vigenereCipher implements ports.Cipher for the Vigenère cipher:
// E(p_i) = p_i + k_{i mod len(k)} in Z/26Z.
type vigenereCipher struct {
	key VigenereKey
	log zerolog.Logger
}

var _ ports.Cipher = (*vigenereCipher)(nil)

// NewVigenere binds a validated key to a Vigenère cipher engine.
func NewVigenere(key VigenereKey, baseLogger *zerolog.Logger) ports.Cipher {
	log := baseLogger.With().Str("component", "vigenere_cipher").Logger()
	log.Debug().Msg("Vigenère cipher initialized")
	return &vigenereCipher{key: key, log: log}
}

func (c *vigenereCipher) Name() string {
	return NameVigenere
}

func (c *vigenereCipher) Encrypt(msg domain.Message) domain.Ciphertext {
	rs := msg.Residues()
	for i, r := range rs {
		rs[i] = r.Add(c.key.shifts[i%len(c.key.shifts)])
	}
	return domain.CiphertextFromResidues(rs)
}

func (c *vigenereCipher) Decrypt(ct domain.Ciphertext) domain.Message {
	rs := ct.Residues()
	for i, r := range rs {
		rs[i] = r.Sub(c.key.shifts[i%len(c.key.shifts)])
	}
	return domain.MessageFromResidues(rs)
}

func (c *vigenereCipher) ExportKey() string {
	return c.key.Keyword()
}
