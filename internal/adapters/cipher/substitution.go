package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// NameSubstitution identifies the general substitution cipher.
const NameSubstitution = "substitution"

// SubstitutionKey is an arbitrary permutation of the Latin Alphabet. The
// key space has 26! elements, which sounds like a lot until you remember
// frequency analysis exists.
type SubstitutionKey struct {
	image    [domain.Modulus]domain.Residue // image[p] = E(p)
	preimage [domain.Modulus]domain.Residue // preimage[c] = D(c)
}

// NewSubstitutionKey validates a sequence of 26 residues as a permutation.
// Bijectivity is enforced here so encryption can never collide two symbols.
func NewSubstitutionKey(image []domain.Residue) (SubstitutionKey, error) {
	if len(image) != domain.Modulus {
		return SubstitutionKey{}, fmt.Errorf("%w: a substitution key needs %d symbols, got %d", domain.ErrInvalidKey, domain.Modulus, len(image))
	}
	var key SubstitutionKey
	var seen [domain.Modulus]bool
	for p, c := range image {
		if c < 0 || c >= domain.Modulus {
			return SubstitutionKey{}, fmt.Errorf("%w: residue %d is outside Z/%dZ", domain.ErrInvalidKey, c, domain.Modulus)
		}
		if seen[c] {
			return SubstitutionKey{}, fmt.Errorf("%w: %q appears twice, so the table is not a permutation", domain.ErrInvalidKey, c.Char())
		}
		seen[c] = true
		key.image[p] = c
		key.preimage[c] = domain.Residue(p)
	}
	return key, nil
}

// ParseSubstitutionKey parses a key from exported material: the 26-letter
// image of the alphabet in order, e.g. "zyxwvutsrqponmlkjihgfedcba".
func ParseSubstitutionKey(material string) (SubstitutionKey, error) {
	s := strings.TrimSpace(material)
	image := make([]domain.Residue, 0, domain.Modulus)
	for _, c := range s {
		r, err := domain.ResidueFromChar(c)
		if err != nil {
			return SubstitutionKey{}, fmt.Errorf("%w: %q is not a letter of the Latin Alphabet", domain.ErrInvalidKey, c)
		}
		image = append(image, r)
	}
	return NewSubstitutionKey(image)
}

// RandomSubstitutionKey picks a permutation uniformly at random.
// Uniform, but not secure; see domain.RandomResidue.
func RandomSubstitutionKey() SubstitutionKey {
	image := make([]domain.Residue, 0, domain.Modulus)
	for _, p := range rand.Perm(domain.Modulus) {
		image = append(image, domain.Residue(p))
	}
	key, err := NewSubstitutionKey(image)
	if err != nil {
		// rand.Perm returned something that is not a permutation;
		// that is a defect, not an input problem.
		panic(fmt.Sprintf("cipher: random permutation rejected: %v", err))
	}
	return key
}

// substitutionCipher implements ports.Cipher via table lookup in both
// directions.
type substitutionCipher struct {
	key SubstitutionKey
	log zerolog.Logger
}

var _ ports.Cipher = (*substitutionCipher)(nil)

// NewSubstitution binds a validated key to a substitution cipher engine.
func NewSubstitution(key SubstitutionKey, baseLogger *zerolog.Logger) ports.Cipher {
	log := baseLogger.With().Str("component", "substitution_cipher").Logger()
	log.Debug().Msg("Substitution cipher initialized")
	return &substitutionCipher{key: key, log: log}
}

func (c *substitutionCipher) Name() string {
	return NameSubstitution
}

func (c *substitutionCipher) Encrypt(msg domain.Message) domain.Ciphertext {
	rs := msg.Residues()
	for i, r := range rs {
		rs[i] = c.key.image[r]
	}
	return domain.CiphertextFromResidues(rs)
}

func (c *substitutionCipher) Decrypt(ct domain.Ciphertext) domain.Message {
	rs := ct.Residues()
	for i, r := range rs {
		rs[i] = c.key.preimage[r]
	}
	return domain.MessageFromResidues(rs)
}

func (c *substitutionCipher) ExportKey() string {
	var b strings.Builder
	b.Grow(domain.Modulus)
	for _, r := range c.key.image {
		b.WriteRune(r.Char())
	}
	return b.String()
}
