package cipher

import (
	"fmt"
	"math/rand"
	"strings"

	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// NameAffine identifies the affine cipher.
const NameAffine = "affine"

// AffineKey is a key pair (a, b) for the affine cipher. The multiplier a
// must be invertible modulo 26, i.e. gcd(a, 26) = 1; the inverse is computed
// once at construction so decryption never has to fail.
type AffineKey struct {
	a, b domain.Residue
	aInv domain.Residue
}

// NewAffineKey validates an (a, b) pair as an affine key. The error
// distinguishes out-of-range components from a non-invertible multiplier.
func NewAffineKey(a, b int) (AffineKey, error) {
	if a < 0 || a >= domain.Modulus {
		return AffineKey{}, fmt.Errorf("%w: multiplier %d is outside the range [0, %d)", domain.ErrInvalidKey, a, domain.Modulus)
	}
	if b < 0 || b >= domain.Modulus {
		return AffineKey{}, fmt.Errorf("%w: offset %d is outside the range [0, %d)", domain.ErrInvalidKey, b, domain.Modulus)
	}
	inv, ok := modInverse(a)
	if !ok {
		return AffineKey{}, fmt.Errorf("%w: multiplier %d is not invertible modulo %d", domain.ErrInvalidKey, a, domain.Modulus)
	}
	return AffineKey{
		a:    domain.ResidueFromInt(a),
		b:    domain.ResidueFromInt(b),
		aInv: domain.ResidueFromInt(inv),
	}, nil
}

// ParseAffineKey parses an affine key from exported material, e.g. "5,8".
func ParseAffineKey(material string) (AffineKey, error) {
	var a, b int
	if _, err := fmt.Sscanf(strings.TrimSpace(material), "%d,%d", &a, &b); err != nil {
		return AffineKey{}, fmt.Errorf("%w: %q does not look like \"a,b\"", domain.ErrInvalidKey, material)
	}
	return NewAffineKey(a, b)
}

// RandomAffineKey picks a key uniformly at random from the key space.
// The multiplier is rejection-sampled from the units of Z/26Z, which keeps
// the distribution uniform over the 12 invertible values.
func RandomAffineKey() AffineKey {
	for {
		a := rand.Intn(domain.Modulus)
		key, err := NewAffineKey(a, domain.RandomResidue().Int())
		if err == nil {
			return key
		}
	}
}

// Values returns the (a, b) pair.
func (k AffineKey) Values() (a, b int) {
	return k.a.Int(), k.b.Int()
}

// modInverse finds x with a*x = 1 (mod 26). With a modulus this small a
// linear scan beats setting up the extended Euclidean algorithm.
func modInverse(a int) (int, bool) {
	for x := 1; x < domain.Modulus; x++ {
		if a*x%domain.Modulus == 1 {
			return x, true
		}
	}
	return 0, false
}

// affineCipher implements ports.Cipher for the affine cipher:
// E(p) = a*p + b and D(c) = a^-1 * (c - b) in Z/26Z.
type affineCipher struct {
	key AffineKey
	log zerolog.Logger
}

var _ ports.Cipher = (*affineCipher)(nil)

// NewAffine binds a validated key to an affine cipher engine.
func NewAffine(key AffineKey, baseLogger *zerolog.Logger) ports.Cipher {
	log := baseLogger.With().Str("component", "affine_cipher").Logger()
	log.Debug().Msg("Affine cipher initialized")
	return &affineCipher{key: key, log: log}
}

func (c *affineCipher) Name() string {
	return NameAffine
}

func (c *affineCipher) Encrypt(msg domain.Message) domain.Ciphertext {
	rs := msg.Residues()
	for i, r := range rs {
		rs[i] = c.key.a.Mul(r).Add(c.key.b)
	}
	return domain.CiphertextFromResidues(rs)
}

func (c *affineCipher) Decrypt(ct domain.Ciphertext) domain.Message {
	rs := ct.Residues()
	for i, r := range rs {
		rs[i] = c.key.aInv.Mul(r.Sub(c.key.b))
	}
	return domain.MessageFromResidues(rs)
}

func (c *affineCipher) ExportKey() string {
	return fmt.Sprintf("%d,%d", c.key.a.Int(), c.key.b.Int())
}
