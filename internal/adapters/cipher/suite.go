package cipher

import (
	"fmt"

	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// Names lists the implemented cryptosystems.
func Names() []string {
	return []string{NameShift, NameAffine, NameSubstitution, NameVigenere}
}

// FromMaterial constructs a cipher by name from exported key material.
// Key validation errors come back wrapped in domain.ErrInvalidKey; an
// unknown cipher name is its own, plainer mistake.
func FromMaterial(name, material string, baseLogger *zerolog.Logger) (ports.Cipher, error) {
	switch name {
	case NameShift:
		key, err := ParseShiftKey(material)
		if err != nil {
			return nil, err
		}
		return NewShift(key, baseLogger), nil
	case NameAffine:
		key, err := ParseAffineKey(material)
		if err != nil {
			return nil, err
		}
		return NewAffine(key, baseLogger), nil
	case NameSubstitution:
		key, err := ParseSubstitutionKey(material)
		if err != nil {
			return nil, err
		}
		return NewSubstitution(key, baseLogger), nil
	case NameVigenere:
		key, err := ParseVigenereKey(material)
		if err != nil {
			return nil, err
		}
		return NewVigenere(key, baseLogger), nil
	default:
		return nil, fmt.Errorf("unknown cipher %q (have: %v)", name, Names())
	}
}

// NewRandom constructs a cipher by name with a fresh random key.
func NewRandom(name string, baseLogger *zerolog.Logger) (ports.Cipher, error) {
	switch name {
	case NameShift:
		return NewShift(RandomShiftKey(), baseLogger), nil
	case NameAffine:
		return NewAffine(RandomAffineKey(), baseLogger), nil
	case NameSubstitution:
		return NewSubstitution(RandomSubstitutionKey(), baseLogger), nil
	case NameVigenere:
		return NewVigenere(RandomVigenereKey(), baseLogger), nil
	default:
		return nil, fmt.Errorf("unknown cipher %q (have: %v)", name, Names())
	}
}
