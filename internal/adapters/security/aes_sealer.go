package security

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"ClassicalCrypto/internal/core/ports"

	"github.com/rs/zerolog"
)

// aesSealer implements the KeySealer interface using AES-GCM.
//
// This is the one place in the repository where the cryptography is real:
// the classical cipher keys are toys, but the database they may be stored
// in is not, so material at rest gets modern authenticated encryption.
type aesSealer struct {
	gcm cipher.AEAD
	log zerolog.Logger
}

var _ ports.KeySealer = (*aesSealer)(nil)

// NewAESSealer creates a sealer from a 16- or 32-byte key.
func NewAESSealer(sealKey []byte, baseLogger *zerolog.Logger) (ports.KeySealer, error) {
	if len(sealKey) != 16 && len(sealKey) != 32 {
		return nil, errors.New("sealKey must be 16 or 32 bytes")
	}

	block, err := aes.NewCipher(sealKey)
	if err != nil {
		return nil, fmt.Errorf("could not create AES cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("could not create GCM: %w", err)
	}

	log := baseLogger.With().Str("component", "aes_sealer").Logger()
	log.Info().Msg("Key sealer initialized")

	return &aesSealer{gcm: gcm, log: log}, nil
}

// Seal encrypts key material using AES-GCM, prepending the nonce.
func (s *aesSealer) Seal(material []byte) ([]byte, error) {
	nonce := make([]byte, s.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		s.log.Error().Err(err).Msg("Failed to generate nonce")
		return nil, fmt.Errorf("could not generate nonce: %w", err)
	}

	return s.gcm.Seal(nonce, nonce, material, nil), nil
}

// Open decrypts a sealed blob.
func (s *aesSealer) Open(sealed []byte) ([]byte, error) {
	nonceSize := s.gcm.NonceSize()
	if len(sealed) < nonceSize {
		return nil, errors.New("sealed blob is too short")
	}

	nonce, actual := sealed[:nonceSize], sealed[nonceSize:]

	material, err := s.gcm.Open(nil, nonce, actual, nil)
	if err != nil {
		// Can happen if the stored row was tampered with or the vault
		// key changed underneath us.
		s.log.Warn().Err(err).Msg("Failed to open sealed key material")
		return nil, fmt.Errorf("could not open sealed material: %w", err)
	}

	return material, nil
}
