package cipher

import (
	"errors"
	"testing"

	"ClassicalCrypto/internal/core/domain"

	"github.com/rs/zerolog"
)

func mustMessage(t *testing.T, s string) domain.Message {
	t.Helper()
	msg, err := domain.NewMessage(s)
	if err != nil {
		t.Fatalf("NewMessage(%q) failed: %v", s, err)
	}
	return msg
}

func mustCiphertext(t *testing.T, s string) domain.Ciphertext {
	t.Helper()
	ct, err := domain.NewCiphertext(s)
	if err != nil {
		t.Fatalf("NewCiphertext(%q) failed: %v", s, err)
	}
	return ct
}

func TestShift_KnownVectors(t *testing.T) {
	nopLogger := zerolog.Nop()

	cases := []struct {
		name  string
		key   int
		plain string
		want  string
	}{
		{"caesar hello", 3, "HELLO", "KHOOR"},
		// Example 1.1 Stinson 3rd Edition, Example 2.1 Stinson 4th Edition
		{"stinson midnight", 11, "wewillmeetatmidnight", "HPHTWWXPPELEXTOYTRSE"},
		{"identity key", 0, "plaintext", "PLAINTEXT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := NewShiftKey(tc.key)
			if err != nil {
				t.Fatalf("NewShiftKey(%d) failed: %v", tc.key, err)
			}
			engine := NewShift(key, &nopLogger)

			ct := engine.Encrypt(mustMessage(t, tc.plain))
			if ct.String() != tc.want {
				t.Errorf("Encrypt(%q) = %q, want %q", tc.plain, ct.String(), tc.want)
			}

			back := engine.Decrypt(ct)
			if !back.Equal(mustMessage(t, tc.plain)) {
				t.Errorf("Decrypt(Encrypt(%q)) = %q", tc.plain, back.String())
			}
		})
	}
}

func TestShift_DecryptKnownCiphertext(t *testing.T) {
	nopLogger := zerolog.Nop()
	key, err := NewShiftKey(3)
	if err != nil {
		t.Fatalf("NewShiftKey failed: %v", err)
	}

	plain := NewShift(key, &nopLogger).Decrypt(mustCiphertext(t, "KHOOR"))
	if plain.String() != "hello" {
		t.Errorf("Decrypt(KHOOR) = %q, want \"hello\"", plain.String())
	}
}

func TestNewShiftKey_RejectsOutOfRange(t *testing.T) {
	for _, v := range []int{-1, 26, 100} {
		_, err := NewShiftKey(v)
		if !errors.Is(err, domain.ErrInvalidKey) {
			t.Errorf("NewShiftKey(%d) error = %v, want ErrInvalidKey", v, err)
		}
	}
}

func TestParseShiftKey(t *testing.T) {
	key, err := ParseShiftKey(" 11 ")
	if err != nil {
		t.Fatalf("ParseShiftKey failed: %v", err)
	}
	if key.Value() != 11 {
		t.Errorf("parsed value = %d, want 11", key.Value())
	}

	for _, bad := range []string{"", "eleven", "26"} {
		if _, err := ParseShiftKey(bad); !errors.Is(err, domain.ErrInvalidKey) {
			t.Errorf("ParseShiftKey(%q) error = %v, want ErrInvalidKey", bad, err)
		}
	}
}

func TestShift_RoundTripRandomKeys(t *testing.T) {
	nopLogger := zerolog.Nop()
	msg := mustMessage(t, "thisisatest")

	for i := 0; i < 50; i++ {
		engine := NewShift(RandomShiftKey(), &nopLogger)
		if got := engine.Decrypt(engine.Encrypt(msg)); !got.Equal(msg) {
			t.Fatalf("round trip failed with key %s: got %q", engine.ExportKey(), got.String())
		}
	}
}

func TestShift_WrongKeyDoesNotDecrypt(t *testing.T) {
	nopLogger := zerolog.Nop()
	msg := mustMessage(t, "thisisanothertest")

	key1, _ := NewShiftKey(7)
	key2, _ := NewShiftKey(9)

	ct := NewShift(key1, &nopLogger).Encrypt(msg)
	if got := NewShift(key2, &nopLogger).Decrypt(ct); got.Equal(msg) {
		t.Error("decryption with the wrong key returned the original message")
	}
}

// Each valid key must permute the alphabet: no two plaintext symbols may
// land on the same ciphertext symbol.
func TestShift_BijectionOverAlphabet(t *testing.T) {
	nopLogger := zerolog.Nop()

	alphabet := make([]domain.Residue, domain.Modulus)
	for i := range alphabet {
		alphabet[i] = domain.Residue(i)
	}
	full := domain.MessageFromResidues(alphabet)

	for k := 0; k < domain.Modulus; k++ {
		key, err := NewShiftKey(k)
		if err != nil {
			t.Fatalf("NewShiftKey(%d) failed: %v", k, err)
		}
		ct := NewShift(key, &nopLogger).Encrypt(full)

		var seen [domain.Modulus]bool
		for _, r := range ct.Residues() {
			if seen[r] {
				t.Fatalf("key %d maps two symbols to %d", k, r)
			}
			seen[r] = true
		}
	}
}

func TestShift_ExportKey(t *testing.T) {
	nopLogger := zerolog.Nop()
	key, _ := NewShiftKey(11)

	if got := NewShift(key, &nopLogger).ExportKey(); got != "11" {
		t.Errorf("ExportKey() = %q, want \"11\"", got)
	}
}
