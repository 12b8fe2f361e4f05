package cipher

import (
	"errors"
	"testing"

	"ClassicalCrypto/internal/core/domain"

	"github.com/rs/zerolog"
)

func TestVigenere_KnownVector(t *testing.T) {
	nopLogger := zerolog.Nop()

	key, err := NewVigenereKey("lemon")
	if err != nil {
		t.Fatalf("NewVigenereKey failed: %v", err)
	}
	engine := NewVigenere(key, &nopLogger)

	ct := engine.Encrypt(mustMessage(t, "attackatdawn"))
	if ct.String() != "LXFOPVEFRNHR" {
		t.Errorf("Encrypt(attackatdawn) = %q, want LXFOPVEFRNHR", ct.String())
	}
	if back := engine.Decrypt(ct); back.String() != "attackatdawn" {
		t.Errorf("Decrypt round trip = %q", back.String())
	}
}

func TestVigenere_KeywordShorterAndLongerThanText(t *testing.T) {
	nopLogger := zerolog.Nop()

	key, _ := NewVigenereKey("b")
	engine := NewVigenere(key, &nopLogger)
	// A one-letter keyword degenerates into a shift cipher.
	if ct := engine.Encrypt(mustMessage(t, "abc")); ct.String() != "BCD" {
		t.Errorf("single-letter keyword: got %q, want BCD", ct.String())
	}

	long, _ := NewVigenereKey("verylongkeyword")
	engine = NewVigenere(long, &nopLogger)
	msg := mustMessage(t, "hi")
	if got := engine.Decrypt(engine.Encrypt(msg)); !got.Equal(msg) {
		t.Errorf("keyword longer than text broke the round trip: %q", got.String())
	}
}

func TestNewVigenereKey_Validation(t *testing.T) {
	if _, err := NewVigenereKey(""); !errors.Is(err, domain.ErrInvalidKey) {
		t.Errorf("empty keyword error = %v, want ErrInvalidKey", err)
	}
	if _, err := NewVigenereKey("le mon"); !errors.Is(err, domain.ErrInvalidKey) {
		t.Errorf("keyword with space error = %v, want ErrInvalidKey", err)
	}

	// Case folds like everything else.
	key, err := NewVigenereKey("LeMoN")
	if err != nil {
		t.Fatalf("NewVigenereKey(LeMoN) failed: %v", err)
	}
	if key.Keyword() != "lemon" {
		t.Errorf("Keyword() = %q, want \"lemon\"", key.Keyword())
	}
}

func TestVigenere_RoundTripRandomKeys(t *testing.T) {
	nopLogger := zerolog.Nop()
	msg := mustMessage(t, "thequickbrownfoxjumpsoverthelazydog")

	for i := 0; i < 50; i++ {
		key := RandomVigenereKey()
		if n := len(key.Keyword()); n < minRandomKeywordLen || n >= maxRandomKeywordLen {
			t.Fatalf("random keyword length %d outside [%d, %d)", n, minRandomKeywordLen, maxRandomKeywordLen)
		}
		engine := NewVigenere(key, &nopLogger)
		if got := engine.Decrypt(engine.Encrypt(msg)); !got.Equal(msg) {
			t.Fatalf("round trip failed with keyword %q: got %q", key.Keyword(), got.String())
		}
	}
}
