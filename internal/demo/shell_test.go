package demo

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"ClassicalCrypto/internal/adapters/keyring"

	"github.com/rs/zerolog"
)

// runShell drives a shell over scripted input lines and returns everything
// it printed.
func runShell(t *testing.T, lines ...string) string {
	t.Helper()

	nopLogger := zerolog.Nop()
	keys := keyring.NewMemoryKeyring(&nopLogger)
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	shell := NewShell(keys, in, &out, &nopLogger)
	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("Run() returned error: %v\noutput so far:\n%s", err, out.String())
	}
	return out.String()
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output does not contain %q:\n%s", want, output)
	}
}

func TestShell_EncryptWithLiteralKey(t *testing.T) {
	output := runShell(t,
		"2",     // encrypt
		"shift", // cipher
		"3",     // key material
		"hello", // message
		"5",     // quit
	)
	mustContain(t, output, "Your ciphertext is KHOOR")
	mustContain(t, output, "Goodbye.")
}

func TestShell_DecryptWithKnownKey(t *testing.T) {
	output := runShell(t,
		"3",     // decrypt
		"1",     // with a known key
		"shift", // cipher
		"3",     // key material
		"KHOOR", // ciphertext
		"5",     // quit
	)
	mustContain(t, output, "Your computed plaintext is hello")
}

func TestShell_BruteForceWalksToTheKey(t *testing.T) {
	// "wewillmeetatmidnight" under shift k=11.
	lines := []string{"3", "2", "HPHTWWXPPELEXTOYTRSE"}
	for i := 0; i < 11; i++ {
		lines = append(lines, "n")
	}
	lines = append(lines, "y", "5")

	output := runShell(t, lines...)
	mustContain(t, output, "k=11: wewillmeetatmidnight")
	mustContain(t, output, "Cracked. The key was 11.")
}

func TestShell_BruteForceCanRejectEverything(t *testing.T) {
	lines := []string{"3", "2", "KHOOR"}
	for i := 0; i < 26; i++ {
		lines = append(lines, "n")
	}
	lines = append(lines, "5")

	output := runShell(t, lines...)
	mustContain(t, output, "All 26 candidates rejected.")
}

func TestShell_GenerateSaveAndReuseKey(t *testing.T) {
	output := runShell(t,
		"1",        // generate a key
		"vigenere", // cipher
		"n",        // don't show it
		"y",        // save it
		"notebook", // label
		"2",        // encrypt
		"vigenere", // cipher
		"notebook", // resolve by label
		"attackatdawn",
		"4", // list keys
		"5", // quit
	)
	mustContain(t, output, "Generated a fresh vigenere key.")
	mustContain(t, output, `Saved as "notebook".`)
	mustContain(t, output, "Your ciphertext is ")
	mustContain(t, output, "notebook (vigenere)")
}

func TestShell_ShowKeyAsksTwice(t *testing.T) {
	output := runShell(t,
		"1",     // generate a key
		"shift", // cipher
		"maybe", // not an answer
		"y",     // show it
		"n",     // don't save
		"5",     // quit
	)
	mustContain(t, output, "It is a yes or no question.")
	mustContain(t, output, "Your key is ")
	mustContain(t, output, "We hope you remember it in perpetuity!")
}

func TestShell_RejectsTextWithNonLetters(t *testing.T) {
	output := runShell(t,
		"2",
		"shift",
		"3",
		"hello world", // the space is not in the alphabet
		"5",
	)
	mustContain(t, output, "invalid input")
}

func TestShell_WrongCipherForSavedKey(t *testing.T) {
	output := runShell(t,
		"1",      // generate and save a shift key
		"shift",
		"n",
		"y",
		"caesar",
		"2",       // then try to use it with the affine cipher
		"affine",
		"caesar",
		"5",
	)
	mustContain(t, output, `Key "caesar" belongs to the shift cipher, not affine.`)
}

func TestShell_EndOfInputEndsSession(t *testing.T) {
	nopLogger := zerolog.Nop()
	keys := keyring.NewMemoryKeyring(&nopLogger)
	var out bytes.Buffer

	shell := NewShell(keys, strings.NewReader(""), &out, &nopLogger)
	if err := shell.Run(context.Background()); err != nil {
		t.Fatalf("Run() on empty input returned error: %v", err)
	}
}
