// Package demo is an interactive terminal playground for the classical
// ciphers. It exists so a reader of the library can poke at the systems
// the way a textbook exercise would: generate a key, pass a note, crack
// a shift ciphertext by hand.
package demo

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"ClassicalCrypto/internal/adapters/cipher"
	"ClassicalCrypto/internal/core/domain"
	"ClassicalCrypto/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Shell drives the demo over any line-oriented input and output, so tests
// can feed it a string and read back a buffer.
type Shell struct {
	log  zerolog.Logger
	keys ports.KeyRepository
	in   *bufio.Scanner
	out  io.Writer
}

// NewShell creates a demo shell reading from in and writing to out.
func NewShell(keys ports.KeyRepository, in io.Reader, out io.Writer, baseLogger *zerolog.Logger) *Shell {
	return &Shell{
		log:  baseLogger.With().Str("component", "demo_shell").Logger(),
		keys: keys,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run loops over the main menu until the user quits or input ends. Bad
// choices and bad cipher inputs are printed and forgiven; only I/O failure
// or context cancellation ends the session with an error.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the classical cryptography playground!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printMenu()
		choice, err := s.readLine("> ")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = s.generateKey(ctx)
		case "2":
			err = s.encrypt(ctx)
		case "3":
			err = s.decrypt(ctx)
		case "4":
			err = s.listKeys(ctx)
		case "5", "q", "quit":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Pick a number between 1 and 5.")
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "1) Generate a key")
	fmt.Fprintln(s.out, "2) Encrypt a message")
	fmt.Fprintln(s.out, "3) Decrypt a ciphertext")
	fmt.Fprintln(s.out, "4) List saved keys")
	fmt.Fprintln(s.out, "5) Quit")
}

// generateKey makes a fresh random key and, with the user's consent, shows
// and saves it.
func (s *Shell) generateKey(ctx context.Context) error {
	name, err := s.askCipher()
	if err != nil {
		return err
	}

	engine, err := cipher.NewRandom(name, &s.log)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintf(s.out, "Generated a fresh %s key.\n", engine.Name())

	show, err := s.confirm("Are you sure you want to see the key?")
	if err != nil {
		return err
	}
	if show {
		fmt.Fprintf(s.out, "Your key is %s\n", engine.ExportKey())
		fmt.Fprintln(s.out, "We hope you remember it in perpetuity!")
	}

	save, err := s.confirm("Save it to the keyring?")
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	label, err := s.readLine("Label for this key:\n> ")
	if err != nil {
		return err
	}
	record := &domain.KeyRecord{
		ID:        uuid.New(),
		Label:     label,
		Cipher:    engine.Name(),
		Material:  engine.ExportKey(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.keys.Save(ctx, record); err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	fmt.Fprintf(s.out, "Saved as %q.\n", label)
	return nil
}

func (s *Shell) encrypt(ctx context.Context) error {
	engine, err := s.askEngine(ctx)
	if err != nil || engine == nil {
		return err
	}

	text, err := s.readLine("Message to encrypt (letters only):\n> ")
	if err != nil {
		return err
	}
	msg, err := domain.NewMessage(text)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}

	fmt.Fprintf(s.out, "Your ciphertext is %s\n", engine.Encrypt(msg))
	return nil
}

func (s *Shell) decrypt(ctx context.Context) error {
	fmt.Fprintln(s.out, "1) With a known key")
	fmt.Fprintln(s.out, "2) Brute-force a shift ciphertext")
	fmt.Fprintln(s.out, "3) Back")
	choice, err := s.readLine("> ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return s.decryptKnownKey(ctx)
	case "2":
		return s.bruteForceShift()
	case "3":
		return nil
	default:
		fmt.Fprintln(s.out, "Pick 1, 2 or 3.")
		return nil
	}
}

func (s *Shell) decryptKnownKey(ctx context.Context) error {
	engine, err := s.askEngine(ctx)
	if err != nil || engine == nil {
		return err
	}

	text, err := s.readLine("Ciphertext to decrypt (letters only):\n> ")
	if err != nil {
		return err
	}
	ciphertext, err := domain.NewCiphertext(text)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}

	fmt.Fprintf(s.out, "Your computed plaintext is %s\n", engine.Decrypt(ciphertext))
	return nil
}

// bruteForceShift walks the whole shift key space, one candidate at a
// time, and lets the user say when a decryption reads like language.
func (s *Shell) bruteForceShift() error {
	text, err := s.readLine("Ciphertext to attack (letters only):\n> ")
	if err != nil {
		return err
	}
	ciphertext, err := domain.NewCiphertext(text)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}

	fmt.Fprintln(s.out, "There are only 26 keys. Let's try them all.")
	for k := 0; k < domain.Modulus; k++ {
		key, err := cipher.NewShiftKey(k)
		if err != nil {
			// Unreachable: the loop stays inside the key space.
			return err
		}
		engine := cipher.NewShift(key, &s.log)
		fmt.Fprintf(s.out, "k=%2d: %s\n", k, engine.Decrypt(ciphertext))

		found, err := s.confirm("Does that read like the message?")
		if err != nil {
			return err
		}
		if found {
			fmt.Fprintf(s.out, "Cracked. The key was %d.\n", k)
			return nil
		}
	}
	fmt.Fprintln(s.out, "All 26 candidates rejected. Are you sure this was a shift ciphertext?")
	return nil
}

func (s *Shell) listKeys(ctx context.Context) error {
	records, err := s.keys.List(ctx)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil
	}
	if len(records) == 0 {
		fmt.Fprintln(s.out, "The keyring is empty.")
		return nil
	}
	fmt.Fprintln(s.out, "Saved keys:")
	for _, record := range records {
		fmt.Fprintf(s.out, "  %s (%s), saved %s\n", record.Label, record.Cipher, record.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// askEngine prompts for a cipher name and a key, resolving keyring labels
// to their material. A nil engine with nil error means the user's input
// didn't make a cipher and the flow should return to the menu.
func (s *Shell) askEngine(ctx context.Context) (ports.Cipher, error) {
	name, err := s.askCipher()
	if err != nil {
		return nil, err
	}

	keyArg, err := s.readLine("Key material or keyring label:\n> ")
	if err != nil {
		return nil, err
	}

	material := keyArg
	record, err := s.keys.GetByLabel(ctx, keyArg)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil, nil
	}
	if record != nil {
		if record.Cipher != name {
			fmt.Fprintf(s.out, "Key %q belongs to the %s cipher, not %s.\n", keyArg, record.Cipher, name)
			return nil, nil
		}
		material = record.Material
	}

	engine, err := cipher.FromMaterial(name, material, &s.log)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return nil, nil
	}
	return engine, nil
}

func (s *Shell) askCipher() (string, error) {
	return s.readLine(fmt.Sprintf("Which cipher? (%s)\n> ", strings.Join(cipher.Names(), ", ")))
}

// confirm keeps asking until the answer is a yes or a no.
func (s *Shell) confirm(question string) (bool, error) {
	for {
		answer, err := s.readLine(question + " (y/n)\n> ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(s.out, "It is a yes or no question.")
		}
	}
}

func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}
