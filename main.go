// vigenere — tabula recta file cipher
//
// Encrypt mode reads lines from the operator, encrypts each one with the
// Vigenère cipher and appends it to a file until the configured terminator is
// typed. Decrypt mode reads that file back and prints the plaintext.
//
// Scheme:
// - Alphabet: a..z; every other character passes through unchanged
// - Key: letters only, case-insensitive, repeated to the length of each line
// - Output is lowercase
//
// Notes:
// - Settings (File, Terminator) come from config.yml, overridable through
//   VIGENERE_* environment variables or a .env file
// - --file overrides the configured file; --prompt reads the key hidden

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"vigenere/internal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

type options struct {
	key        string
	file       string
	configPath string
	encrypt    bool
	decrypt    bool
	prompt     bool
	mask       bool
	qr         bool
	noColor    bool
	selfTest   bool
	sets       int
	version    bool
}

// usageError marks errors caused by how the command was invoked.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func usage(w io.Writer) {
	prog := filepath.Base(os.Args[0])

	fmt.Fprintln(w, internal.Banner(version))
	fmt.Fprintln(w)

	fmt.Fprintln(w, internal.Style("Please specify `-e` to encrypt or `-d` to decrypt.", internal.Bold))
	fmt.Fprintln(w)

	fmt.Fprintln(w, internal.Style("Usage:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s %s\n", prog, internal.Style("-k <key> (-e | -d) [-f <file>]", internal.Cyan))
	fmt.Fprintln(w)

	fmt.Fprintln(w, internal.Style("Examples:", internal.Bold, internal.Blue))
	fmt.Fprintf(w, "  %s -k lemon -e            %s\n", prog, internal.Style("# type lines, end with the terminator", internal.Gray))
	fmt.Fprintf(w, "  %s -k lemon -d            %s\n", prog, internal.Style("# print the decrypted file", internal.Gray))
	fmt.Fprintf(w, "  %s --self-test\n", prog)
	fmt.Fprintf(w, "  %s --help\n", prog)
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "vigenere",
		Short:         "Encrypt lines into a file or decrypt a file with the Vigenère cipher",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringVarP(&opts.key, "key", "k", "", "Key phrase (letters only)")
	f.StringVarP(&opts.file, "file", "f", "", "File to append to / read from (overrides File in config)")
	f.BoolVarP(&opts.encrypt, "encrypt", "e", false, "Read lines interactively and append them encrypted to the file")
	f.BoolVarP(&opts.decrypt, "decrypt", "d", false, "Decrypt the file and print it")
	f.StringVar(&opts.configPath, "config", "", "Config file (default: ./config.yml, then ~/.config/vigenere/config.yml)")
	f.BoolVar(&opts.prompt, "prompt", false, "Securely prompt for the key (no echo); overrides --key")
	f.BoolVar(&opts.mask, "mask", true, "With --prompt, show * while typing (use --mask=false to disable)")
	f.BoolVar(&opts.qr, "qr", false, "With --encrypt, show every written line as a QR code")
	f.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&opts.selfTest, "self-test", false, "Run built-in round-trip checks and exit")
	f.IntVar(&opts.sets, "sets", 8, "Number of random sets for --self-test")
	f.BoolVar(&opts.version, "version", false, "Print version and exit")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if opts.version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	// Color enablement: default on for TTY unless --no-color
	internal.SetColorEnabled(!opts.noColor && term.IsTerminal(int(syscall.Stdout)))

	if opts.selfTest {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		if failed := internal.RunSelfTest(stdout, r, opts.sets); failed > 0 {
			return fmt.Errorf("self-test: %d set(s) failed", failed)
		}
		return nil
	}

	// Resolve and validate the key before anything touches the file system.
	key := opts.key
	if opts.prompt {
		k, err := internal.PromptForKey(opts.mask)
		if err != nil {
			return err
		}
		key = k
	} else if key == "" {
		return fmt.Errorf("%w: --key (-k) is required", internal.ErrEmptyKey)
	}
	c, err := internal.NewCipher(key)
	if err != nil {
		return err
	}

	mode, err := internal.SelectMode(opts.encrypt, opts.decrypt)
	if errors.Is(err, internal.ErrNoMode) {
		usage(stdout)
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := internal.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.file != "" {
		cfg.File = opts.file
	}

	fmt.Fprintf(stderr, "%s %s\n", internal.Style("Key fingerprint:", internal.Bold), internal.Fingerprint(c.Key(), internal.DefaultFingerprintPolicy()))

	s := &internal.Session{
		Cipher:  c,
		Config:  cfg,
		Display: stdout,
		Status:  stderr,
		QR:      opts.qr,
	}
	return s.Run(mode, lineSource(cmd))
}

// lineSource uses the terminal line editor for a real stdin and a plain
// scanner for anything injected with SetIn.
func lineSource(cmd *cobra.Command) internal.LineSource {
	in := cmd.InOrStdin()
	if in == os.Stdin {
		return internal.StdinSource()
	}
	return internal.NewScannerSource(in, cmd.ErrOrStderr())
}

// exitCode maps errors to process exit codes: 2 for invocation problems,
// 1 for everything that went wrong while running.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue),
		errors.Is(err, internal.ErrEmptyKey),
		errors.Is(err, internal.ErrInvalidKey),
		errors.Is(err, internal.ErrConflictingModes),
		errors.Is(err, internal.ErrConfiguration):
		return 2
	default:
		return 1
	}
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", internal.Style("error:", internal.Bold, internal.Red), err)
		os.Exit(exitCode(err))
	}
}
