package internal

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"
)

// LineSource supplies input lines to the encrypt loop. ReadLine shows prompt,
// then returns one line without its separator. io.EOF means no more input.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// ScannerSource reads lines from any reader (pipes, files, tests). The prompt
// is written to w when w is not nil.
type ScannerSource struct {
	sc *bufio.Scanner
	w  io.Writer
}

// NewScannerSource returns a LineSource over r that writes prompts to w.
func NewScannerSource(r io.Reader, w io.Writer) *ScannerSource {
	return &ScannerSource{sc: newLineScanner(r), w: w}
}

// newLineScanner splits r into lines without bufio's default 64 KiB cap;
// a message line may be any length.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return sc
}

// ReadLine implements LineSource.
func (s *ScannerSource) ReadLine(prompt string) (string, error) {
	if s.w != nil {
		fmt.Fprint(s.w, prompt)
	}
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// TerminalSource reads lines with the x/term line editor. The terminal is in
// raw mode only while a line is being read and is restored afterwards, also
// on SIGINT/SIGTERM.
type TerminalSource struct {
	fd int
	t  *term.Terminal
}

// NewTerminalSource returns a LineSource for the terminal behind fd.
func NewTerminalSource(fd int, in io.Reader, out io.Writer) (*TerminalSource, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("line editor requires an interactive terminal")
	}
	rw := struct {
		io.Reader
		io.Writer
	}{in, out}
	return &TerminalSource{fd: fd, t: term.NewTerminal(rw, "")}, nil
}

// StdinSource picks the line editor when stdin is a terminal and a plain
// scanner otherwise, so input can be piped in.
func StdinSource() LineSource {
	fd := int(syscall.Stdin)
	if ts, err := NewTerminalSource(fd, os.Stdin, os.Stdout); err == nil {
		return ts
	}
	return NewScannerSource(os.Stdin, os.Stderr)
}

// ReadLine implements LineSource.
func (s *TerminalSource) ReadLine(prompt string) (string, error) {
	oldState, err := term.MakeRaw(s.fd)
	if err != nil {
		return "", fmt.Errorf("terminal not ready")
	}
	restore := func() { _ = term.Restore(s.fd, oldState) }

	done := make(chan struct{})
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigc:
			restore()
			os.Exit(130)
		case <-done:
		}
	}()
	defer func() { restore(); signal.Stop(sigc); close(done) }()

	s.t.SetPrompt(prompt)
	return s.t.ReadLine()
}

// PromptForKey securely prompts for a key phrase twice and verifies they match.
// If mask is true, input is read in raw mode with '*' echo; otherwise it uses
// the terminal's hidden input (no echo) via ReadPassword.
// Errors are concise and never echo the key content.
func PromptForKey(mask bool) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("prompt requires an interactive terminal")
	}

	if !mask {
		readHidden := func(prompt string) (string, error) {
			fmt.Fprint(os.Stderr, "\r"+prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			if err != nil {
				return "", fmt.Errorf("failed to read key")
			}
			return string(b), nil
		}
		return readTwice(readHidden)
	}

	// Masked input using raw mode with '*' echo and signal-safe restore.
	readMasked := func(prompt string) (string, error) {
		fmt.Fprint(os.Stderr, "\r"+prompt)

		oldState, err := term.GetState(fd)
		if err != nil {
			return "", fmt.Errorf("terminal not ready")
		}
		restore := func() { _ = term.Restore(fd, oldState) }

		done := make(chan struct{})
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case <-sigc:
				restore()
				os.Exit(130)
			case <-done:
			}
		}()

		if _, err := term.MakeRaw(fd); err != nil {
			signal.Stop(sigc)
			close(done)
			return "", fmt.Errorf("terminal not ready")
		}
		defer func() { restore(); signal.Stop(sigc); close(done) }()

		return readMaskedLine(os.Stdin, os.Stderr), nil
	}
	return readTwice(readMasked)
}

func readTwice(read func(prompt string) (string, error)) (string, error) {
	k1, err := read("Enter key: ")
	if err != nil {
		return "", err
	}
	k2, err := read("Re-enter key: ")
	if err != nil {
		return "", err
	}
	if k1 != k2 {
		return "", fmt.Errorf("keys do not match")
	}
	return k1, nil
}

// readMaskedLine reads raw bytes until CR/LF or EOF, echoing '*' per
// character and handling backspace.
func readMaskedLine(in io.Reader, echo io.Writer) string {
	var buf []rune
	for {
		var b [1]byte
		n, er := in.Read(b[:])
		if er != nil || n == 0 {
			break
		}
		ch := rune(b[0])
		if ch == '\r' || ch == '\n' {
			fmt.Fprint(echo, "\r\n")
			break
		}
		if ch == 0x7f || ch == '\b' { // backspace/delete
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				// Erase last '*'
				fmt.Fprint(echo, "\b \b")
			}
			continue
		}
		// Ignore non-printable control characters
		if ch < 0x20 {
			continue
		}
		buf = append(buf, ch)
		fmt.Fprint(echo, "*")
	}
	return string(buf)
}
