package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Mode selects what a session does with its file.
type Mode int

const (
	ModeEncrypt Mode = iota + 1
	ModeDecrypt
)

func (m Mode) String() string {
	switch m {
	case ModeEncrypt:
		return "encrypt"
	case ModeDecrypt:
		return "decrypt"
	default:
		return "none"
	}
}

// SelectMode turns the two mode flags into a Mode. The flags are mutually
// exclusive: neither returns ErrNoMode, both returns ErrConflictingModes.
func SelectMode(encrypt, decrypt bool) (Mode, error) {
	switch {
	case encrypt && decrypt:
		return 0, fmt.Errorf("%w: choose either encrypt or decrypt, not both", ErrConflictingModes)
	case encrypt:
		return ModeEncrypt, nil
	case decrypt:
		return ModeDecrypt, nil
	default:
		return 0, ErrNoMode
	}
}

// Session runs one mode against Config.File.
//   - Cipher: validated key and tables
//   - Config: target file and terminator
//   - Display: where decrypted lines (and QR codes) go; os.Stdout if nil
//   - Status: where progress notes go; nil discards them
//   - QR: render every appended ciphertext line as a QR code on Display
type Session struct {
	Cipher  *Cipher
	Config  Config
	Display io.Writer
	Status  io.Writer
	QR      bool
}

// Run dispatches to Encrypt or Decrypt. src is only used when encrypting.
func (s *Session) Run(mode Mode, src LineSource) error {
	switch mode {
	case ModeEncrypt:
		return s.Encrypt(src)
	case ModeDecrypt:
		return s.Decrypt()
	default:
		return ErrNoMode
	}
}

// encrypt loop states
type state int

const (
	statePrompting state = iota
	stateTerminated
)

// Encrypt opens Config.File for appending and runs the interactive loop.
// The file is closed on every exit path; lines already written stay on disk.
func (s *Session) Encrypt(src LineSource) (err error) {
	f, err := os.OpenFile(s.Config.File, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open %s for appending: %v", ErrFileAccess, s.Config.File, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", s.Config.File, cerr)
		}
	}()

	s.status("Appending to %s\n", s.Config.File)
	n, err := s.EncryptTo(f, src)
	s.status("%d line(s) written\n", n)
	return err
}

// EncryptTo runs the encrypt loop against w and returns how many lines it
// wrote. Each line is written with a single Write call before the next
// prompt, so an unbuffered w (such as *os.File) holds every accepted line
// even if the process dies mid-session.
//
// States:
//   - prompting: read a line, lowercase it; the exact terminator or io.EOF
//     moves to terminated, anything else is encrypted and written
//   - terminated: stop, nothing more is written
func (s *Session) EncryptTo(w io.Writer, src LineSource) (int, error) {
	prompt := Prompt(s.Config.Terminator)
	written := 0

	for st := statePrompting; st != stateTerminated; {
		line, err := src.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			st = stateTerminated
			continue
		}
		if err != nil {
			return written, fmt.Errorf("read input: %w", err)
		}

		message := Lower(line)
		if message == s.Config.Terminator {
			st = stateTerminated
			continue
		}

		encrypted, err := EncryptVerified(s.Cipher, message)
		if err != nil {
			return written, err
		}
		if _, err := io.WriteString(w, encrypted+"\n"); err != nil {
			return written, fmt.Errorf("write %s: %w", s.Config.File, err)
		}
		written++

		if s.QR {
			if err := RenderQR(s.display(), encrypted); err != nil {
				s.status("%s %v\n", Style("qr:", Red), err)
			}
		}
	}
	return written, nil
}

// Decrypt opens Config.File for reading and writes every decrypted line to
// Display in file order.
func (s *Session) Decrypt() error {
	f, err := os.Open(s.Config.File)
	if err != nil {
		return fmt.Errorf("%w: open %s for reading: %v", ErrFileAccess, s.Config.File, err)
	}
	defer f.Close()

	n, err := s.DecryptFrom(f)
	s.status("%d line(s) read from %s\n", n, s.Config.File)
	return err
}

// DecryptFrom decrypts each line of r. The line separator ("\n" or "\r\n")
// is removed before the key stream is aligned, so it never takes a key
// position. Returns the number of lines emitted.
func (s *Session) DecryptFrom(r io.Reader) (int, error) {
	out := s.display()
	sc := newLineScanner(r)
	n := 0
	for sc.Scan() {
		plain, err := s.Cipher.Decrypt(sc.Text())
		if err != nil {
			return n, fmt.Errorf("line %d: %w", n+1, err)
		}
		if _, err := fmt.Fprintln(out, plain); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read %s: %w", s.Config.File, err)
	}
	return n, nil
}

func (s *Session) display() io.Writer {
	if s.Display == nil {
		return os.Stdout
	}
	return s.Display
}

func (s *Session) status(format string, args ...any) {
	if s.Status == nil {
		return
	}
	fmt.Fprintf(s.Status, format, args...)
}
