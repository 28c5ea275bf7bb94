package internal

import "errors"

// Sentinel errors. Callers wrap them with context and test with errors.Is.
var (
	// ErrInvalidKey is returned when the key phrase contains anything but letters.
	ErrInvalidKey = errors.New("invalid key")
	// ErrEmptyKey is returned for a zero-length key phrase.
	ErrEmptyKey = errors.New("empty key")
	// ErrAlignment means a key stream and its message differ in length.
	// It indicates a logic defect, never bad input.
	ErrAlignment = errors.New("key stream alignment mismatch")
	// ErrRoundTrip means an encrypted line did not decrypt back to its input.
	ErrRoundTrip = errors.New("round-trip verification failed")
	// ErrFileAccess is returned when the target file cannot be opened.
	ErrFileAccess = errors.New("file access")
	// ErrConfiguration is returned when required settings are missing.
	ErrConfiguration = errors.New("configuration")
	// ErrNoMode means neither encrypt nor decrypt was requested.
	ErrNoMode = errors.New("no mode selected")
	// ErrConflictingModes means both encrypt and decrypt were requested.
	ErrConflictingModes = errors.New("conflicting modes")
)
