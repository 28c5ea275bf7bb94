package internal

import (
	"github.com/fatih/color"
)

// Package internal: UI helpers (exported)
//
// Small helpers for styled terminal output.
//
// Color usage
// - Enable or disable color globally via SetColorEnabled(true/false).
// - Wrap text with Style("text", Bold, Blue) to apply attributes when enabled.
// - When disabled, Style returns the input unchanged.

// Text attributes accepted by Style.
const (
	Bold   = color.Bold
	Blue   = color.FgHiBlue
	Cyan   = color.FgHiCyan
	Purple = color.FgHiMagenta
	Gray   = color.FgHiBlack
	Red    = color.FgHiRed
	Green  = color.FgHiGreen
)

// SetColorEnabled toggles styling on or off.
func SetColorEnabled(on bool) {
	color.NoColor = !on
}

// Style wraps s with the provided attributes when color is enabled.
// When disabled, returns s unchanged.
//
// Example:
//
//	Style("Hello", Bold, Blue)
func Style(s string, attrs ...color.Attribute) string {
	if color.NoColor {
		return s
	}
	return color.New(attrs...).Sprint(s)
}

// Banner returns the styled CLI header.
func Banner(version string) string {
	return Style("vigenere — tabula recta file cipher - "+version, Bold, Purple)
}

// Prompt returns the interactive prompt, which always names the terminator
// so the operator knows how to end the session.
func Prompt(terminator string) string {
	return Style("["+terminator+" to finish]", Gray) + " > "
}
