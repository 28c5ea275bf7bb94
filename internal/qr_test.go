package internal

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderQR(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderQR(&buf, "lxfopv mh oeib"); err != nil {
		t.Fatalf("RenderQR: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) < 10 {
		t.Fatalf("RenderQR produced %d lines, want a full code", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != width {
			t.Errorf("line %d has width %d, want %d", i, n, width)
		}
	}
	// two module rows per line, plus the quiet zone on both sides
	if want := (width + 1) / 2; len(lines) != want {
		t.Errorf("RenderQR produced %d lines for width %d, want %d", len(lines), width, want)
	}
	// the quiet zone is light, so the first line is solid
	if strings.Trim(lines[0], "█") != "" {
		t.Errorf("first line %q is not a solid quiet zone", lines[0])
	}
}
