package internal

import (
	"bufio"
	"fmt"
	"io"

	"rsc.io/qr"
)

// quietZone is the light border, in modules, around a rendered code.
const quietZone = 2

// RenderQR writes text as a QR code using half-block characters, two module
// rows per text line. Light modules are drawn as ink so the code reads
// correctly on a dark terminal background.
func RenderQR(w io.Writer, text string) error {
	code, err := qr.Encode(text, qr.L)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	light := func(x, y int) bool {
		if x < 0 || y < 0 || x >= code.Size || y >= code.Size {
			return true
		}
		return !code.Black(x, y)
	}

	bw := bufio.NewWriter(w)
	for y := -quietZone; y < code.Size+quietZone; y += 2 {
		for x := -quietZone; x < code.Size+quietZone; x++ {
			top, bottom := light(x, y), light(x, y+1)
			switch {
			case top && bottom:
				bw.WriteRune('█')
			case top:
				bw.WriteRune('▀')
			case bottom:
				bw.WriteRune('▄')
			default:
				bw.WriteRune(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
