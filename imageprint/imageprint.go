// Package imageprint prints textures on a terminal. UNSUPPORTED debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Mode selects how pixels reach the terminal.
type Mode int

const (
	TrueColor Mode = iota // 24-bit background escapes
	Color256              // gookit/color, degrading to 256 colors where needed
	NoColor               // ASCII shades only
	ITerm                 // iTerm2 inline image
	RasTerm               // kitty, iTerm or sixel graphics via rasterm
)

var modeNames = map[string]Mode{
	"24bit":   TrueColor,
	"256":     Color256,
	"nocolor": NoColor,
	"iterm":   ITerm,
	"rasterm": RasTerm,
}

// ParseMode parses one of "24bit", "256", "nocolor", "iterm", "rasterm".
func ParseMode(s string) (Mode, error) {
	if m, ok := modeNames[strings.ToLower(s)]; ok {
		return m, nil
	}
	return TrueColor, fmt.Errorf("unknown print mode %q", s)
}

// Printer writes images to W.
type Printer struct {
	W    io.Writer
	Mode Mode

	// Blanks prints colored blanks instead of ASCII shades.
	Blanks bool
}

// Print writes img. name is used as the file name for inline image
// protocols.
func (p *Printer) Print(img image.Image, name string) error {
	switch p.Mode {
	case ITerm:
		return p.printITerm(img, name)
	case RasTerm:
		return printRasTerm(p.W, img)
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.shade(img.At(x, y))
		}
		if p.Mode != NoColor {
			fmt.Fprint(p.W, "\x1b[0m")
		}
		fmt.Fprint(p.W, "\n")
	}
	return nil
}

func (p *Printer) shade(col ic.Color) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if p.Mode == NoColor {
			fmt.Fprint(p.W, "  ")
		} else {
			fmt.Fprint(p.W, "\x1b[0m  ")
		}
		return
	}

	cell := "  "
	if !p.Blanks {
		a := ((cR + cG + cB) / 3) >> 8
		switch {
		case a < 32:
			cell = ".."
		case a < 64:
			cell = "--"
		case a < 128:
			cell = "=="
		default:
			cell = "##"
		}
	}

	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch p.Mode {
	case NoColor:
		fmt.Fprint(p.W, cell)
	case Color256:
		fmt.Fprint(p.W, color.RGB(r, g, b, true).Sprint(cell))
	default:
		fmt.Fprintf(p.W, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, cell)
	}
}

// printITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func (p *Printer) printITerm(img image.Image, name string) error {
	b := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(enc, img); err != nil {
		return err
	}
	enc.Close()
	size := img.Bounds().Size()
	_, err := fmt.Fprintf(p.W, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n",
		base64.StdEncoding.EncodeToString([]byte(name)), b.Len(), size.X, size.Y, b.String())
	return err
}
