// Package ttesting contains assertion helpers shared by the package tests.
package ttesting

import (
	"image"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualBool(t *testing.T, name string, got, want bool) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %t; want %t", got, want)
		}
	})
}

func AssertEqualStrings(t *testing.T, name string, got, want []string) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if len(got) != len(want) {
			t.Fatalf("got %q; want %q", got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("got %q; want %q", got, want)
				return
			}
		}
	})
}

// AssertSamePixels compares two images pixel by pixel, relative to their
// own bounds.
func AssertSamePixels(t *testing.T, name string, got, want image.Image) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		gb, wb := got.Bounds(), want.Bounds()
		if gb.Size() != wb.Size() {
			t.Fatalf("got size %v; want %v", gb.Size(), wb.Size())
		}
		for y := 0; y < wb.Dy(); y++ {
			for x := 0; x < wb.Dx(); x++ {
				gr, gg, gbl, ga := got.At(gb.Min.X+x, gb.Min.Y+y).RGBA()
				wr, wg, wbl, wa := want.At(wb.Min.X+x, wb.Min.Y+y).RGBA()
				if gr != wr || gg != wg || gbl != wbl || ga != wa {
					t.Fatalf("pixel (%d,%d): got %04x%04x%04x%04x; want %04x%04x%04x%04x", x, y, gr, gg, gbl, ga, wr, wg, wbl, wa)
				}
			}
		}
	})
}
