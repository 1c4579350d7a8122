//go:build !go1.13 || windows
// +build !go1.13 windows

package imageprint

import (
	"fmt"
	"image"
	"io"
)

func printRasTerm(w io.Writer, img image.Image) error {
	return fmt.Errorf("rasterm not supported below Go 1.13 or on windows")
}
