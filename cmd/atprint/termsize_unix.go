//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

var kittySizeReply = regexp.MustCompile(`\[4;(\d+);(\d+)t`)

// kittyPixelSize asks kitty for its window size in pixels with CSI 14 t.
// The reply is <ESC>[4;<height>;<width>t.
func kittyPixelSize(f *os.File) (width, height int, ok bool) {
	state, err := terminal.MakeRaw(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	defer terminal.Restore(int(f.Fd()), state)

	fmt.Printf("\033[14t")
	b := make([]byte, 1)
	if _, err := os.Stdin.Read(b); err != nil || b[0] != 033 {
		return 0, 0, false
	}
	// TODO: bound the read with a deadline; a terminal that never replies blocks here.
	s, err := bufio.NewReader(os.Stdin).ReadString('t')
	if err != nil {
		return 0, 0, false
	}
	m := kittySizeReply.FindStringSubmatch(s)
	if len(m) != 3 {
		return 0, 0, false
	}
	height, errH := strconv.Atoi(m[1])
	width, errW := strconv.Atoi(m[2])
	if errH != nil || errW != nil {
		return 0, 0, false
	}
	return width, height, true
}

// GetTermSize queries /dev/tty, falling back to stdin.
func GetTermSize() (TermSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		var sz *unix.Winsize
		if sz, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			if sz.Xpixel == 0 && sz.Ypixel == 0 && os.Getenv("TERM") == "xterm-kitty" {
				if w, h, ok := kittyPixelSize(f); ok {
					sz.Xpixel, sz.Ypixel = uint16(w), uint16(h)
				}
			}
			return TermSize{WSRow: uint(sz.Row), WSCol: uint(sz.Col), WSXPixel: uint(sz.Xpixel), WSYPixel: uint(sz.Ypixel)}, nil
		}
	}
	w, h, err := terminal.GetSize(0)
	if err != nil {
		return TermSize{}, err
	}
	return cellTermSize(w, h), nil
}
