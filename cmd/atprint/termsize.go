package main

// TermSize is the size of the controlling terminal, in cells and, where the
// terminal reports it, in pixels.
type TermSize struct {
	WSRow, WSCol       uint
	WSXPixel, WSYPixel uint
}

// cellTermSize is the size reported by terminal.GetSize, which returns the
// width first.
func cellTermSize(width, height int) TermSize {
	return TermSize{WSRow: uint(height), WSCol: uint(width)}
}

// fitBounds returns the largest image size that fits on the terminal. Inline
// image protocols draw in pixels when the terminal reports them; otherwise
// every pixel takes two character cells of one row.
func fitBounds(ts TermSize, inline bool) (width, height uint) {
	if inline && ts.WSXPixel != 0 && ts.WSYPixel != 0 {
		return ts.WSXPixel / 2, ts.WSYPixel / 2
	}
	return ts.WSCol / 2, ts.WSRow
}
