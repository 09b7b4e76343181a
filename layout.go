package quotegen

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/exp/slices"
)

// TextStyle bundles one run of text with everything needed to measure and
// draw it: a color, a uniform pixel scale, and the font to use. Values
// are immutable once built.
type TextStyle struct {
	Text  string
	Color color.RGBA
	Scale float64
	Font  *truetype.Font
}

func (s TextStyle) face() *fontFace { return newFontFace(s.Font, s.Scale) }

// A Line is one display line produced by WrapText.
type Line struct {
	Text string
	// Width and Height are the measured pixel extent of Text.
	Width  int
	Height int
	// FirstWidth is the measured width of the first character alone.
	// A font insets the first glyph by its left-side bearing, so a
	// line's visible ink starts right of x=0; subtracting FirstWidth
	// when centering compensates for that.
	FirstWidth int
}

// A Layout is the result of wrapping one text run. There is always at
// least one Line; wrapping empty text yields a single empty Line of zero
// size.
type Layout struct {
	Lines []Line
	// Width is the widest line; Height is the sum of all line heights.
	Width  int
	Height int
}

// WrapText greedily segments style.Text into lines no wider than limit
// pixels, measuring with the style's font. Explicit '\n' characters force
// a break and are consumed. A single character wider than the limit is
// still emitted as its own line rather than dropped, so lines fit the
// limit on a best-effort basis only. Concatenating the returned lines
// reproduces the input exactly, modulo the consumed break characters.
func WrapText(style TextStyle, limit int) (*Layout, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: wrap limit must be positive, got %d", ErrBadConfig, limit)
	}
	return wrap(style.face(), style.Text, limit), nil
}

// wrap appends characters to a growing buffer and re-measures the whole
// buffer each time. Quadratic in line length, which is fine for
// quote-sized strings; break positions are what matter.
func wrap(tf typeface, text string, limit int) *Layout {
	var lines []Line

	commit := func(s string) {
		w, h := tf.Extent(s)
		var fw int
		for _, r := range s {
			fw, _ = tf.Extent(string(r))
			break
		}
		lines = append(lines, Line{Text: s, Width: w, Height: h, FirstWidth: fw})
	}

	var buf []rune
	for _, r := range text {
		if r == '\n' {
			commit(string(buf))
			buf = buf[:0]
			continue
		}
		buf = append(buf, r)
		if w, _ := tf.Extent(string(buf)); w >= limit && len(buf) > 1 {
			// The last character overflowed: commit everything before
			// it and let it start the next line.
			commit(string(buf[:len(buf)-1]))
			buf = append(buf[:0], r)
		}
	}
	commit(string(buf))

	widths := make([]int, len(lines))
	height := 0
	for i, ln := range lines {
		widths[i] = ln.Width
		height += ln.Height
	}

	return &Layout{Lines: lines, Width: slices.Max(widths), Height: height}
}
