package quotegen

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// typeface is the measuring capability the layout engine runs against.
// fontFace satisfies it with real glyph metrics; tests substitute fixed
// widths.
type typeface interface {
	// Extent reports the rendered pixel width and height of text. Empty
	// text measures as zero.
	Extent(text string) (w, h int)
}

// fontFace binds a parsed font to one scale and exposes pixel-level
// measurement and drawing on top of it. Faces are cached per (font,
// scale) pair, so building one per call is cheap.
//
// A truetype face keeps internal glyph buffers that both measuring and
// drawing write into, so a cached face is mutable shared state. The
// mutex is held for the duration of every Extent and drawText call,
// which is what keeps one Producer safe to use from parallel renders.
type fontFace struct {
	mu     sync.Mutex
	face   font.Face
	ascent int
}

type faceKey struct {
	font  *truetype.Font
	scale float64
}

var faceCache = struct {
	sync.Mutex
	faces map[faceKey]*fontFace
}{faces: map[faceKey]*fontFace{}}

func newFontFace(f *truetype.Font, scale float64) *fontFace {
	faceCache.Lock()
	defer faceCache.Unlock()
	key := faceKey{f, scale}
	if ff, ok := faceCache.faces[key]; ok {
		return ff
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	ff := &fontFace{face: face, ascent: face.Metrics().Ascent.Ceil()}
	faceCache.faces[key] = ff
	return ff
}

// Extent reports the ink bounding box of text: the pixel span the drawn
// glyphs actually cover, not the advance width. The left-side bearing of
// the first glyph is part of this span, which is what makes the
// first-glyph centering correction in the compositor necessary.
func (ff *fontFace) Extent(text string) (int, int) {
	if text == "" {
		return 0, 0
	}
	ff.mu.Lock()
	defer ff.mu.Unlock()
	b, _ := font.BoundString(ff.face, text)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// drawText rasterizes text onto dst in col with the top of the line at y.
func (ff *fontFace) drawText(dst draw.Image, col color.RGBA, x, y int, text string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: ff.face,
		Dot:  fixed.P(x, y+ff.ascent),
	}
	d.DrawString(text)
}
