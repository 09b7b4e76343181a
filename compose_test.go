package quotegen

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestOverlayPlacesAndClips(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{255, 0, 0, 255}
	draw.Draw(src, src.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)

	overlay(dst, src, 6, 0)
	if got := dst.RGBAAt(6, 0); got != red {
		t.Errorf("pixel (6,0) = %v, want %v", got, red)
	}
	if got := dst.RGBAAt(5, 0); got.R != 0 {
		t.Errorf("pixel (5,0) = %v, want untouched", got)
	}

	// Partially off-canvas draws must clip, not panic.
	overlay(dst, src, 8, 8)
	if got := dst.RGBAAt(9, 9); got != red {
		t.Errorf("clipped overlay missing at (9,9): %v", got)
	}
}

func TestOverlayRespectsAlpha(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 2, 2))
	white := color.RGBA{255, 255, 255, 255}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)

	clear := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	overlay(dst, clear, 0, 0)
	if got := dst.RGBAAt(0, 0); got != white {
		t.Errorf("transparent overlay changed pixel to %v", got)
	}
}

func TestGradientStripGeometry(t *testing.T) {
	// For an avatar 600 wide the strip is 600/3 = 200 wide and its right
	// edge must land exactly on x = 600.
	avatarWidth := 600
	gradientWidth := avatarWidth / gradientWidthDivisor
	if gradientWidth != 200 {
		t.Fatalf("gradient width = %d, want 200", gradientWidth)
	}
	if right := (avatarWidth - gradientWidth) + gradientWidth; right != avatarWidth {
		t.Fatalf("gradient right edge = %d, want %d", right, avatarWidth)
	}

	bg := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	g := horizontalGradient(gradientWidth, 1080, gradientFrom, gradientTo)
	overlay(bg, g, avatarWidth-gradientWidth, 0)

	// Last gradient column is opaque black; one past the strip is not.
	if got := bg.RGBAAt(599, 540); got.A != 255 {
		t.Errorf("pixel just inside the strip = %v, want opaque", got)
	}
	if got := bg.RGBAAt(600, 540); got.A != 0 {
		t.Errorf("pixel past the strip = %v, want untouched", got)
	}
}

func TestAttributionAnchor(t *testing.T) {
	regionH := 1080
	if y := regionH - regionH/attributionAnchorDivisor; y != 810 {
		t.Errorf("attribution anchor = %d, want 810", y)
	}
}

func TestCenteredTextX(t *testing.T) {
	// Half the region, plus the gap, minus half the text.
	for _, tc := range []struct {
		regionW, textW, gap, want int
	}{
		{1000, 200, 30, 430},
		{1000, 0, 30, 530},
		{351, 101, 0, 125},
	} {
		if got := centeredTextX(tc.regionW, tc.textW, tc.gap); got != tc.want {
			t.Errorf("centeredTextX(%d, %d, %d) = %d, want %d", tc.regionW, tc.textW, tc.gap, got, tc.want)
		}
	}
}

func TestQuoteLineXSubtractsFirstGlyphWidth(t *testing.T) {
	// A quote line is centered like any text, then pulled left by its
	// first glyph's width to cancel the left-side bearing.
	ln := Line{Text: "abcd", Width: 200, FirstWidth: 12}
	if got, want := quoteLineX(1000, ln), 1000/2+textGap-200/2-12; got != want {
		t.Errorf("quoteLineX = %d, want %d", got, want)
	}
	if got, want := quoteLineX(1000, Line{}), 1000/2+textGap; got != want {
		t.Errorf("empty line quoteLineX = %d, want %d", got, want)
	}

	// Same property over lines produced by the wrap itself: a line of
	// 12-wide glyphs sits 12px further left than pure centering.
	face := runeWidthFace{
		widths: map[rune]int{'a': 12, 'b': 12, 'c': 12, 'd': 12, 'e': 12},
		def:    5,
		height: 20,
	}
	l := wrap(face, "abcdefghij", 50)
	first := l.Lines[0] // "abcd", width 48, first glyph 12
	if got, want := quoteLineX(1000, first), centeredTextX(1000, 48, textGap)-12; got != want {
		t.Errorf("wrapped line quoteLineX = %d, want %d", got, want)
	}
	if quoteLineX(1000, first) >= centeredTextX(1000, first.Width, textGap) {
		t.Error("bearing correction missing: corrected x should sit left of plain centering")
	}
}

func TestRenderTextRegionDrawsInk(t *testing.T) {
	fonts := DefaultFontSet()
	quoteStyle := TextStyle{Text: "hello there", Color: quoteColor, Scale: 80, Font: fonts.Bold}
	attrStyle := TextStyle{Text: "@tester", Color: attributionColor, Scale: 26, Font: fonts.Light}

	l, err := WrapText(quoteStyle, 1000-textGap*2)
	if err != nil {
		t.Fatal(err)
	}
	region := renderTextRegion(l, quoteStyle, attrStyle, 1000, 1080)

	if b := region.Bounds(); b.Dx() != 1000 || b.Dy() != 1080 {
		t.Fatalf("region = %dx%d, want 1000x1080", b.Dx(), b.Dy())
	}

	inked := 0
	for y := 0; y < 1080; y++ {
		for x := 0; x < 1000; x++ {
			if region.RGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatal("text region has no ink at all")
	}
}
