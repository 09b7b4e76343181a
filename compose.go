package quotegen

import (
	"image"

	"golang.org/x/image/draw"
)

// overlay alpha-composites src onto dst at (x, y). Anything falling
// outside dst is clipped.
func overlay(dst *image.RGBA, src image.Image, x, y int) {
	sb := src.Bounds()
	r := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, r, src, sb.Min, draw.Over)
}

//                                                        the X
// <--                    region width                   -->|
// <- half width       ->|
// <-      + gap          ->|
// <-  - width/2   ->|
func centeredTextX(regionW, textW, gap int) int {
	return regionW/2 + gap - textW/2
}

// quoteLineX positions one wrapped quote line: centered in the region
// with the fixed gap inset, then pulled left by the width of the line's
// first glyph to cancel its left-side bearing.
func quoteLineX(regionW int, ln Line) int {
	return centeredTextX(regionW, ln.Width, textGap) - ln.FirstWidth
}

// renderTextRegion lays the quote block and the attribution onto a fresh
// transparent canvas sized to the text region. The quote block is
// vertically anchored so its full height sits above the region midline;
// each line advances by its own measured height. The attribution hangs at
// a fixed three-quarters of the region height.
func renderTextRegion(quote *Layout, quoteStyle, attrStyle TextStyle, regionW, regionH int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, regionW, regionH))

	qf := quoteStyle.face()
	y := regionH/2 - quote.Height
	for _, ln := range quote.Lines {
		qf.drawText(canvas, quoteStyle.Color, quoteLineX(regionW, ln), y, ln.Text)
		y += ln.Height
	}

	af := attrStyle.face()
	w, _ := af.Extent(attrStyle.Text)
	af.drawText(canvas, attrStyle.Color,
		centeredTextX(regionW, w, textGap),
		regionH-regionH/attributionAnchorDivisor,
		attrStyle.Text)

	return canvas
}
