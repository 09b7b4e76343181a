package quotegen

import (
	"fmt"
	"image"
	"image/color"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

// identityPalette is the fixed set of background colors for generated
// avatars. An id selects an entry modulo the palette size, so the same id
// always gets the same color.
var identityPalette = [7]color.RGBA{
	{255, 81, 106, 255},
	{255, 168, 92, 255},
	{214, 105, 237, 255},
	{84, 203, 104, 255},
	{40, 201, 183, 255},
	{42, 158, 241, 255},
	{255, 113, 154, 255},
}

func identityColor(id uint64) color.RGBA {
	return identityPalette[id%uint64(len(identityPalette))]
}

// avatarFromImage turns a decoded source image into the canvas-ready
// avatar band: scaled to targetHeight with the width following from the
// truncated source aspect ratio, then cropped by the left quarter to bias
// the frame toward the subject's right side.
//
// With crop disabled the source passes through untouched; that path
// serves generated identity avatars, which are built at canvas height
// already and must keep their full width.
func avatarFromImage(src image.Image, targetHeight int, crop bool) (image.Image, error) {
	if !crop {
		return src, nil
	}
	b := src.Bounds()
	if b.Dy() == 0 {
		return nil, fmt.Errorf("%w: source image has zero height", ErrBadImage)
	}
	if targetHeight < 1 {
		return nil, fmt.Errorf("%w: avatar target height %d", ErrBadConfig, targetHeight)
	}
	ratio := b.Dx() / b.Dy()
	if ratio < 1 {
		return nil, fmt.Errorf("%w: source image %dx%d is taller than wide and would scale to zero width", ErrBadImage, b.Dx(), b.Dy())
	}
	outW := targetHeight * ratio
	resized := imaging.Resize(src, outW, targetHeight, imaging.CatmullRom)
	cropped := imaging.Crop(resized, image.Rect(outW/avatarCropDivisor, 0, outW, targetHeight))
	return cropped, nil
}

// identityAvatar renders the fallback avatar for a user without a
// picture: a filled circle in the id's palette color with the uppercased
// first character of the display name inside it. The letter is centered
// horizontally on measured width; vertically it sits two thirds of its
// measured height above center, an empirical lift that reads as centered
// once the glyph baseline is accounted for.
func identityAvatar(id uint64, width, height int, label TextStyle) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	cx, cy := width/2, height/2
	radius := width/2 - width/identityMarginDivisor

	gc := draw2dimg.NewGraphicContext(canvas)
	gc.SetFillColor(identityColor(id))
	draw2dkit.Circle(gc, float64(cx), float64(cy), float64(radius))
	gc.Fill()

	var letter string
	for _, r := range label.Text {
		letter = string(unicode.ToUpper(r))
		break
	}
	ff := label.face()
	w, h := ff.Extent(letter)
	ff.drawText(canvas, label.Color, cx-w/2, cy-(h-h/3), letter)

	return canvas
}
