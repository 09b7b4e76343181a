package quotegen

import (
	"image"
	"image/color"
)

// horizontalGradient builds a width×height strip whose columns blend
// linearly from one color into another. Column 0 is exactly from and the
// last column is exactly to; a one-column strip is solid from.
func horizontalGradient(width, height int, from, to color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		var t float64
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		c := lerpNRGBA(from, to, t)
		for y := 0; y < height; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.NRGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}
