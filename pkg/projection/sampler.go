package projection

import (
	"image"
	"image/color"
	gomath "math"
)

// SampleBilinear reads the panorama at fractional pixel coordinates with
// four-neighbor bilinear interpolation. The horizontal axis wraps, since
// longitude is periodic x may be any real value including negatives; the
// vertical axis clamps to the top and bottom rows, latitude does not wrap
// across the poles. The image must be non-empty.
func SampleBilinear(img *image.RGBA, x, y float64) color.RGBA {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	x0 := int(gomath.Floor(x))
	y0 := int(gomath.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	i00 := img.PixOffset(bounds.Min.X+wrapIndex(x0, w), bounds.Min.Y+clampIndex(y0, h))
	i10 := img.PixOffset(bounds.Min.X+wrapIndex(x0+1, w), bounds.Min.Y+clampIndex(y0, h))
	i01 := img.PixOffset(bounds.Min.X+wrapIndex(x0, w), bounds.Min.Y+clampIndex(y0+1, h))
	i11 := img.PixOffset(bounds.Min.X+wrapIndex(x0+1, w), bounds.Min.Y+clampIndex(y0+1, h))

	w00 := (1 - tx) * (1 - ty)
	w10 := tx * (1 - ty)
	w01 := (1 - tx) * ty
	w11 := tx * ty

	var out [4]uint8
	for c := 0; c < 4; c++ {
		val := w00*float64(img.Pix[i00+c]) + w10*float64(img.Pix[i10+c]) +
			w01*float64(img.Pix[i01+c]) + w11*float64(img.Pix[i11+c])
		if val < 0 {
			val = 0
		} else if val > 255 {
			val = 255
		}
		out[c] = uint8(val + 0.5)
	}
	return color.RGBA{out[0], out[1], out[2], out[3]}
}

// wrapIndex folds i into [0, n) treating the axis as periodic.
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// clampIndex pins i to [0, n-1].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
