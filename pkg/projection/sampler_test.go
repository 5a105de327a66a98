package projection

import (
	"image"
	"image/color"
	"testing"
)

// newTestImage builds a w×h RGBA image filled with the given color.
func newTestImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestSampleBilinear_IntegerCoordinates(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	colors := []color.RGBA{
		{10, 20, 30, 255},
		{40, 50, 60, 255},
		{70, 80, 90, 255},
		{100, 110, 120, 255},
	}
	img.SetRGBA(0, 0, colors[0])
	img.SetRGBA(1, 0, colors[1])
	img.SetRGBA(0, 1, colors[2])
	img.SetRGBA(1, 1, colors[3])

	tests := []struct {
		x, y float64
		want color.RGBA
	}{
		{0, 0, colors[0]},
		{1, 0, colors[1]},
		{0, 1, colors[2]},
		{1, 1, colors[3]},
	}

	for _, tt := range tests {
		if got := SampleBilinear(img, tt.x, tt.y); got != tt.want {
			t.Errorf("sample at (%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSampleBilinear_MidpointBlend(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{200, 0, 0, 255})

	got := SampleBilinear(img, 0.5, 0)
	want := color.RGBA{100, 0, 0, 255}
	if got != want {
		t.Errorf("midpoint sample = %v, want %v", got, want)
	}
}

func TestSampleBilinear_FractionalWeights(t *testing.T) {
	img := newTestImage(2, 2, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(0, 0, color.RGBA{100, 0, 0, 255})

	// Weight of (0,0) at (0.25, 0.25) is 0.75*0.75, so 56.25 rounds to 56.
	got := SampleBilinear(img, 0.25, 0.25)
	want := color.RGBA{56, 0, 0, 255}
	if got != want {
		t.Errorf("sample = %v, want %v", got, want)
	}
}

func TestSampleBilinear_HorizontalWrap(t *testing.T) {
	img := newTestImage(4, 1, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(0, 0, color.RGBA{240, 0, 0, 255})
	img.SetRGBA(3, 0, color.RGBA{0, 0, 80, 255})

	// Half a pixel left of the seam and half a pixel past the last
	// column both blend the last and first columns equally.
	left := SampleBilinear(img, -0.5, 0)
	right := SampleBilinear(img, 3.5, 0)
	want := color.RGBA{120, 0, 40, 255}

	if left != want {
		t.Errorf("sample at x=-0.5 = %v, want %v", left, want)
	}
	if right != want {
		t.Errorf("sample at x=3.5 = %v, want %v", right, want)
	}
	if left != right {
		t.Errorf("seam samples differ: %v vs %v", left, right)
	}
}

func TestSampleBilinear_VerticalClamp(t *testing.T) {
	img := newTestImage(2, 3, color.RGBA{0, 0, 0, 255})
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, color.RGBA{250, 0, 0, 255})
		img.SetRGBA(x, 2, color.RGBA{0, 0, 250, 255})
	}

	// Overshooting the top row must pin to it, not wrap to the bottom.
	top := SampleBilinear(img, 0, -0.7)
	if want := (color.RGBA{250, 0, 0, 255}); top != want {
		t.Errorf("sample above the top row = %v, want %v", top, want)
	}

	bottom := SampleBilinear(img, 0, 2.9)
	if want := (color.RGBA{0, 0, 250, 255}); bottom != want {
		t.Errorf("sample below the bottom row = %v, want %v", bottom, want)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 0},
		{7, 4, 3},
		{-1, 4, 3},
		{-4, 4, 0},
		{-5, 4, 3},
	}

	for _, tt := range tests {
		if got := wrapIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}

func TestClampIndex(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{-2, 5, 0},
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 4},
		{9, 5, 4},
	}

	for _, tt := range tests {
		if got := clampIndex(tt.i, tt.n); got != tt.want {
			t.Errorf("clampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
