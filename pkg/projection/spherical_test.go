package projection

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestRayToLatLong_CardinalDirections(t *testing.T) {
	tests := []struct {
		name    string
		ray     mgl64.Vec3
		wantLat float64
		wantLon float64
	}{
		{"forward", mgl64.Vec3{0, 0, 1}, 0, 0},
		{"right", mgl64.Vec3{1, 0, 0}, 0, gomath.Pi / 2},
		{"left", mgl64.Vec3{-1, 0, 0}, 0, -gomath.Pi / 2},
		{"behind", mgl64.Vec3{0, 0, -1}, 0, gomath.Pi},
		{"up", mgl64.Vec3{0, 1, 0}, gomath.Pi / 2, 0},
		{"down", mgl64.Vec3{0, -1, 0}, -gomath.Pi / 2, 0},
		{"forward right diagonal", mgl64.Vec3{1, 0, 1}, 0, gomath.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := RayToLatLong(tt.ray)
			if gomath.Abs(lat-tt.wantLat) > 1e-12 {
				t.Errorf("lat = %v, want %v", lat, tt.wantLat)
			}
			if gomath.Abs(lon-tt.wantLon) > 1e-12 {
				t.Errorf("lon = %v, want %v", lon, tt.wantLon)
			}
		})
	}
}

func TestRayToLatLong_NormalizesInput(t *testing.T) {
	// A non-unit vertical ray must still land exactly on the pole.
	lat, _ := RayToLatLong(mgl64.Vec3{0, 2.5, 0})
	if gomath.Abs(lat-gomath.Pi/2) > 1e-12 {
		t.Errorf("lat = %v, want π/2", lat)
	}
}

func TestLatLongToPixel(t *testing.T) {
	const w, h = 361, 181

	tests := []struct {
		name     string
		lat, lon float64
		wantX    float64
		wantY    float64
	}{
		{"center", 0, 0, 180, 90},
		{"north pole", gomath.Pi / 2, 0, 180, 0},
		{"south pole", -gomath.Pi / 2, 0, 180, 180},
		{"date line", 0, gomath.Pi, 360, 90},
		{"west edge", 0, -gomath.Pi, 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := LatLongToPixel(tt.lat, tt.lon, w, h)
			if gomath.Abs(x-tt.wantX) > 1e-9 {
				t.Errorf("x = %v, want %v", x, tt.wantX)
			}
			if gomath.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("y = %v, want %v", y, tt.wantY)
			}
		})
	}
}

func TestRayToPixel_Center(t *testing.T) {
	x, y := RayToPixel(mgl64.Vec3{0, 0, 1}, 201, 101)
	if x != 100 || y != 50 {
		t.Errorf("forward ray maps to (%v, %v), want (100, 50)", x, y)
	}
}
