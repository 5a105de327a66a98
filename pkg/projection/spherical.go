package projection

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayToLatLong converts a world-space ray direction into spherical
// coordinates on the panorama sphere. Longitude is measured about the
// vertical axis in (-π, π], zero straight ahead along +z and positive to
// the right; latitude is in [-π/2, π/2], positive up. The ray need not be
// unit length, it is normalized before the latitude is derived.
func RayToLatLong(ray mgl64.Vec3) (lat, lon float64) {
	v := ray.Normalize()
	lon = gomath.Atan2(v.X(), v.Z())
	lat = gomath.Asin(min(1.0, max(-1.0, v.Y())))
	return lat, lon
}

// LatLongToPixel maps spherical coordinates to fractional pixel coordinates
// on a width×height equirectangular panorama. Column 0 carries longitude
// -π and row 0 the north pole, matching the usual equirectangular layout.
func LatLongToPixel(lat, lon float64, width, height int) (x, y float64) {
	u := (lon + gomath.Pi) / (2 * gomath.Pi)
	v := (gomath.Pi/2 - lat) / gomath.Pi
	return u * float64(width-1), v * float64(height-1)
}

// RayToPixel maps a world-space ray direction straight to fractional pixel
// coordinates on a width×height equirectangular panorama.
func RayToPixel(ray mgl64.Vec3, width, height int) (x, y float64) {
	lat, lon := RayToLatLong(ray)
	return LatLongToPixel(lat, lon, width, height)
}
