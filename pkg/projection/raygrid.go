package projection

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayGrid holds the camera-space viewing rays for one cube face, row-major
// with row 0 at the top of the face.
type RayGrid struct {
	size int
	fov  float64
	rays []mgl64.Vec3
}

// GenerateRays builds the faceSize×faceSize grid of viewing rays for a flat
// perspective face with the given field of view in degrees. Each ray is
// normalized and then has its x and y components rescaled by tan(fov/2), so
// at fov 90° the grid stays unit length. The face size must be positive and
// the field of view strictly between 0° and 180°.
func GenerateRays(faceSize int, fov float64) (*RayGrid, error) {
	if faceSize < 1 {
		return nil, fmt.Errorf("%w: face size %d", ErrDegenerateGeometry, faceSize)
	}
	if fov <= 0 || fov >= 180 {
		return nil, fmt.Errorf("%w: field of view %g", ErrDegenerateGeometry, fov)
	}

	scale := gomath.Tan(mgl64.DegToRad(fov) / 2)
	steps := linspace(-1, 1, faceSize)

	grid := &RayGrid{
		size: faceSize,
		fov:  fov,
		rays: make([]mgl64.Vec3, 0, faceSize*faceSize),
	}
	for row := 0; row < faceSize; row++ {
		y := -steps[row] // row 0 is the top of the face
		for col := 0; col < faceSize; col++ {
			v := mgl64.Vec3{steps[col], y, 1}.Normalize()
			grid.rays = append(grid.rays, mgl64.Vec3{v.X() * scale, v.Y() * scale, v.Z()})
		}
	}
	return grid, nil
}

// Size returns the face edge length in pixels.
func (g *RayGrid) Size() int {
	return g.size
}

// FOV returns the field of view in degrees the grid was built for.
func (g *RayGrid) FOV() float64 {
	return g.fov
}

// Len returns the number of rays, Size squared.
func (g *RayGrid) Len() int {
	return len(g.rays)
}

// At returns the ray for the face pixel at (row, col).
func (g *RayGrid) At(row, col int) mgl64.Vec3 {
	return g.rays[row*g.size+col]
}

// linspace returns n evenly spaced samples over [start, end], both
// endpoints included. n == 1 yields the interval midpoint.
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = (start + end) / 2
		return out
	}
	span := end - start
	for i := range out {
		out[i] = start + span*float64(i)/float64(n-1)
	}
	return out
}
