// Package projection converts equirectangular panoramas into flat
// perspective cube faces.
//
// A face is rendered in four steps: a grid of camera-space viewing rays is
// generated for the face size and field of view, the rays are reoriented by
// the yaw/pitch/roll rotation of the requested viewing direction, each
// rotated ray is mapped to spherical coordinates on the panorama sphere, and
// the panorama is resampled bilinearly at the resulting fractional pixel
// positions. Faces share no mutable state, so any number of them can be
// rendered concurrently from one panorama.
package projection

import (
	"errors"
	"fmt"
	"image"
	"sync"
)

// Projection errors.
var (
	ErrInvalidAxis        = errors.New("invalid rotation axis")
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Rendering defaults.
const (
	DefaultFaceSize = 512 // face edge length in pixels
	DefaultFOV      = 90.0
)

// Direction is a named viewing orientation. Angles are in degrees: yaw
// turns about the vertical axis (positive to the right), pitch about the
// horizontal axis, roll about the viewing axis.
type Direction struct {
	Name  string
	Yaw   float64
	Pitch float64
	Roll  float64
}

// CanonicalDirections returns the four horizontal cube faces: front, right,
// back and left.
func CanonicalDirections() []Direction {
	return []Direction{
		{Name: "front", Yaw: 0},
		{Name: "right", Yaw: 90},
		{Name: "back", Yaw: 180},
		{Name: "left", Yaw: -90},
	}
}

// Face is the rendered image for one viewing direction.
type Face struct {
	Direction Direction
	Image     *image.RGBA
}

// Engine renders cube faces of a fixed size and field of view. The ray grid
// is computed once at construction and shared by every render, so an Engine
// is immutable and safe for concurrent use.
type Engine struct {
	grid *RayGrid
}

// NewEngine creates an engine rendering faceSize×faceSize faces with the
// given field of view in degrees.
func NewEngine(faceSize int, fov float64) (*Engine, error) {
	grid, err := GenerateRays(faceSize, fov)
	if err != nil {
		return nil, err
	}
	return &Engine{grid: grid}, nil
}

// FaceSize returns the edge length of rendered faces in pixels.
func (e *Engine) FaceSize() int {
	return e.grid.Size()
}

// FOV returns the field of view in degrees.
func (e *Engine) FOV() float64 {
	return e.grid.FOV()
}

// RenderFace projects the panorama into the flat perspective view for one
// direction. The panorama must be a non-empty equirectangular image; its
// aspect ratio is not checked, a wrong one just distorts the result.
func (e *Engine) RenderFace(pano *image.RGBA, dir Direction) (*image.RGBA, error) {
	if err := validatePanorama(pano); err != nil {
		return nil, err
	}
	return e.renderFace(pano, dir), nil
}

// Project renders one face per direction concurrently. A nil or empty dirs
// slice renders the canonical four. The returned faces preserve the order
// of dirs.
func (e *Engine) Project(pano *image.RGBA, dirs []Direction) ([]Face, error) {
	if err := validatePanorama(pano); err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		dirs = CanonicalDirections()
	}

	faces := make([]Face, len(dirs))
	var wg sync.WaitGroup
	for i, dir := range dirs {
		wg.Add(1)
		go func(i int, dir Direction) {
			defer wg.Done()
			faces[i] = Face{Direction: dir, Image: e.renderFace(pano, dir)}
		}(i, dir)
	}
	wg.Wait()
	return faces, nil
}

func (e *Engine) renderFace(pano *image.RGBA, dir Direction) *image.RGBA {
	size := e.grid.Size()
	bounds := pano.Bounds()
	rot := ComposeRotation(dir.Yaw, dir.Pitch, dir.Roll)

	face := image.NewRGBA(image.Rect(0, 0, size, size))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			ray := rot.Mul3x1(e.grid.At(row, col))
			sx, sy := RayToPixel(ray, bounds.Dx(), bounds.Dy())
			face.SetRGBA(col, row, SampleBilinear(pano, sx, sy))
		}
	}
	return face
}

func validatePanorama(pano *image.RGBA) error {
	if pano == nil || pano.Bounds().Dx() < 1 || pano.Bounds().Dy() < 1 {
		return fmt.Errorf("%w: empty panorama", ErrDegenerateGeometry)
	}
	return nil
}
