package projection

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis identifies one of the three rotation axes.
type Axis int

// Rotation axes.
const (
	AxisX Axis = iota // pitch axis, horizontal
	AxisY             // yaw axis, vertical
	AxisZ             // roll axis, along the view
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// AxisRotation returns the elementary right-handed rotation about the given
// axis. The angle is in radians. Axis values outside X, Y and Z yield
// ErrInvalidAxis.
func AxisRotation(axis Axis, angle float64) (mgl64.Mat3, error) {
	switch axis {
	case AxisX:
		return mgl64.Rotate3DX(angle), nil
	case AxisY:
		return mgl64.Rotate3DY(angle), nil
	case AxisZ:
		return mgl64.Rotate3DZ(angle), nil
	default:
		return mgl64.Ident3(), fmt.Errorf("%w: %s", ErrInvalidAxis, axis)
	}
}

// ComposeRotation combines viewing angles in degrees into a single rotation
// matrix. A camera-space ray is rotated by yaw first, then pitch, then
// roll, so the result is Rz(roll)·Rx(pitch)·Ry(yaw).
func ComposeRotation(yaw, pitch, roll float64) mgl64.Mat3 {
	ry, _ := AxisRotation(AxisY, mgl64.DegToRad(yaw))
	rx, _ := AxisRotation(AxisX, mgl64.DegToRad(pitch))
	rz, _ := AxisRotation(AxisZ, mgl64.DegToRad(roll))
	return rz.Mul3(rx).Mul3(ry)
}

// DecomposeRotation recovers the yaw, pitch and roll angles in degrees that
// ComposeRotation would combine into m. Pitch is reported in [-90, 90]; at
// the poles, where pitch is exactly ±90°, yaw and roll describe the same
// turn and the whole of it is attributed to yaw.
func DecomposeRotation(m mgl64.Mat3) (yaw, pitch, roll float64) {
	// For R = Rz(roll)·Rx(pitch)·Ry(yaw):
	//   r21 = sin(pitch)
	//   r20 = -cos(pitch)·sin(yaw)   r22 = cos(pitch)·cos(yaw)
	//   r01 = -sin(roll)·cos(pitch)  r11 = cos(roll)·cos(pitch)
	sp := min(1.0, max(-1.0, m.At(2, 1)))
	pitch = gomath.Asin(sp)

	if gomath.Abs(sp) > 1-1e-12 {
		// cos(pitch) vanished; the first row still holds yaw±roll.
		yaw = gomath.Atan2(m.At(0, 2), m.At(0, 0))
		roll = 0
	} else {
		yaw = gomath.Atan2(-m.At(2, 0), m.At(2, 2))
		roll = gomath.Atan2(-m.At(0, 1), m.At(1, 1))
	}
	return mgl64.RadToDeg(yaw), mgl64.RadToDeg(pitch), mgl64.RadToDeg(roll)
}
