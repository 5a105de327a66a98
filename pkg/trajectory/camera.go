package trajectory

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"

	"github.com/pavelsg/panocube/pkg/projection"
)

// DefaultRigidTolerance bounds how far RᵀR may drift from the identity,
// and the determinant from +1, before a rotation stops counting as rigid.
const DefaultRigidTolerance = 1e-6

// RotationMatrix returns the camera rotation as an mgl64 matrix.
func (c Camera) RotationMatrix() mgl64.Mat3 {
	r := c.Rotation
	// mgl64 stores column-major, the record is row-major.
	return mgl64.Mat3{
		r[0], r[3], r[6],
		r[1], r[4], r[7],
		r[2], r[5], r[8],
	}
}

// EulerAngles decomposes the camera rotation into yaw, pitch and roll in
// degrees, using the projection package's composition order.
func (c Camera) EulerAngles() (yaw, pitch, roll float64) {
	return projection.DecomposeRotation(c.RotationMatrix())
}

// OrthonormalityError returns the Frobenius norm of RᵀR - I. A perfect
// rotation scores zero; exports damaged by truncation or bad bundle
// adjustment drift away from it.
func (c Camera) OrthonormalityError() float64 {
	r := mat.NewDense(3, 3, c.Rotation[:])

	var rtr mat.Dense
	rtr.Mul(r.T(), r)

	var diff mat.Dense
	diff.Sub(&rtr, identity3())
	return mat.Norm(&diff, 2)
}

// Determinant returns det(R): +1 for a proper rotation, -1 when the pose
// embeds a reflection.
func (c Camera) Determinant() float64 {
	return mat.Det(mat.NewDense(3, 3, c.Rotation[:]))
}

// IsRigid reports whether the rotation is orthonormal with determinant +1
// within tol. A non-positive tol falls back to DefaultRigidTolerance.
func (c Camera) IsRigid(tol float64) bool {
	if tol <= 0 {
		tol = DefaultRigidTolerance
	}
	return c.OrthonormalityError() <= tol && gomath.Abs(c.Determinant()-1) <= tol
}

func identity3() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}
