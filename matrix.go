package tetrabounds

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
)

// Matrices in tetrabounds are mgl64.Mat4 values: column-major, multiplying column vectors (M * v), so a matrix composed as
// T * R * S applies scale first, then rotation, then translation.

// TransformPoint returns the point transformed by the matrix, with a homogeneous W of 1 (so translation applies).
func TransformPoint(m mgl64.Mat4, point mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(point.Vec4(1)).Vec3()
}

// TransformVector returns the vector transformed by the matrix, with a homogeneous W of 0 (so translation is ignored).
func TransformVector(m mgl64.Mat4, vec mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(vec.Vec4(0)).Vec3()
}

// matrixRight returns the right-facing rotational component of the matrix. For an identity matrix, this would be [1, 0, 0], or +X.
func matrixRight(m mgl64.Mat4) mgl64.Vec3 {
	v, _ := vecUnit(m.Col(0).Vec3())
	return v
}

// matrixUp returns the upward rotational component of the matrix. For an identity matrix, this would be [0, 1, 0], or +Y.
func matrixUp(m mgl64.Mat4) mgl64.Vec3 {
	v, _ := vecUnit(m.Col(1).Vec3())
	return v
}

// matrixBack returns the backward rotational component of the matrix. For an identity matrix, this would be [0, 0, 1], or +Z
// (towards the camera); forward is the inverse of this.
func matrixBack(m mgl64.Mat4) mgl64.Vec3 {
	v, _ := vecUnit(m.Col(2).Vec3())
	return v
}

// MatrixScale returns the scale encoded in the upper 3x3 of the matrix, as the lengths of its first three columns.
// A matrix that mirrors (negative determinant) reports a negative X scale.
func MatrixScale(m mgl64.Mat4) mgl64.Vec3 {
	scale := mgl64.Vec3{m.Col(0).Vec3().Len(), m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()}
	if m.Mat3().Det() < 0 {
		scale[0] = -scale[0]
	}
	return scale
}

// DecomposeMatrix decomposes the matrix and returns three components - the translation, the scale, and the rotation indicated by the
// matrix. Note that this is mainly used when loading a mesh from a 3D modeler - this being the case, it may not be the most precise,
// and shear is discarded.
func DecomposeMatrix(m mgl64.Mat4) (translation, scale mgl64.Vec3, rotation mgl64.Quat) {

	translation = m.Col(3).Vec3()
	scale = MatrixScale(m)

	rot := mgl64.Ident4()
	for c := 0; c < 3; c++ {
		col := m.Col(c).Vec3()
		if scale[c] != 0 {
			col = col.Mul(1 / scale[c])
		}
		rot.SetCol(c, col.Vec4(0))
	}

	rotation = mgl64.Mat4ToQuat(rot).Normalize()

	return translation, scale, rotation

}

// matrixIsIdentity returns if the matrix is exactly the identity matrix.
func matrixIsIdentity(m mgl64.Mat4) bool {
	return m == mgl64.Ident4()
}

// MatrixString returns the matrix as a human-readable string, one row per line.
func MatrixString(m mgl64.Mat4) string {
	s := "{"
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s += strconv.FormatFloat(m.At(r, c), 'f', -1, 64)
			if c < 3 {
				s += ", "
			}
		}
		if r < 3 {
			s += "\n"
		}
	}
	s += "}"
	return s
}

// maxAbsScale returns the largest absolute component of the matrix's scale.
func maxAbsScale(m mgl64.Mat4) float64 {
	s := MatrixScale(m)
	return math.Max(math.Abs(s[0]), math.Max(math.Abs(s[1]), math.Abs(s[2])))
}
