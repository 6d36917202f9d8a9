package math

// ------------------------------------------
// Matrix 3
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0},
 *   {0, 1, 0},
 *   {0, 0, 1}
 * }
 */
func NewMat3Identity() Mat3 {
	return Mat3{Data: [9]float32{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewMat3 builds a matrix from its elements in row order.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float32) Mat3 {
	return Mat3{Data: [9]float32{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}}
}

/**
 * @brief Creates and returns a translation matrix from the given offset.
 * The offset lives in the last column.
 */
func NewMat3Translation(x, y float32) Mat3 {
	m := NewMat3Identity()
	m.Data[2] = x
	m.Data[5] = y
	return m
}

/**
 * @brief Returns a scale matrix using the provided factors on the diagonal.
 */
func NewMat3Scale(x, y float32) Mat3 {
	m := NewMat3Identity()
	m.Data[0] = x
	m.Data[4] = y
	return m
}

/**
 * @brief Creates a counter-clockwise rotation matrix from the provided angle.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3Rotation(angle_radians float32) Mat3 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	m := NewMat3Identity()
	m.Data[0] = c
	m.Data[1] = -s
	m.Data[3] = s
	m.Data[4] = c
	return m
}

// At returns the element at the given row and column.
func (mt Mat3) At(row, col int) float32 {
	return mt.Data[row*3+col]
}

func (mt Mat3) Add(other Mat3) Mat3 {
	var out Mat3
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat3) Sub(other Mat3) Mat3 {
	var out Mat3
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

/**
 * @brief Returns the result of multiplying mt and other (mt * other).
 * Matrix multiplication is not commutative.
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += mt.Data[row*3+k] * other.Data[k*3+col]
			}
			out.Data[row*3+col] = sum
		}
	}
	return out
}

// MulVec3 returns mt * v.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		mt.Data[0]*v.X + mt.Data[1]*v.Y + mt.Data[2]*v.Z,
		mt.Data[3]*v.X + mt.Data[4]*v.Y + mt.Data[5]*v.Z,
		mt.Data[6]*v.X + mt.Data[7]*v.Y + mt.Data[8]*v.Z,
	}
}

// TransformPoint applies mt to the point p (w = 1), so translation applies.
func (mt Mat3) TransformPoint(p Vec2) Vec2 {
	return mt.MulVec3(p.ToVec3(1)).ToVec2()
}

// TransformDirection applies mt to the direction d (w = 0), ignoring translation.
func (mt Mat3) TransformDirection(d Vec2) Vec2 {
	return mt.MulVec3(d.ToVec3(0)).ToVec2()
}

// Translation returns the translation column.
func (mt Mat3) Translation() Vec2 {
	return Vec2{mt.Data[2], mt.Data[5]}
}

// Forward returns the transformed X axis, the direction an actor faces.
func (mt Mat3) Forward() Vec2 {
	return Vec2{mt.Data[0], mt.Data[3]}
}

// Up returns the transformed Y axis.
func (mt Mat3) Up() Vec2 {
	return Vec2{mt.Data[1], mt.Data[4]}
}

// ScaleFactors returns the lengths of the X and Y basis columns.
func (mt Mat3) ScaleFactors() Vec2 {
	return Vec2{mt.Forward().Length(), mt.Up().Length()}
}

// Rotation returns the angle of the X basis column in radians.
func (mt Mat3) Rotation() float32 {
	f := mt.Forward()
	return Atan2(f.Y, f.X)
}

func (mt Mat3) Equal(other Mat3) bool {
	return mt.Data == other.Data
}

// Compare reports whether every element differs by at most tolerance.
func (mt Mat3) Compare(other Mat3, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity() Mat4 {
	return Mat4{Data: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(x, y, z float32) Mat4 {
	m := NewMat4Identity()
	m.Data[3] = x
	m.Data[7] = y
	m.Data[11] = z
	return m
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(x, y, z float32) Mat4 {
	m := NewMat4Identity()
	m.Data[0] = x
	m.Data[5] = y
	m.Data[10] = z
	return m
}

// NewMat4RotationX returns a rotation of angle_radians around the X axis.
func NewMat4RotationX(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	m := NewMat4Identity()
	m.Data[5] = c
	m.Data[6] = -s
	m.Data[9] = s
	m.Data[10] = c
	return m
}

// NewMat4RotationY returns a rotation of angle_radians around the Y axis.
func NewMat4RotationY(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	m := NewMat4Identity()
	m.Data[0] = c
	m.Data[2] = s
	m.Data[8] = -s
	m.Data[10] = c
	return m
}

// NewMat4RotationZ returns a rotation of angle_radians around the Z axis.
func NewMat4RotationZ(angle_radians float32) Mat4 {
	c := kcos(angle_radians)
	s := ksin(angle_radians)
	m := NewMat4Identity()
	m.Data[0] = c
	m.Data[1] = -s
	m.Data[4] = s
	m.Data[5] = c
	return m
}

/**
 * @brief Creates a rotation matrix from the provided euler angles,
 * composed as Rx * Ry * Rz. Each axis uses its own angle.
 */
func NewMat4Rotation(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4RotationX(x_radians)
	ry := NewMat4RotationY(y_radians)
	rz := NewMat4RotationZ(z_radians)
	return rx.Mul(ry).Mul(rz)
}

// NewMat4Basis returns a rotation whose columns are the given axes.
func NewMat4Basis(right, up, forward Vec3) Mat4 {
	m := NewMat4Identity()
	m.Data[0], m.Data[4], m.Data[8] = right.X, right.Y, right.Z
	m.Data[1], m.Data[5], m.Data[9] = up.X, up.Y, up.Z
	m.Data[2], m.Data[6], m.Data[10] = forward.X, forward.Y, forward.Z
	return m
}

func (mt Mat4) At(row, col int) float32 {
	return mt.Data[row*4+col]
}

func (mt Mat4) Add(other Mat4) Mat4 {
	var out Mat4
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] + other.Data[i]
	}
	return out
}

func (mt Mat4) Sub(other Mat4) Mat4 {
	var out Mat4
	for i := range mt.Data {
		out.Data[i] = mt.Data[i] - other.Data[i]
	}
	return out
}

/**
 * @brief Returns the result of multiplying mt and other (mt * other).
 * Matrix multiplication is not commutative.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += mt.Data[row*4+k] * other.Data[k*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

// MulVec4 returns mt * v.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

// TransformPoint applies mt to p with w = 1.
func (mt Mat4) TransformPoint(p Vec3) Vec3 {
	return mt.MulVec4(p.ToVec4(1)).ToVec3()
}

// TransformDirection applies mt to d with w = 0.
func (mt Mat4) TransformDirection(d Vec3) Vec3 {
	return mt.MulVec4(d.ToVec4(0)).ToVec3()
}

func (mt Mat4) Translation() Vec3 {
	return Vec3{mt.Data[3], mt.Data[7], mt.Data[11]}
}

// Right returns the transformed X axis.
func (mt Mat4) Right() Vec3 {
	return Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}
}

// Up returns the transformed Y axis.
func (mt Mat4) Up() Vec3 {
	return Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}
}

// Forward returns the transformed Z axis.
func (mt Mat4) Forward() Vec3 {
	return Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}
}

func (mt Mat4) Equal(other Mat4) bool {
	return mt.Data == other.Data
}

func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}
