package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief a 3x3 row-major matrix, used for 2D transformations in
 * homogeneous coordinates. Element (row, col) lives at Data[row*3+col].
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}

/**
 * @brief a 4x4 row-major matrix, used for 3D transformations in
 * homogeneous coordinates. Element (row, col) lives at Data[row*4+col].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 2d object.
 */
type Extents2D struct {
	/** @brief The minimum extents of the object. */
	Min Vec2
	/** @brief The maximum extents of the object. */
	Max Vec2
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

/**
 * @brief Represents the transform of an object on a 2D plane.
 * Translation, rotation and scale are kept as separate matrices so each
 * can be mutated independently. Local and Global are derived by
 * UpdateTransforms and must not be edited directly.
 */
type Transform2D struct {
	translation Mat3
	rotation    Mat3
	scale       Mat3

	local  Mat3
	global Mat3
	// rotation of the parent's global matrix as of the last UpdateTransforms
	parentRotation float32
}

/**
 * @brief Represents the transform of an object in 3D space.
 * Unlike Transform2D it resolves its parent itself, walking the
 * Parent pointer chain. The chain must be acyclic.
 */
type Transform3D struct {
	translation Mat4
	rotation    Mat4
	scale       Mat4

	local  Mat4
	global Mat4

	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform3D
}
