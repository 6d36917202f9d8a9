package math

// ------------------------------------------
// Transform 2D
// ------------------------------------------

func TransformCreate2D() Transform2D {
	return Transform2D{
		translation: NewMat3Identity(),
		rotation:    NewMat3Identity(),
		scale:       NewMat3Identity(),
		local:       NewMat3Identity(),
		global:      NewMat3Identity(),
	}
}

func TransformFromPosition2D(position Vec2) Transform2D {
	t := TransformCreate2D()
	t.SetTranslation(position.X, position.Y)
	t.UpdateTransforms(nil)
	return t
}

func (t *Transform2D) SetTranslation(x, y float32) {
	t.translation = NewMat3Translation(x, y)
}

// Translate moves the transform by the given offset, relative to its current translation.
func (t *Transform2D) Translate(x, y float32) {
	t.translation = t.translation.Mul(NewMat3Translation(x, y))
}

func (t *Transform2D) SetRotation(radians float32) {
	t.rotation = NewMat3Rotation(radians)
}

// Rotate adds radians to the current rotation.
func (t *Transform2D) Rotate(radians float32) {
	t.rotation = t.rotation.Mul(NewMat3Rotation(radians))
}

func (t *Transform2D) SetScale(x, y float32) {
	t.scale = NewMat3Scale(x, y)
}

// Scale multiplies the current scale by the given factors.
func (t *Transform2D) Scale(x, y float32) {
	t.scale = t.scale.Mul(NewMat3Scale(x, y))
}

func (t *Transform2D) LocalPosition() Vec2 {
	return t.translation.Translation()
}

func (t *Transform2D) SetLocalPosition(position Vec2) {
	t.SetTranslation(position.X, position.Y)
}

// WorldPosition is the translation of the global matrix as of the last UpdateTransforms.
func (t *Transform2D) WorldPosition() Vec2 {
	return t.global.Translation()
}

// LocalRotation returns the current rotation angle in radians.
func (t *Transform2D) LocalRotation() float32 {
	return t.rotation.Rotation()
}

// LocalScale returns the diagonal of the scale matrix.
func (t *Transform2D) LocalScale() Vec2 {
	return Vec2{t.scale.Data[0], t.scale.Data[4]}
}

// Forward returns the unit direction the rotation matrix points the X axis at.
func (t *Transform2D) Forward() Vec2 {
	return t.rotation.Forward().Normalize()
}

// WorldForward returns the unit X axis of the global matrix.
func (t *Transform2D) WorldForward() Vec2 {
	return t.global.Forward().Normalize()
}

func (t *Transform2D) Local() Mat3 {
	return t.local
}

func (t *Transform2D) Global() Mat3 {
	return t.global
}

/**
 * @brief Recomputes the local matrix as translation * rotation * scale and
 * the global matrix as parent * local. A nil parent means the transform
 * sits at the root and global equals local. Call it after every mutation
 * and before anything reads Global or WorldPosition.
 */
func (t *Transform2D) UpdateTransforms(parent *Mat3) {
	t.local = t.translation.Mul(t.rotation).Mul(t.scale)
	if parent != nil {
		t.global = parent.Mul(t.local)
		t.parentRotation = parent.Rotation()
		return
	}
	t.global = t.local
	t.parentRotation = 0
}

// LookAt turns the transform so its world forward axis points at target,
// a point in world space.
func (t *Transform2D) LookAt(target Vec2) {
	t.Face(target.Sub(t.WorldPosition()))
}

/**
 * @brief Rotates the transform so its world forward axis points along
 * direction. The signed angle between the current world forward and the
 * wanted direction comes from acos of their dot product, with the sign
 * taken from the perpendicular dot product. The parent's rotation is the one
 * seen by the last UpdateTransforms. A zero direction falls back to the
 * canonical forward (1, 0).
 */
func (t *Transform2D) Face(direction Vec2) {
	direction = direction.Normalize()
	if direction.LengthSquared() == 0 {
		direction = NewVec2Right()
	}

	forward := NewMat3Rotation(t.parentRotation).Mul(t.rotation).Forward().Normalize()
	angle := Acos(forward.Dot(direction))
	if forward.PerpDot(direction) < 0 {
		angle = -angle
	}
	t.Rotate(angle)
}

// ------------------------------------------
// Transform 3D
// ------------------------------------------

func TransformCreate3D() *Transform3D {
	return &Transform3D{
		translation: NewMat4Identity(),
		rotation:    NewMat4Identity(),
		scale:       NewMat4Identity(),
		local:       NewMat4Identity(),
		global:      NewMat4Identity(),
		Parent:      nil,
	}
}

func TransformFromPosition3D(position Vec3) *Transform3D {
	t := TransformCreate3D()
	t.SetTranslation(position.X, position.Y, position.Z)
	t.UpdateTransforms()
	return t
}

func (t *Transform3D) SetTranslation(x, y, z float32) {
	t.translation = NewMat4Translation(x, y, z)
}

func (t *Transform3D) Translate(x, y, z float32) {
	t.translation = t.translation.Mul(NewMat4Translation(x, y, z))
}

// SetRotation replaces the rotation with Rx(x) * Ry(y) * Rz(z).
func (t *Transform3D) SetRotation(x, y, z float32) {
	t.rotation = NewMat4Rotation(x, y, z)
}

func (t *Transform3D) Rotate(x, y, z float32) {
	t.rotation = t.rotation.Mul(NewMat4Rotation(x, y, z))
}

func (t *Transform3D) SetScale(x, y, z float32) {
	t.scale = NewMat4Scale(x, y, z)
}

func (t *Transform3D) Scale(x, y, z float32) {
	t.scale = t.scale.Mul(NewMat4Scale(x, y, z))
}

func (t *Transform3D) LocalPosition() Vec3 {
	return t.translation.Translation()
}

func (t *Transform3D) WorldPosition() Vec3 {
	return t.global.Translation()
}

func (t *Transform3D) Forward() Vec3 {
	return t.rotation.Forward().Normalize()
}

func (t *Transform3D) Local() Mat4 {
	return t.local
}

func (t *Transform3D) Global() Mat4 {
	return t.global
}

// UpdateTransforms recomputes local and global. The parent's global is read
// as it stands, so parents must be updated first within a frame.
func (t *Transform3D) UpdateTransforms() {
	t.local = t.translation.Mul(t.rotation).Mul(t.scale)
	if t.Parent != nil {
		t.global = t.Parent.global.Mul(t.local)
		return
	}
	t.global = t.local
}

/**
 * @brief Resolves the world matrix by walking the parent chain, updating
 * every transform on the way. Use it when update order cannot be
 * guaranteed. The chain must be acyclic or this never returns.
 */
func (t *Transform3D) GetWorld() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	t.local = t.translation.Mul(t.rotation).Mul(t.scale)
	if t.Parent != nil {
		t.global = t.Parent.GetWorld().Mul(t.local)
	} else {
		t.global = t.local
	}
	return t.global
}

/**
 * @brief Rotates the transform so its forward (Z) axis points at target.
 * The basis is built from cross products against the world up axis. When
 * the direction is parallel to up, the world right axis is used instead to
 * avoid a degenerate cross product. A target on top of the transform falls
 * back to the canonical forward (0, 0, 1).
 */
func (t *Transform3D) LookAt(target Vec3) {
	forward := target.Sub(t.WorldPosition()).Normalize()
	if forward.LengthSquared() == 0 {
		forward = NewVec3Forward()
	}

	up := NewVec3Up()
	var right Vec3
	if kabs(forward.Dot(up)) >= 1.0-K_FLOAT_EPSILON {
		right = NewVec3Right()
	} else {
		right = up.Cross(forward).Normalize()
	}
	newUp := forward.Cross(right).Normalize()

	t.rotation = NewMat4Basis(right, newUp, forward)
}
