package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMat3(seed float32) Mat3 {
	return NewMat3(
		seed, 2, -1,
		0.5, seed*2, 3,
		4, -2, seed+1,
	)
}

func sampleMat4(seed float32) Mat4 {
	var m Mat4
	for i := range m.Data {
		m.Data[i] = seed + float32(i%5) - float32(i/3)
	}
	return m
}

func TestMat3Identity(t *testing.T) {
	a := sampleMat3(3)
	id := NewMat3Identity()
	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
}

func TestMat3AddSub(t *testing.T) {
	a := sampleMat3(1)
	b := sampleMat3(2)
	assert.Equal(t, a, a.Add(b).Sub(b))
	assert.Equal(t, Mat3{}, a.Sub(a))
	assert.Equal(t, float32(3), a.Add(b).At(0, 0))
}

func TestMat3MulAssociativeNotCommutative(t *testing.T) {
	a := NewMat3Translation(5, -2)
	b := NewMat3Rotation(0.7)
	c := NewMat3Scale(2, 3)

	assert.True(t, a.Mul(b).Mul(c).Compare(a.Mul(b.Mul(c)), tol))
	assert.False(t, a.Mul(b).Equal(b.Mul(a)))

	x := sampleMat3(1)
	y := sampleMat3(2)
	z := sampleMat3(-1)
	assert.True(t, x.Mul(y).Mul(z).Compare(x.Mul(y.Mul(z)), 1e-3))
	assert.False(t, x.Mul(y).Equal(y.Mul(x)))
}

func TestMat3Factories(t *testing.T) {
	tr := NewMat3Translation(3, 4)
	assert.Equal(t, Vec2{3, 4}, tr.Translation())
	assert.Equal(t, Vec2{4, 6}, tr.TransformPoint(NewVec2(1, 2)))
	assert.Equal(t, Vec2{1, 2}, tr.TransformDirection(NewVec2(1, 2)))

	sc := NewMat3Scale(2, 3)
	assert.Equal(t, Vec2{2, 6}, sc.TransformPoint(NewVec2(1, 2)))
	assert.Equal(t, Vec2{2, 3}, sc.ScaleFactors())

	rot := NewMat3Rotation(K_HALF_PI)
	assert.True(t, rot.TransformPoint(NewVec2(1, 0)).Compare(NewVec2(0, 1), tol))
	assert.True(t, rot.TransformPoint(NewVec2(0, 1)).Compare(NewVec2(-1, 0), tol))
	assert.InDelta(t, K_HALF_PI, rot.Rotation(), tol)

	assert.Equal(t, Vec3{5, 6, 1}, tr.MulVec3(NewVec3(2, 2, 1)))
}

func TestMat3CompositionOrder(t *testing.T) {
	tr := NewMat3Translation(10, 0)
	rot := NewMat3Rotation(K_HALF_PI)
	sc := NewMat3Scale(2, 2)

	// translate * rotate * scale: scale first, then rotate, then move.
	trs := tr.Mul(rot).Mul(sc)
	assert.True(t, trs.TransformPoint(NewVec2(1, 0)).Compare(NewVec2(10, 2), tol))

	// scale * rotate * translate moves first, so the offset gets scaled and rotated.
	srt := sc.Mul(rot).Mul(tr)
	assert.True(t, srt.TransformPoint(NewVec2(1, 0)).Compare(NewVec2(0, 22), tol))
}

func TestMat4Identity(t *testing.T) {
	a := sampleMat4(2)
	id := NewMat4Identity()
	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
}

func TestMat4AddSub(t *testing.T) {
	a := sampleMat4(1)
	b := sampleMat4(4)
	assert.Equal(t, a, a.Add(b).Sub(b))

	sum := a.Add(b)
	for i := range sum.Data {
		assert.Equal(t, a.Data[i]+b.Data[i], sum.Data[i])
	}
}

func TestMat4MulAssociativeNotCommutative(t *testing.T) {
	a := NewMat4Translation(1, 2, 3)
	b := NewMat4RotationY(0.4)
	c := NewMat4Scale(2, 1, 0.5)

	assert.True(t, a.Mul(b).Mul(c).Compare(a.Mul(b.Mul(c)), tol))
	assert.False(t, a.Mul(b).Equal(b.Mul(a)))
}

func TestMat4Rotations(t *testing.T) {
	x := NewVec3Right()
	y := NewVec3Up()
	z := NewVec3Forward()

	assert.True(t, NewMat4RotationZ(K_HALF_PI).TransformPoint(x).Compare(y, tol))
	assert.True(t, NewMat4RotationX(K_HALF_PI).TransformPoint(y).Compare(z, tol))
	assert.True(t, NewMat4RotationY(K_HALF_PI).TransformPoint(z).Compare(x, tol))
}

func TestMat4RotationUsesEachAxisAngle(t *testing.T) {
	rx, ry, rz := float32(0.3), float32(-1.1), float32(0.8)
	expected := NewMat4RotationX(rx).Mul(NewMat4RotationY(ry)).Mul(NewMat4RotationZ(rz))
	assert.Equal(t, expected, NewMat4Rotation(rx, ry, rz))

	// The y angle must drive the Y rotation, not a second Z rotation.
	wrong := NewMat4RotationX(rx).Mul(NewMat4RotationZ(ry)).Mul(NewMat4RotationZ(rz))
	assert.False(t, NewMat4Rotation(rx, ry, rz).Compare(wrong, tol))
}

func TestMat4TranslationScale(t *testing.T) {
	tr := NewMat4Translation(1, 2, 3)
	assert.Equal(t, Vec3{1, 2, 3}, tr.Translation())
	assert.Equal(t, Vec3{2, 3, 4}, tr.TransformPoint(NewVec3One()))
	assert.Equal(t, Vec3{1, 1, 1}, tr.TransformDirection(NewVec3One()))

	sc := NewMat4Scale(2, 3, 4)
	assert.Equal(t, Vec4{2, 3, 4, 1}, sc.MulVec4(NewVec4(1, 1, 1, 1)))
}

func TestExtents2D(t *testing.T) {
	a := NewExtents2DFromCenter(NewVec2(0, 0), 10, 10)
	assert.Equal(t, Vec2{-5, -5}, a.Min)
	assert.Equal(t, Vec2{5, 5}, a.Max)
	assert.Equal(t, float32(10), a.Width())
	assert.Equal(t, Vec2{}, a.Center())

	touching := NewExtents2DFromCenter(NewVec2(10, 0), 10, 10)
	assert.True(t, a.Overlaps(touching))
	assert.True(t, touching.Overlaps(a))

	apart := NewExtents2DFromCenter(NewVec2(10.5, 0), 10, 10)
	assert.False(t, a.Overlaps(apart))
	assert.False(t, apart.Overlaps(a))

	assert.True(t, a.Contains(NewVec2(5, -5)))
	assert.Equal(t, Vec2{5, 0}, a.ClosestPoint(NewVec2(9, 0)))
}
