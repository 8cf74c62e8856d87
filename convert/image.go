package convert

import (
	"github.com/solarlune/precise"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The golang.org/x/image/math types are plain arrays; Quaternions travel as a Vec4 in X, Y, Z, W order.

func ToF32Vec2(v precise.Vector2) f32.Vec2 {
	return f32.Vec2{float32(v.X), float32(v.Y)}
}

func FromF32Vec2(v f32.Vec2) precise.Vector2 {
	return precise.Vector2{X: float64(v[0]), Y: float64(v[1])}
}

func ToF32Vec3(v precise.Vector3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromF32Vec3(v f32.Vec3) precise.Vector3 {
	return precise.Vector3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func ToF32Vec4(v precise.Vector4) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func FromF32Vec4(v f32.Vec4) precise.Vector4 {
	return precise.Vector4{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2]), W: float64(v[3])}
}

func QuaternionToF32(q precise.Quaternion) f32.Vec4 {
	return f32.Vec4{float32(q.X), float32(q.Y), float32(q.Z), float32(q.W)}
}

func QuaternionFromF32(v f32.Vec4) precise.Quaternion {
	return precise.NewQuaternion(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

func ToF64Vec2(v precise.Vector2) f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

func FromF64Vec2(v f64.Vec2) precise.Vector2 {
	return precise.Vector2{X: v[0], Y: v[1]}
}

func ToF64Vec3(v precise.Vector3) f64.Vec3 {
	return f64.Vec3(v.Floats())
}

func FromF64Vec3(v f64.Vec3) precise.Vector3 {
	return precise.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func ToF64Vec4(v precise.Vector4) f64.Vec4 {
	return f64.Vec4(v.Floats())
}

func FromF64Vec4(v f64.Vec4) precise.Vector4 {
	return precise.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func QuaternionToF64(q precise.Quaternion) f64.Vec4 {
	return f64.Vec4(q.Floats())
}

func QuaternionFromF64(v f64.Vec4) precise.Quaternion {
	return precise.NewQuaternion(v[0], v[1], v[2], v[3])
}

// ToF64Aff4 returns the Transform as a row-major affine matrix (the implicit bottom row is 0, 0, 0, 1).
func ToF64Aff4(t precise.Transform) f64.Aff4 {

	right := t.Rotation.Right().Scale(t.Scale.X)
	up := t.Rotation.Up().Scale(t.Scale.Y)
	forward := t.Rotation.Forward().Scale(t.Scale.Z)

	return f64.Aff4{
		right.X, up.X, forward.X, t.Position.X,
		right.Y, up.Y, forward.Y, t.Position.Y,
		right.Z, up.Z, forward.Z, t.Position.Z,
	}

}
