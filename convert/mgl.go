// Package convert moves precise's double-precision vectors and rotations to and from the math types of other Go
// libraries. Conversions to single precision round each component to the nearest float32; nothing else is changed,
// so a Quaternion that was not normalized stays that way.
package convert

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/precise"
)

// mgl32; the usual single-precision type on the engine side.

func ToMgl32Vec2(v precise.Vector2) mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

func FromMgl32Vec2(v mgl32.Vec2) precise.Vector2 {
	return precise.Vector2{X: float64(v[0]), Y: float64(v[1])}
}

func ToMgl32Vec3(v precise.Vector3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func FromMgl32Vec3(v mgl32.Vec3) precise.Vector3 {
	return precise.Vector3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func ToMgl32Vec4(v precise.Vector4) mgl32.Vec4 {
	return mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func FromMgl32Vec4(v mgl32.Vec4) precise.Vector4 {
	return precise.Vector4{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2]), W: float64(v[3])}
}

// ToMgl32Quat converts the Quaternion to an mgl32.Quat, which stores the scalar part as W and the vector part as V.
func ToMgl32Quat(q precise.Quaternion) mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}}
}

func FromMgl32Quat(q mgl32.Quat) precise.Quaternion {
	return precise.NewQuaternion(float64(q.V[0]), float64(q.V[1]), float64(q.V[2]), float64(q.W))
}

// mgl64

func ToMgl64Vec2(v precise.Vector2) mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func FromMgl64Vec2(v mgl64.Vec2) precise.Vector2 {
	return precise.Vector2{X: v[0], Y: v[1]}
}

func ToMgl64Vec3(v precise.Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func FromMgl64Vec3(v mgl64.Vec3) precise.Vector3 {
	return precise.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func ToMgl64Vec4(v precise.Vector4) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func FromMgl64Vec4(v mgl64.Vec4) precise.Vector4 {
	return precise.Vector4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

func ToMgl64Quat(q precise.Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

func FromMgl64Quat(q mgl64.Quat) precise.Quaternion {
	return precise.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W)
}

// ToMgl64Mat4 returns the Transform as a column-major model matrix (translation * rotation * scale).
func ToMgl64Mat4(t precise.Transform) mgl64.Mat4 {
	translate := mgl64.Translate3D(t.Position.X, t.Position.Y, t.Position.Z)
	scale := mgl64.Scale3D(t.Scale.X, t.Scale.Y, t.Scale.Z)
	return translate.Mul4(ToMgl64Quat(t.Rotation).Mat4()).Mul4(scale)
}

// ToMgl32Mat4 is ToMgl64Mat4, rounded down to single precision at the very end.
func ToMgl32Mat4(t precise.Transform) mgl32.Mat4 {
	m := ToMgl64Mat4(t)
	out := mgl32.Mat4{}
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
