// Package precise is a double-precision math library for games and simulations: Vector2, Vector3, and Vector4 value
// types, Quaternion rotations, transforms, keyframe animation, and tweens.
//
// Every type is a value type, and every function returns a modified copy, so calls can be chained:
//
//	q := precise.NewQuaternionEuler(0, 90, 0)
//	p := q.RotateVector(precise.WorldForward).Scale(2)
//
// Angles are given in degrees. The coordinate system is left-handed with +Y up and +Z forward (see WorldUp and
// WorldForward). Euler angles are pitch (X), yaw (Y), and roll (Z), applied roll first, then pitch, then yaw.
//
// Scalar helpers live in the math64 subpackage, conversions to and from other Go math libraries in convert, and glTF node
// and animation import in gltfnode.
package precise
