package precise

import (
	"strconv"

	"github.com/solarlune/precise/math64"
)

// QuaternionEqualityThreshold is the dot product two Quaternions need to exceed to be considered Equal.
const QuaternionEqualityThreshold = 0.999999

// Beyond this portion of the squared length, ToEuler treats the rotation as pitched straight up or down.
const eulerPoleThreshold = 0.4995

// Blending switches from spherical to linear once the half-angle cosine reaches this value.
const slerpLinearThreshold = 0.99

// Quaternion represents a rotation in 3D space at double precision. X, Y, and Z are the vector part (the rotation axis scaled
// by the sine of half of the angle), and W is the scalar part (the cosine of half of the angle). Like the vector types,
// Quaternion is a value type and its functions return modified copies.
//
// A Quaternion that represents a rotation should have a length of 1; every function that builds or combines
// rotations returns a unit Quaternion. Setting the fields directly (or calling NewQuaternion) skips this, so
// those values are only rotations if you make them so.
type Quaternion struct {
	X, Y, Z, W float64
}

// NewQuaternion creates a new Quaternion directly out of the four components given. The components are not normalized.
func NewQuaternion(x, y, z, w float64) Quaternion {
	return Quaternion{x, y, z, w}
}

// NewQuaternionIdentity returns the identity Quaternion, (0, 0, 0, 1), which represents no rotation.
func NewQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// NewQuaternionAxisAngle returns a Quaternion that rotates by the given angle (in degrees) around the axis provided.
// An axis with no length returns the identity Quaternion.
func NewQuaternionAxisAngle(degrees float64, axis Vector3) Quaternion {

	if axis.MagnitudeSquared() == 0 {
		return NewQuaternionIdentity()
	}

	half := math64.ToRadians(degrees) / 2
	axis = axis.Unit().Scale(math64.Sin(half))

	return Quaternion{axis.X, axis.Y, axis.Z, math64.Cos(half)}.Unit()

}

// NewQuaternionEuler returns a Quaternion out of the given Euler angles, in degrees. The rotation rolls around Z first,
// then pitches around X, and then yaws around Y; that is, q = yaw * pitch * roll. ToEuler() reverses this.
func NewQuaternionEuler(x, y, z float64) Quaternion {

	pitch := math64.ToRadians(x) / 2
	yaw := math64.ToRadians(y) / 2
	roll := math64.ToRadians(z) / 2

	sx, cx := math64.Sin(pitch), math64.Cos(pitch)
	sy, cy := math64.Sin(yaw), math64.Cos(yaw)
	sz, cz := math64.Sin(roll), math64.Cos(roll)

	return Quaternion{
		X: cy*sx*cz + sy*cx*sz,
		Y: sy*cx*cz - cy*sx*sz,
		Z: cy*cx*sz - sy*sx*cz,
		W: cy*cx*cz + sy*sx*sz,
	}

}

// NewQuaternionEulerVector is NewQuaternionEuler with the angles taken from the components of the Vector3 given.
func NewQuaternionEulerVector(euler Vector3) Quaternion {
	return NewQuaternionEuler(euler.X, euler.Y, euler.Z)
}

// NewQuaternionLook returns a Quaternion that faces along the given forward direction, keeping WorldUp as up.
func NewQuaternionLook(forward Vector3) Quaternion {
	return NewQuaternionLookRotation(forward, WorldUp)
}

// NewQuaternionLookRotation returns a Quaternion that rotates WorldForward to face along forward, with its up as close to
// the given up vector as possible.
// A forward vector with no length returns the identity Quaternion. If up is parallel to forward, WorldRight is used as
// the up vector instead (or WorldBackward, if forward is already along WorldRight).
func NewQuaternionLookRotation(forward, up Vector3) Quaternion {

	forward = forward.Unit()

	if forward.IsZero() {
		return NewQuaternionIdentity()
	}

	right := up.Cross(forward).Unit()

	if right.IsZero() {
		up = WorldRight
		if math64.Abs(forward.Dot(up)) > 0.999 {
			up = WorldBackward
		}
		right = up.Cross(forward).Unit()
	}

	up = forward.Cross(right)

	return NewQuaternionFromBasis(right, up, forward)

}

// NewQuaternionFromBasis converts an orthonormal basis, given as the directions the rotation maps WorldRight, WorldUp,
// and WorldForward to, into a Quaternion.
func NewQuaternionFromBasis(right, up, forward Vector3) Quaternion {

	m00, m01, m02 := right.X, right.Y, right.Z
	m10, m11, m12 := up.X, up.Y, up.Z
	m20, m21, m22 := forward.X, forward.Y, forward.Z

	quat := Quaternion{}

	if trace := m00 + m11 + m22; trace > 0 {
		s := math64.Sqrt(trace + 1)
		quat.W = s * 0.5
		s = 0.5 / s
		quat.X = (m12 - m21) * s
		quat.Y = (m20 - m02) * s
		quat.Z = (m01 - m10) * s
		return quat
	}

	if m00 >= m11 && m00 >= m22 {
		s := math64.Sqrt(1 + m00 - m11 - m22)
		inv := 0.5 / s
		quat.X = 0.5 * s
		quat.Y = (m01 + m10) * inv
		quat.Z = (m02 + m20) * inv
		quat.W = (m12 - m21) * inv
		return quat
	}

	if m11 > m22 {
		s := math64.Sqrt(1 + m11 - m00 - m22)
		inv := 0.5 / s
		quat.X = (m10 + m01) * inv
		quat.Y = 0.5 * s
		quat.Z = (m21 + m12) * inv
		quat.W = (m20 - m02) * inv
		return quat
	}

	s := math64.Sqrt(1 + m22 - m00 - m11)
	inv := 0.5 / s
	quat.X = (m20 + m02) * inv
	quat.Y = (m21 + m12) * inv
	quat.Z = 0.5 * s
	quat.W = (m01 - m10) * inv
	return quat

}

// NewQuaternionFromToRotation returns a Quaternion that turns the from direction to face the to direction. It is built
// from the two look rotations, so it keeps WorldUp as upright as it can along the way.
func NewQuaternionFromToRotation(from, to Vector3) Quaternion {
	return NewQuaternionLook(to).Mult(NewQuaternionLook(from).Inverted()).Unit()
}

// Vector returns the X, Y, and Z components of the Quaternion as a Vector3.
func (quat Quaternion) Vector() Vector3 {
	return Vector3{quat.X, quat.Y, quat.Z}
}

// Dot returns the 4-component dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// Magnitude returns the length of the Quaternion.
func (quat Quaternion) Magnitude() float64 {
	return math64.Sqrt(quat.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Quaternion.
func (quat Quaternion) MagnitudeSquared() float64 {
	return quat.X*quat.X + quat.Y*quat.Y + quat.Z*quat.Z + quat.W*quat.W
}

// Unit returns a copy of the Quaternion scaled to a length of 1. A Quaternion with no length returns the identity Quaternion.
func (quat Quaternion) Unit() Quaternion {
	l := quat.Magnitude()
	if l == 0 {
		return NewQuaternionIdentity()
	}
	return Quaternion{quat.X / l, quat.Y / l, quat.Z / l, quat.W / l}
}

// Negated returns the Quaternion with all four components negated. The result represents the same rotation.
func (quat Quaternion) Negated() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, -quat.W}
}

// Conjugate returns the Quaternion with its vector part negated.
func (quat Quaternion) Conjugate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Inverted returns the inverse of the Quaternion; for a unit Quaternion this is the Conjugate. A Quaternion with no
// length is returned as-is.
func (quat Quaternion) Inverted() Quaternion {
	lengthSq := quat.MagnitudeSquared()
	if lengthSq == 0 {
		return quat
	}
	i := 1 / lengthSq
	return Quaternion{-quat.X * i, -quat.Y * i, -quat.Z * i, quat.W * i}
}

// Mult returns the Hamilton product of the two Quaternions. The resulting rotation applies other first, and then the
// calling Quaternion.
func (quat Quaternion) Mult(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y + quat.Y*other.W + quat.Z*other.X - quat.X*other.Z,
		Z: quat.W*other.Z + quat.Z*other.W + quat.X*other.Y - quat.Y*other.X,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// RotateVector returns the given point rotated by the Quaternion.
func (quat Quaternion) RotateVector(point Vector3) Vector3 {

	x2 := quat.X * 2
	y2 := quat.Y * 2
	z2 := quat.Z * 2
	xx := quat.X * x2
	yy := quat.Y * y2
	zz := quat.Z * z2
	xy := quat.X * y2
	xz := quat.X * z2
	yz := quat.Y * z2
	wx := quat.W * x2
	wy := quat.W * y2
	wz := quat.W * z2

	return Vector3{
		X: (1-(yy+zz))*point.X + (xy-wz)*point.Y + (xz+wy)*point.Z,
		Y: (xy+wz)*point.X + (1-(xx+zz))*point.Y + (yz-wx)*point.Z,
		Z: (xz-wy)*point.X + (yz+wx)*point.Y + (1-(xx+yy))*point.Z,
	}

}

// Forward returns the direction WorldForward points to after being rotated by the Quaternion.
func (quat Quaternion) Forward() Vector3 {
	return quat.RotateVector(WorldForward)
}

// Up returns the direction WorldUp points to after being rotated by the Quaternion.
func (quat Quaternion) Up() Vector3 {
	return quat.RotateVector(WorldUp)
}

// Right returns the direction WorldRight points to after being rotated by the Quaternion.
func (quat Quaternion) Right() Vector3 {
	return quat.RotateVector(WorldRight)
}

// angleRoundoff is how far below 1 the dot product of a unit Quaternion with itself can land from rounding alone.
const angleRoundoff = 8 * 2.220446049250313e-16

// Angle returns the angle between the two rotations in degrees, in the range [0, 180]. A dot product within rounding
// error of 1 counts as 0 degrees, so q.Angle(q) is exactly 0.
func (quat Quaternion) Angle(other Quaternion) float64 {
	dot := math64.Min(math64.Abs(quat.Dot(other)), 1)
	if dot >= 1-angleRoundoff {
		return 0
	}
	return math64.ToDegrees(math64.Acos(dot) * 2)
}

// Slerp spherically interpolates from the calling Quaternion towards the other one by t, which is clamped to [0, 1].
func (quat Quaternion) Slerp(other Quaternion, t float64) Quaternion {
	return quat.SlerpUnclamped(other, math64.Clamp01(t))
}

// SlerpUnclamped spherically interpolates from the calling Quaternion towards the other one by t, without clamping t.
// The interpolation follows the shorter arc. If either Quaternion has no length, the other is returned.
func (quat Quaternion) SlerpUnclamped(other Quaternion, t float64) Quaternion {

	if quat.MagnitudeSquared() == 0 {
		if other.MagnitudeSquared() == 0 {
			return NewQuaternionIdentity()
		}
		return other
	} else if other.MagnitudeSquared() == 0 {
		return quat
	}

	cosHalfAngle := quat.Dot(other)

	if cosHalfAngle >= 1 || cosHalfAngle <= -1 {
		return quat
	} else if cosHalfAngle < 0 {
		other = other.Negated()
		cosHalfAngle = -cosHalfAngle
	}

	var blendA, blendB float64

	if cosHalfAngle < slerpLinearThreshold {
		halfAngle := math64.Acos(cosHalfAngle)
		oneOverSin := 1 / math64.Sin(halfAngle)
		blendA = math64.Sin(halfAngle*(1-t)) * oneOverSin
		blendB = math64.Sin(halfAngle*t) * oneOverSin
	} else {
		// Too close together for sin(halfAngle) to be trusted
		blendA = 1 - t
		blendB = t
	}

	result := Quaternion{
		X: blendA*quat.X + blendB*other.X,
		Y: blendA*quat.Y + blendB*other.Y,
		Z: blendA*quat.Z + blendB*other.Z,
		W: blendA*quat.W + blendB*other.W,
	}

	return result.Unit()

}

// Lerp linearly interpolates from the calling Quaternion towards the other one by t (clamped to [0, 1]) and normalizes the
// result. It is cheaper than Slerp, but the rotation speed is not constant over t.
func (quat Quaternion) Lerp(other Quaternion, t float64) Quaternion {
	return quat.LerpUnclamped(other, math64.Clamp01(t))
}

// LerpUnclamped is Lerp without clamping t.
func (quat Quaternion) LerpUnclamped(other Quaternion, t float64) Quaternion {

	if quat.Dot(other) < 0 {
		other = other.Negated()
	}

	return Quaternion{
		X: quat.X + (other.X-quat.X)*t,
		Y: quat.Y + (other.Y-quat.Y)*t,
		Z: quat.Z + (other.Z-quat.Z)*t,
		W: quat.W + (other.W-quat.W)*t,
	}.Unit()

}

// RotateTowards rotates the calling Quaternion towards the other by no more than maxDegreesDelta.
func (quat Quaternion) RotateTowards(other Quaternion, maxDegreesDelta float64) Quaternion {
	angle := quat.Angle(other)
	if angle == 0 {
		return other
	}
	return quat.SlerpUnclamped(other, math64.Min(1, maxDegreesDelta/angle))
}

// ToEuler returns the Euler angles of the rotation in degrees, each in the range [0, 360); see NewQuaternionEuler for
// the order they apply in.
// When the rotation pitches (nearly) straight up or down, yaw and roll turn around the same axis, so
// the whole turn is reported as yaw and roll is 0.
func (quat Quaternion) ToEuler() Vector3 {

	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W

	unit := quat.MagnitudeSquared()
	test := x*w - y*z

	var euler Vector3

	if test > eulerPoleThreshold*unit {
		euler.X = math64.Pi / 2
		euler.Y = 2 * math64.Atan2(y, x)
	} else if test < -eulerPoleThreshold*unit {
		euler.X = -math64.Pi / 2
		euler.Y = -2 * math64.Atan2(y, x)
	} else {
		euler.X = math64.Asin(math64.Clamp(2*test/unit, -1, 1))
		euler.Y = math64.Atan2(2*(w*y+x*z), unit-2*(x*x+y*y))
		euler.Z = math64.Atan2(2*(w*z+x*y), unit-2*(x*x+z*z))
	}

	return Vector3{
		X: math64.NormalizeAngle(math64.ToDegrees(euler.X)),
		Y: math64.NormalizeAngle(math64.ToDegrees(euler.Y)),
		Z: math64.NormalizeAngle(math64.ToDegrees(euler.Z)),
	}

}

// ToAxisAngle returns the rotation as an axis and an angle in degrees. A rotation of (nearly) nothing has no meaningful
// axis, so WorldRight is returned for it.
func (quat Quaternion) ToAxisAngle() AxisAngle {

	if math64.Abs(quat.W) > 1 {
		quat = quat.Unit()
	}

	angle := math64.ToDegrees(2 * math64.Acos(quat.W))

	if den := math64.Sqrt(1 - quat.W*quat.W); den > 0.0001 {
		return AxisAngle{Axis: quat.Vector().Divide(den), Angle: angle}
	}

	return AxisAngle{Axis: WorldRight, Angle: angle}

}

// Equals returns true if the two Quaternions represent the same rotation, within QuaternionEqualityThreshold. Note that
// q and q.Negated() describe the same rotation, but are not Equal.
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat.Dot(other) > QuaternionEqualityThreshold
}

// Index returns the component at the given index, in X, Y, Z, W order. Any other index panics with an *IndexError.
func (quat Quaternion) Index(index int) float64 {
	switch index {
	case 0:
		return quat.X
	case 1:
		return quat.Y
	case 2:
		return quat.Z
	case 3:
		return quat.W
	}
	panicIndex("Quaternion", index, 4)
	return 0
}

// SetIndex returns a copy of the Quaternion with the component at the given index set to value. The result is not normalized.
func (quat Quaternion) SetIndex(index int, value float64) Quaternion {
	switch index {
	case 0:
		quat.X = value
	case 1:
		quat.Y = value
	case 2:
		quat.Z = value
	case 3:
		quat.W = value
	default:
		panicIndex("Quaternion", index, 4)
	}
	return quat
}

// Floats returns the Quaternion's components as a [4]float64 in X, Y, Z, W order.
func (quat Quaternion) Floats() [4]float64 {
	return [4]float64{quat.X, quat.Y, quat.Z, quat.W}
}

func (quat Quaternion) String() string {
	return "{" + strconv.FormatFloat(quat.X, 'f', 5, 64) + ", " + strconv.FormatFloat(quat.Y, 'f', 5, 64) + ", " +
		strconv.FormatFloat(quat.Z, 'f', 5, 64) + ", " + strconv.FormatFloat(quat.W, 'f', 5, 64) + "}"
}
