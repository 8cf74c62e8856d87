package precise

import (
	"strconv"
	"strings"

	"github.com/solarlune/precise/math64"
)

// VectorEpsilon is the distance under which two vectors are considered equal by Equals.
const VectorEpsilon = 1e-9

// Magnitudes below this are treated as zero when measuring angles between vectors.
const vectorEpsilonNormalSqrt = 1e-15

// WorldRight represents a unit vector in the global direction of WorldRight (+X).
var WorldRight = NewVector3(1, 0, 0)

// WorldLeft represents a unit vector in the global direction of WorldLeft (-X).
var WorldLeft = WorldRight.Invert()

// WorldUp represents a unit vector in the global direction of WorldUp (+Y).
var WorldUp = NewVector3(0, 1, 0)

// WorldDown represents a unit vector in the global direction of WorldDown (-Y).
var WorldDown = WorldUp.Invert()

// WorldForward represents a unit vector in the global direction of WorldForward (+Z). Precise uses a left-handed
// coordinate system like most game engines, so forward points away from the viewer.
var WorldForward = NewVector3(0, 0, 1)

// WorldBackward represents a unit vector in the global direction of WorldBackward (-Z).
var WorldBackward = WorldForward.Invert()

// Vector3 represents a 3D Vector at double precision, which can be used for usual 3D applications (position, direction,
// velocity, etc). Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you
// can do method-chaining easily. Vector3s are most efficient when copied, so try not to store pointers to them.
type Vector3 struct {
	X float64 // The X (1st) component of the Vector3
	Y float64 // The Y (2nd) component of the Vector3
	Z float64 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector3Zero creates a new "zero-ed out" Vector3.
func NewVector3Zero() Vector3 {
	return Vector3{}
}

// NewVector3One creates a new Vector3 with all components set to 1.
func NewVector3One() Vector3 {
	return Vector3{1, 1, 1}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float64 {
	return math64.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math64.Sqrt().
func (vec Vector3) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector3 and the other one.
func (vec Vector3) Distance(other Vector3) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between the calling Vector3 and the other one.
func (vec Vector3) DistanceSquared(other Vector3) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// MultComp multiplies the Vector3 by the other one component by component.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length). A Vector3 with no length returns a zero Vector3.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l > math64.Epsilon {
		return vec.Divide(l)
	}
	return Vector3{}
}

// Swizzle swizzles the Vector3 using the string provided, returning the swizzled copy.
// The string should be of length 3 and composed of the axes of a vector, i.e. 'x', 'y', or 'z'.
// Example: `vec := Vector3{1, 2, 3}.Swizzle("zxy") // Returns a Vector3 of {3, 1, 2}.`
func (vec Vector3) Swizzle(swizzleString string) Vector3 {

	if len(swizzleString) != 3 {
		panic("Error: Can't call Vector3.Swizzle() with anything other than 3 values")
	}

	swizzleString = strings.ToLower(swizzleString)

	og := vec
	var targetValue float64

	for i, v := range swizzleString {

		switch v {
		case 'x':
			targetValue = og.X
		case 'y':
			targetValue = og.Y
		case 'z':
			targetValue = og.Z
		}

		switch i {
		case 0:
			vec.X = targetValue
		case 1:
			vec.Y = targetValue
		case 2:
			vec.Z = targetValue
		}

	}

	return vec

}

// SetX sets the X component in the vector to the value provided.
func (vec Vector3) SetX(x float64) Vector3 {
	vec.X = x
	return vec
}

// SetY sets the Y component in the vector to the value provided.
func (vec Vector3) SetY(y float64) Vector3 {
	vec.Y = y
	return vec
}

// SetZ sets the Z component in the vector to the value provided.
func (vec Vector3) SetZ(z float64) Vector3 {
	vec.Z = z
	return vec
}

// Set sets the values in the Vector3 to the x, y, and z values provided.
func (vec Vector3) Set(x, y, z float64) Vector3 {
	vec.X = x
	vec.Y = y
	vec.Z = z
	return vec
}

// Index returns the component at the given index (0 = X, 1 = Y, 2 = Z). Any other index panics with an *IndexError.
func (vec Vector3) Index(index int) float64 {
	switch index {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	case 2:
		return vec.Z
	}
	panicIndex("Vector3", index, 3)
	return 0
}

// SetIndex returns a copy of the Vector3 with the component at the given index set to value. Any index other than 0, 1, or 2
// panics with an *IndexError.
func (vec Vector3) SetIndex(index int, value float64) Vector3 {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	case 2:
		vec.Z = value
	default:
		panicIndex("Vector3", index, 3)
	}
	return vec
}

// Floats returns a [3]float64 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vector3s are closer together than VectorEpsilon.
func (vec Vector3) Equals(other Vector3) bool {
	return vec.DistanceSquared(other) < VectorEpsilon*VectorEpsilon
}

// IsZero returns true if the Vector3 is within VectorEpsilon of the origin.
func (vec Vector3) IsZero() bool {
	return vec.MagnitudeSquared() < VectorEpsilon*VectorEpsilon
}

// Rotate returns a copy of the Vector3, rotated around the axis provided by the angle provided (in degrees).
// An axis with no length leaves the Vector3 unrotated.
func (vec Vector3) Rotate(axis Vector3, degrees float64) Vector3 {
	return NewQuaternionAxisAngle(degrees, axis).RotateVector(vec)
}

// Angle returns the unsigned angle in degrees between the calling Vector3 and the provided other Vector3, in the range
// [0, 180]. If either Vector3 has no length, 0 is returned.
func (vec Vector3) Angle(other Vector3) float64 {
	denominator := math64.Sqrt(vec.MagnitudeSquared() * other.MagnitudeSquared())
	if denominator < vectorEpsilonNormalSqrt {
		return 0
	}
	dot := math64.Clamp(vec.Dot(other)/denominator, -1, 1)
	return math64.ToDegrees(math64.Acos(dot))
}

// SignedAngle returns the angle in degrees between the calling Vector3 and the other one, signed by which side of the plane
// described by axis the rotation from one to the other goes.
func (vec Vector3) SignedAngle(other, axis Vector3) float64 {
	return vec.Angle(other) * math64.Sign(axis.Dot(vec.Cross(other)))
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float64) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector3 by the given scalar.
func (vec Vector3) Divide(scalar float64) Vector3 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Lerp linearly interpolates from the calling Vector3 towards the other one by t, which is clamped to [0, 1].
func (vec Vector3) Lerp(other Vector3, t float64) Vector3 {
	return vec.LerpUnclamped(other, math64.Clamp01(t))
}

// LerpUnclamped linearly interpolates from the calling Vector3 towards the other one by t, without clamping t.
func (vec Vector3) LerpUnclamped(other Vector3, t float64) Vector3 {
	return vec.Add(other.Sub(vec).Scale(t))
}

// MoveTowards moves the Vector3 towards the target by no more than maxDistanceDelta. A negative maxDistanceDelta moves away from the target.
func (vec Vector3) MoveTowards(target Vector3, maxDistanceDelta float64) Vector3 {
	diff := target.Sub(vec)
	sqDist := diff.MagnitudeSquared()
	if sqDist == 0 || (maxDistanceDelta >= 0 && sqDist <= maxDistanceDelta*maxDistanceDelta) {
		return target
	}
	return vec.Add(diff.Divide(math64.Sqrt(sqDist)).Scale(maxDistanceDelta))
}

// SmoothDamp gradually moves the Vector3 towards the target like a critically damped spring, never overshooting. It returns
// the new position along with the updated velocity, which should be passed back in on the next call.
func (vec Vector3) SmoothDamp(target, velocity Vector3, smoothTime, maxSpeed, deltaTime float64) (Vector3, Vector3) {

	smoothTime = math64.Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * deltaTime
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := vec.Sub(target).ClampMagnitude(maxSpeed * smoothTime)
	originalTo := target
	target = vec.Sub(change)

	temp := velocity.Add(change.Scale(omega)).Scale(deltaTime)
	velocity = velocity.Sub(temp.Scale(omega)).Scale(exp)
	output := target.Add(change.Add(temp).Scale(exp))

	// Overshot the target
	if originalTo.Sub(vec).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		velocity = Vector3{}
	}

	return output, velocity

}

// Reflect reflects the Vector3 off of the plane defined by the given normal.
func (vec Vector3) Reflect(normal Vector3) Vector3 {
	return normal.Scale(-2 * normal.Dot(vec)).Add(vec)
}

// Project projects the Vector3 onto the given normal. A normal with no length returns a zero Vector3.
func (vec Vector3) Project(onNormal Vector3) Vector3 {
	sqrMag := onNormal.Dot(onNormal)
	if sqrMag < math64.Epsilon {
		return Vector3{}
	}
	return onNormal.Scale(vec.Dot(onNormal) / sqrMag)
}

// ProjectOnPlane projects the Vector3 onto the plane defined by the given normal. A normal with no length returns the Vector3 as-is.
func (vec Vector3) ProjectOnPlane(planeNormal Vector3) Vector3 {
	sqrMag := planeNormal.Dot(planeNormal)
	if sqrMag < math64.Epsilon {
		return vec
	}
	return vec.Sub(planeNormal.Scale(vec.Dot(planeNormal) / sqrMag))
}

// ClampMagnitude returns a copy of the Vector3 with its length clamped to maxLength.
func (vec Vector3) ClampMagnitude(maxLength float64) Vector3 {
	if sqrMag := vec.MagnitudeSquared(); sqrMag > maxLength*maxLength {
		return vec.Divide(math64.Sqrt(sqrMag)).Scale(maxLength)
	}
	return vec
}

// Min returns a Vector3 made from the smallest components of the two Vector3s.
func (vec Vector3) Min(other Vector3) Vector3 {
	return Vector3{math64.Min(vec.X, other.X), math64.Min(vec.Y, other.Y), math64.Min(vec.Z, other.Z)}
}

// Max returns a Vector3 made from the largest components of the two Vector3s.
func (vec Vector3) Max(other Vector3) Vector3 {
	return Vector3{math64.Max(vec.X, other.X), math64.Max(vec.Y, other.Y), math64.Max(vec.Z, other.Z)}
}

// String returns the Vector3 formatted as "{x, y, z}", with each component rounded to 3 decimal places.
func (vec Vector3) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + "}"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}
