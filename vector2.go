package precise

import (
	"github.com/solarlune/precise/math64"
)

// Vector2 represents a 2D Vector at double precision, for screen-space positions, UVs, or planar movement. Like Vector3, all
// functions return modified copies, so Vector2s can be passed around and chained freely.
type Vector2 struct {
	X float64 // The X (1st) component of the Vector2
	Y float64 // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// NewVector2Zero creates a new "zero-ed out" Vector2.
func NewVector2Zero() Vector2 {
	return Vector2{}
}

// Add returns a copy of the calling vector, added together with the other Vector2 provided.
func (vec Vector2) Add(other Vector2) Vector2 {
	vec.X += other.X
	vec.Y += other.Y
	return vec
}

// Sub returns a copy of the calling Vector2, with the other Vector2 subtracted from it.
func (vec Vector2) Sub(other Vector2) Vector2 {
	vec.X -= other.X
	vec.Y -= other.Y
	return vec
}

// Scale scales a Vector2 by the given scalar.
func (vec Vector2) Scale(scalar float64) Vector2 {
	vec.X *= scalar
	vec.Y *= scalar
	return vec
}

// Divide divides a Vector2 by the given scalar.
func (vec Vector2) Divide(scalar float64) Vector2 {
	vec.X /= scalar
	vec.Y /= scalar
	return vec
}

// Invert returns a copy of the Vector2 with both components negated.
func (vec Vector2) Invert() Vector2 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	return vec
}

// MultComp multiplies the Vector2 by the other one component by component.
func (vec Vector2) MultComp(other Vector2) Vector2 {
	vec.X *= other.X
	vec.Y *= other.Y
	return vec
}

// Dot returns the dot product of a Vector2 and another Vector2.
func (vec Vector2) Dot(other Vector2) float64 {
	return vec.X*other.X + vec.Y*other.Y
}

// Magnitude returns the length of the Vector2.
func (vec Vector2) Magnitude() float64 {
	return math64.Sqrt(vec.X*vec.X + vec.Y*vec.Y)
}

// MagnitudeSquared returns the squared length of the Vector2.
func (vec Vector2) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y
}

// Distance returns the distance between the calling Vector2 and the other one.
func (vec Vector2) Distance(other Vector2) float64 {
	return vec.Sub(other).Magnitude()
}

// DistanceSquared returns the squared distance between the calling Vector2 and the other one.
func (vec Vector2) DistanceSquared(other Vector2) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a copy of the Vector2, normalized. A Vector2 with no length returns a zero Vector2.
func (vec Vector2) Unit() Vector2 {
	l := vec.Magnitude()
	if l > math64.Epsilon {
		return vec.Divide(l)
	}
	return Vector2{}
}

// Lerp linearly interpolates from the calling Vector2 towards the other one by t, which is clamped to [0, 1].
func (vec Vector2) Lerp(other Vector2, t float64) Vector2 {
	return vec.LerpUnclamped(other, math64.Clamp01(t))
}

// LerpUnclamped linearly interpolates from the calling Vector2 towards the other one by t, without clamping t.
func (vec Vector2) LerpUnclamped(other Vector2, t float64) Vector2 {
	return vec.Add(other.Sub(vec).Scale(t))
}

// MoveTowards moves the Vector2 towards the target by no more than maxDistanceDelta.
func (vec Vector2) MoveTowards(target Vector2, maxDistanceDelta float64) Vector2 {
	diff := target.Sub(vec)
	sqDist := diff.MagnitudeSquared()
	if sqDist == 0 || (maxDistanceDelta >= 0 && sqDist <= maxDistanceDelta*maxDistanceDelta) {
		return target
	}
	return vec.Add(diff.Divide(math64.Sqrt(sqDist)).Scale(maxDistanceDelta))
}

// SmoothDamp gradually moves the Vector2 towards the target, returning the new position and the updated velocity.
func (vec Vector2) SmoothDamp(target, velocity Vector2, smoothTime, maxSpeed, deltaTime float64) (Vector2, Vector2) {

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

	if originalTo.Sub(vec).Dot(output.Sub(originalTo)) > 0 {
		output = originalTo
		velocity = Vector2{}
	}

	return output, velocity

}

// Reflect reflects the Vector2 off of the line defined by the given normal.
func (vec Vector2) Reflect(normal Vector2) Vector2 {
	return normal.Scale(-2 * normal.Dot(vec)).Add(vec)
}

// Perpendicular returns the Vector2 rotated 90 degrees counter-clockwise.
func (vec Vector2) Perpendicular() Vector2 {
	return Vector2{-vec.Y, vec.X}
}

// Project projects the Vector2 onto the given normal. A normal with no length returns a zero Vector2.
func (vec Vector2) Project(onNormal Vector2) Vector2 {
	sqrMag := onNormal.Dot(onNormal)
	if sqrMag < math64.Epsilon {
		return Vector2{}
	}
	return onNormal.Scale(vec.Dot(onNormal) / sqrMag)
}

// Angle returns the unsigned angle in degrees between the two Vector2s, or 0 if either has no length.
func (vec Vector2) Angle(other Vector2) float64 {
	denominator := math64.Sqrt(vec.MagnitudeSquared() * other.MagnitudeSquared())
	if denominator < vectorEpsilonNormalSqrt {
		return 0
	}
	dot := math64.Clamp(vec.Dot(other)/denominator, -1, 1)
	return math64.ToDegrees(math64.Acos(dot))
}

// SignedAngle returns the angle in degrees between the two Vector2s, positive when other is counter-clockwise from vec.
func (vec Vector2) SignedAngle(other Vector2) float64 {
	return vec.Angle(other) * math64.Sign(vec.X*other.Y-vec.Y*other.X)
}

// ClampMagnitude returns a copy of the Vector2 with its length clamped to maxLength.
func (vec Vector2) ClampMagnitude(maxLength float64) Vector2 {
	if sqrMag := vec.MagnitudeSquared(); sqrMag > maxLength*maxLength {
		return vec.Divide(math64.Sqrt(sqrMag)).Scale(maxLength)
	}
	return vec
}

// Min returns a Vector2 made from the smallest components of the two Vector2s.
func (vec Vector2) Min(other Vector2) Vector2 {
	return Vector2{math64.Min(vec.X, other.X), math64.Min(vec.Y, other.Y)}
}

// Max returns a Vector2 made from the largest components of the two Vector2s.
func (vec Vector2) Max(other Vector2) Vector2 {
	return Vector2{math64.Max(vec.X, other.X), math64.Max(vec.Y, other.Y)}
}

// Index returns the component at the given index (0 = X, 1 = Y). Any other index panics with an *IndexError.
func (vec Vector2) Index(index int) float64 {
	switch index {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	}
	panicIndex("Vector2", index, 2)
	return 0
}

// SetIndex returns a copy of the Vector2 with the component at the given index set to value.
func (vec Vector2) SetIndex(index int, value float64) Vector2 {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	default:
		panicIndex("Vector2", index, 2)
	}
	return vec
}

// Vector3 returns the Vector2 as a Vector3 with a Z of 0.
func (vec Vector2) Vector3() Vector3 {
	return Vector3{vec.X, vec.Y, 0}
}

// Floats returns a [2]float64 array consisting of the Vector2's contents.
func (vec Vector2) Floats() [2]float64 {
	return [2]float64{vec.X, vec.Y}
}

// Equals returns true if the two Vector2s are closer together than VectorEpsilon.
func (vec Vector2) Equals(other Vector2) bool {
	return vec.DistanceSquared(other) < VectorEpsilon*VectorEpsilon
}

// IsZero returns true if the Vector2 is within VectorEpsilon of the origin.
func (vec Vector2) IsZero() bool {
	return vec.MagnitudeSquared() < VectorEpsilon*VectorEpsilon
}

func (vec Vector2) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + "}"
}
