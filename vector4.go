package precise

import (
	"github.com/solarlune/precise/math64"
)

// vector4Epsilon is the length under which Vector4.Unit gives up and returns zero.
const vector4Epsilon = 1e-5

// Vector4 represents a 4D Vector at double precision; useful for homogeneous coordinates or colors.
type Vector4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewVector4 creates a new Vector4 with the specified components.
func NewVector4(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewVector4Zero creates a new "zero-ed out" Vector4.
func NewVector4Zero() Vector4 {
	return Vector4{}
}

// NewVector4FromVector3 creates a new Vector4 out of the given Vector3 and w component.
func NewVector4FromVector3(vec Vector3, w float64) Vector4 {
	return Vector4{vec.X, vec.Y, vec.Z, w}
}

func (vec Vector4) Add(other Vector4) Vector4 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	vec.W += other.W
	return vec
}

func (vec Vector4) Sub(other Vector4) Vector4 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	vec.W -= other.W
	return vec
}

func (vec Vector4) Scale(scalar float64) Vector4 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

func (vec Vector4) Divide(scalar float64) Vector4 {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	vec.W /= scalar
	return vec
}

func (vec Vector4) Invert() Vector4 {
	return Vector4{-vec.X, -vec.Y, -vec.Z, -vec.W}
}

// MultComp multiplies the Vector4 by the other one component by component.
func (vec Vector4) MultComp(other Vector4) Vector4 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	vec.W *= other.W
	return vec
}

func (vec Vector4) Dot(other Vector4) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z + vec.W*other.W
}

func (vec Vector4) Magnitude() float64 {
	return math64.Sqrt(vec.Dot(vec))
}

func (vec Vector4) MagnitudeSquared() float64 {
	return vec.Dot(vec)
}

func (vec Vector4) Distance(other Vector4) float64 {
	return vec.Sub(other).Magnitude()
}

func (vec Vector4) DistanceSquared(other Vector4) float64 {
	return vec.Sub(other).MagnitudeSquared()
}

// Unit returns a normalized copy of the Vector4. Vector4s shorter than 1e-5 return a zero Vector4.
func (vec Vector4) Unit() Vector4 {
	l := vec.Magnitude()
	if l > vector4Epsilon {
		return vec.Divide(l)
	}
	return Vector4{}
}

// Lerp linearly interpolates towards the other Vector4 by t, which is clamped to [0, 1].
func (vec Vector4) Lerp(other Vector4, t float64) Vector4 {
	return vec.LerpUnclamped(other, math64.Clamp01(t))
}

func (vec Vector4) LerpUnclamped(other Vector4, t float64) Vector4 {
	return vec.Add(other.Sub(vec).Scale(t))
}

// MoveTowards moves the Vector4 towards the target by no more than maxDistanceDelta.
func (vec Vector4) MoveTowards(target Vector4, maxDistanceDelta float64) Vector4 {
	diff := target.Sub(vec)
	mag := diff.Magnitude()
	if mag <= maxDistanceDelta || mag == 0 {
		return target
	}
	return vec.Add(diff.Divide(mag).Scale(maxDistanceDelta))
}

// Project projects the Vector4 onto the given normal.
func (vec Vector4) Project(onNormal Vector4) Vector4 {
	sqrMag := onNormal.Dot(onNormal)
	if sqrMag < math64.Epsilon {
		return Vector4{}
	}
	return onNormal.Scale(vec.Dot(onNormal) / sqrMag)
}

func (vec Vector4) Min(other Vector4) Vector4 {
	return Vector4{math64.Min(vec.X, other.X), math64.Min(vec.Y, other.Y), math64.Min(vec.Z, other.Z), math64.Min(vec.W, other.W)}
}

func (vec Vector4) Max(other Vector4) Vector4 {
	return Vector4{math64.Max(vec.X, other.X), math64.Max(vec.Y, other.Y), math64.Max(vec.Z, other.Z), math64.Max(vec.W, other.W)}
}

// Index returns the component at the given index, in X, Y, Z, W order. Any other index panics with an *IndexError.
func (vec Vector4) Index(index int) float64 {
	switch index {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	case 2:
		return vec.Z
	case 3:
		return vec.W
	}
	panicIndex("Vector4", index, 4)
	return 0
}

// SetIndex returns a copy of the Vector4 with the component at the given index set to value.
func (vec Vector4) SetIndex(index int, value float64) Vector4 {
	switch index {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	case 2:
		vec.Z = value
	case 3:
		vec.W = value
	default:
		panicIndex("Vector4", index, 4)
	}
	return vec
}

// Vector3 returns the X, Y, and Z components of the Vector4.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{vec.X, vec.Y, vec.Z}
}

func (vec Vector4) Floats() [4]float64 {
	return [4]float64{vec.X, vec.Y, vec.Z, vec.W}
}

// Equals returns true if the two Vector4s are closer together than VectorEpsilon.
func (vec Vector4) Equals(other Vector4) bool {
	return vec.DistanceSquared(other) < VectorEpsilon*VectorEpsilon
}

func (vec Vector4) IsZero() bool {
	return vec.MagnitudeSquared() < VectorEpsilon*VectorEpsilon
}

func (vec Vector4) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + ", " + formatFloat(vec.W) + "}"
}
