package precise

// Transform is a position, rotation, and scale, applied in scale, rotate, translate order.
type Transform struct {
	Position Vector3
	Rotation Quaternion
	Scale    Vector3
}

// NewTransform returns a Transform at the origin, unrotated, with a scale of 1.
func NewTransform() Transform {
	return Transform{
		Rotation: NewQuaternionIdentity(),
		Scale:    NewVector3One(),
	}
}

// Compose returns the child Transform placed within the calling (parent) Transform, as the parent's world transform
// applied on top of the child's local one. Like most engines, non-uniform parent scale is applied along the child's
// local axes only approximately; shearing can't be represented by a Transform.
func (transform Transform) Compose(child Transform) Transform {
	return Transform{
		Position: transform.TransformPoint(child.Position),
		Rotation: transform.Rotation.Mult(child.Rotation).Unit(),
		Scale:    transform.Scale.MultComp(child.Scale),
	}
}

// TransformPoint returns the given local point transformed into the space the Transform lives in.
func (transform Transform) TransformPoint(point Vector3) Vector3 {
	return transform.Rotation.RotateVector(point.MultComp(transform.Scale)).Add(transform.Position)
}

// InverseTransformPoint returns the given point brought into the Transform's local space. Axes with a scale of 0 map to 0.
func (transform Transform) InverseTransformPoint(point Vector3) Vector3 {

	local := transform.Rotation.Inverted().RotateVector(point.Sub(transform.Position))

	for i := 0; i < 3; i++ {
		if s := transform.Scale.Index(i); s != 0 {
			local = local.SetIndex(i, local.Index(i)/s)
		} else {
			local = local.SetIndex(i, 0)
		}
	}

	return local

}

// Lerp blends between the two Transforms by t (clamped to [0, 1]); position and scale linearly, and rotation spherically.
func (transform Transform) Lerp(other Transform, t float64) Transform {
	return Transform{
		Position: transform.Position.Lerp(other.Position, t),
		Rotation: transform.Rotation.Slerp(other.Rotation, t),
		Scale:    transform.Scale.Lerp(other.Scale, t),
	}
}

// Equals returns true if the two Transforms' positions, rotations, and scales are all Equal.
func (transform Transform) Equals(other Transform) bool {
	return transform.Position.Equals(other.Position) && transform.Rotation.Equals(other.Rotation) && transform.Scale.Equals(other.Scale)
}
