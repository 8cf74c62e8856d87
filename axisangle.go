package precise

// AxisAngle represents a rotation in degrees around a given 3D axis. An AxisAngle could just as well be stored in a Vector4;
// it's separated here into a Vector3 and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // 3 dimensional axis for rotating
	Angle float64 // Rotation in degrees
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis (which is normalized) and angle in degrees.
func NewAxisAngle(axis Vector3, angle float64) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// Quaternion returns the AxisAngle as a Quaternion. An AxisAngle without an axis returns the identity Quaternion.
func (aa AxisAngle) Quaternion() Quaternion {
	return NewQuaternionAxisAngle(aa.Angle, aa.Axis)
}

// RotateVector rotates the given Vector3 by the axis and angle given, returning a rotated copy of it. For example, assuming
// the AxisAngle had an Axis of WorldUp and an Angle of 90, axisAngle.RotateVector(WorldForward) would return WorldRight.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return aa.Quaternion().RotateVector(vec)
}

// Add returns the rotation of otherAngle applied after the calling AxisAngle.
func (aa AxisAngle) Add(otherAngle AxisAngle) AxisAngle {
	return otherAngle.Quaternion().Mult(aa.Quaternion()).ToAxisAngle()
}

// Sub returns the calling AxisAngle with otherAngle undone afterwards.
func (aa AxisAngle) Sub(otherAngle AxisAngle) AxisAngle {
	otherAngle.Angle *= -1
	return aa.Add(otherAngle)
}

// AxisAngleLookAt returns the AxisAngle that turns an object at from to face to, keeping up as close to its up vector as possible.
func AxisAngleLookAt(from, to, up Vector3) AxisAngle {
	return NewQuaternionLookRotation(to.Sub(from), up).ToAxisAngle()
}
