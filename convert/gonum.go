package convert

import (
	"github.com/solarlune/precise"
	"gonum.org/v1/gonum/num/quat"
)

// ToQuatNumber converts the Quaternion to a gonum quat.Number, where Real holds W and Imag, Jmag, and Kmag hold X, Y, and Z.
func ToQuatNumber(q precise.Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func FromQuatNumber(n quat.Number) precise.Quaternion {
	return precise.NewQuaternion(n.Imag, n.Jmag, n.Kmag, n.Real)
}

// VectorToQuatNumber returns the Vector3 as a pure imaginary quat.Number, the form gonum rotates with q * v * conj(q).
func VectorToQuatNumber(v precise.Vector3) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

func VectorFromQuatNumber(n quat.Number) precise.Vector3 {
	return precise.Vector3{X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}
