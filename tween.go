package precise

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RotationTween eases a rotation from Start to End over a duration, using Slerp so the rotation takes the shorter arc.
// gween steps time and easing in float32, so the blend fraction (not the endpoints) is only accurate to about 1e-7.
type RotationTween struct {
	Start, End Quaternion
	tween      *gween.Tween
	finished   bool
}

// NewRotationTween creates a RotationTween from start to end lasting duration seconds, using the easing function given
// (for example, ease.InOutQuad). A nil easing function is treated as ease.Linear.
func NewRotationTween(start, end Quaternion, duration float64, easing ease.TweenFunc) *RotationTween {
	return &RotationTween{
		Start: start,
		End:   end,
		tween: newUnitTween(duration, easing),
	}
}

// Update advances the tween by dt seconds, returning the current rotation and whether the tween has finished.
func (rt *RotationTween) Update(dt float64) (Quaternion, bool) {
	t, finished := rt.tween.Update(float32(dt))
	rt.finished = finished
	return rt.Start.SlerpUnclamped(rt.End, float64(t)), finished
}

// Reset rewinds the tween back to Start.
func (rt *RotationTween) Reset() {
	rt.tween.Reset()
	rt.finished = false
}

// Finished returns if the tween has reached End.
func (rt *RotationTween) Finished() bool {
	return rt.finished
}

// VectorTween eases a Vector3 from Start to End over a duration. Like RotationTween, its blend fraction is float32.
type VectorTween struct {
	Start, End Vector3
	tween      *gween.Tween
	finished   bool
}

// NewVectorTween creates a VectorTween from start to end lasting duration seconds, using the easing function given.
// A nil easing function is treated as ease.Linear.
func NewVectorTween(start, end Vector3, duration float64, easing ease.TweenFunc) *VectorTween {
	return &VectorTween{
		Start: start,
		End:   end,
		tween: newUnitTween(duration, easing),
	}
}

// Update advances the tween by dt seconds, returning the current position and whether the tween has finished.
func (vt *VectorTween) Update(dt float64) (Vector3, bool) {
	t, finished := vt.tween.Update(float32(dt))
	vt.finished = finished
	return vt.Start.LerpUnclamped(vt.End, float64(t)), finished
}

func (vt *VectorTween) Reset() {
	vt.tween.Reset()
	vt.finished = false
}

func (vt *VectorTween) Finished() bool {
	return vt.finished
}

// Elastic and back easings overshoot, so the tween runs on a 0 to 1 scale and the blends are left unclamped.
func newUnitTween(duration float64, easing ease.TweenFunc) *gween.Tween {
	if easing == nil {
		easing = ease.Linear
	}
	return gween.New(0, 1, float32(duration), easing)
}
