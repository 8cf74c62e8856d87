package math64

// Lerp linearly interpolates between a and b by t, with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// LerpUnclamped linearly interpolates between a and b by t with no limit on t.
func LerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpAngle is Lerp for angles in degrees, taking the short way around when the values wrap at 360.
func LerpAngle(a, b, t float64) float64 {
	delta := Repeat(b-a, 360)
	if delta > 180 {
		delta -= 360
	}
	return a + delta*Clamp01(t)
}

// InverseLerp returns where value lies between a and b as a fraction in [0, 1]. If a and b are equal, 0 is returned.
func InverseLerp(a, b, value float64) float64 {
	if a != b {
		return Clamp01((value - a) / (b - a))
	}
	return 0
}

// MoveTowards moves current towards target by no more than maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// MoveTowardsAngle is MoveTowards for angles in degrees, wrapping around at 360.
func MoveTowardsAngle(current, target, maxDelta float64) float64 {
	delta := DeltaAngle(current, target)
	if -maxDelta < delta && delta < maxDelta {
		return target
	}
	return MoveTowards(current, current+delta, maxDelta)
}

// SmoothStep interpolates between from and to by t with smoothing at the limits (t is clamped to [0, 1]).
func SmoothStep(from, to, t float64) float64 {
	t = Clamp01(t)
	t = -2*t*t*t + 3*t*t
	return to*t + from*(1-t)
}

// Gamma applies a gamma curve to value within the range [-absMax, absMax], keeping its sign. Values outside that range pass
// through untouched.
func Gamma(value, absMax, gamma float64) float64 {
	negative := value < 0
	abs := Abs(value)
	if abs > absMax {
		if negative {
			return -abs
		}
		return abs
	}
	result := Pow(abs/absMax, gamma) * absMax
	if negative {
		return -result
	}
	return result
}

// Approximately returns if a and b are close enough to be considered equal, relative to their magnitude.
func Approximately(a, b float64) bool {
	return Abs(b-a) < Max(1e-6*Max(Abs(a), Abs(b)), Epsilon*8)
}

// SmoothDamp gradually moves current towards target like a critically damped spring, never overshooting. It returns the new
// value along with the updated velocity, which should be passed back in on the next call.
func SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaTime float64) (float64, float64) {

	smoothTime = Max(0.0001, smoothTime)
	omega := 2 / smoothTime
	x := omega * deltaTime
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = Clamp(change, -maxChange, maxChange)
	target = current - change

	temp := (velocity + omega*change) * deltaTime
	velocity = (velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	// Overshot the target
	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		velocity = (output - originalTo) / deltaTime
	}

	return output, velocity

}

// SmoothDampAngle is SmoothDamp for angles in degrees.
func SmoothDampAngle(current, target, velocity, smoothTime, maxSpeed, deltaTime float64) (float64, float64) {
	target = current + DeltaAngle(current, target)
	return SmoothDamp(current, target, velocity, smoothTime, maxSpeed, deltaTime)
}

// Repeat loops t so that it is never larger than length and never smaller than 0.
func Repeat(t, length float64) float64 {
	return Clamp(t-Floor(t/length)*length, 0, length)
}

// PingPong returns a value that moves back and forth between 0 and length as t increases.
func PingPong(t, length float64) float64 {
	t = Repeat(t, length*2)
	return length - Abs(t-length)
}

// DeltaAngle returns the shortest difference between two angles in degrees, in the range (-180, 180].
func DeltaAngle(current, target float64) float64 {
	delta := Repeat(target-current, 360)
	if delta > 180 {
		delta -= 360
	}
	return delta
}

// NormalizeAngle wraps an angle in degrees into [0, 360).
func NormalizeAngle(degrees float64) float64 {
	mod := Mod(degrees, 360)
	if mod < 0 {
		mod += 360
	}
	// Catches -0 as well as tiny negatives that round up to 360
	if mod == 0 || mod >= 360 {
		return 0
	}
	return mod
}
