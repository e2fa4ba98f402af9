package math

import "math"

// Pi as float32.
const Pi = float32(math.Pi)

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0,1].
func Saturate(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Mix linearly interpolates between a and b.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Smoothstep is the Hermite step between edge0 and edge1.
// Edges may be given in either order, as in GLSL.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Step returns 0 when x < edge and 1 otherwise.
func Step(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// Floor returns the greatest integer value <= x.
func Floor(x float32) float32 {
	return float32(math.Floor(float64(x)))
}

// Fract returns x - floor(x), always in [0,1).
func Fract(x float32) float32 {
	f := x - Floor(x)
	if f >= 1 {
		// float32 rounding of tiny negative inputs
		return math.Nextafter32(1, 0)
	}
	return f
}

// Abs returns |x|.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sin is a float32 sine.
func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

// Cos is a float32 cosine.
func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Acos returns the arc cosine with its argument clamped to [-1,1] so
// floating-point overshoot never yields NaN.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(Clamp(x, -1, 1))))
}

// Asin returns the arc sine with its argument clamped to [-1,1].
func Asin(x float32) float32 {
	return float32(math.Asin(float64(Clamp(x, -1, 1))))
}

// Atan2 is a float32 atan2.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// Exp is a float32 exponential.
func Exp(x float32) float32 {
	return float32(math.Exp(float64(x)))
}

// Sqrt is a float32 square root.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// Pow is a float32 power.
func Pow(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
