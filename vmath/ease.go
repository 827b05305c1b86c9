package vmath

// EaseFunc maps normalized progress t in [0,1] to an eased fraction
type EaseFunc func(t float64) float64

// EaseLinear is identity easing
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic decelerates toward the end, used for the entry settle
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInQuad accelerates from rest, used for the exit rise
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseInOutQuad accelerates then decelerates, used for camera zoom snapping
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
