package scene

import "time"

// SecsToDuration converts seconds from a scene file to a duration. Positive
// values are at least one millisecond; zero and negative values are zero.
func SecsToDuration(s float64) time.Duration {
	if !(s > 0) {
		return 0
	}
	d := time.Duration(s * float64(time.Second))
	if d < time.Millisecond {
		d = time.Millisecond
	}
	return d
}
