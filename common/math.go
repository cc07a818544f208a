package common

import "time"

// FrameDelta converts an elapsed wall-clock duration to seconds, capped at
// max seconds. A non-positive max disables the cap.
func FrameDelta(elapsed time.Duration, max float64) float64 {
	dt := elapsed.Seconds()
	if dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}
