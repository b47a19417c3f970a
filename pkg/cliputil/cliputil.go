package cliputil

// ClipBounds fits a clip of the requested length into a source of
// sourceDuration seconds. The length is clamped to the source, and the start
// is placed at startFraction (0..1) of the remaining slack, so start+length
// never exceeds the source.
func ClipBounds(sourceDuration, length, startFraction float64) (start, clipLength float64) {
	if sourceDuration < 0 {
		sourceDuration = 0
	}
	clipLength = length
	if clipLength > sourceDuration {
		clipLength = sourceDuration
	}
	if clipLength < 0 {
		clipLength = 0
	}

	// Clamp to valid range
	if startFraction < 0 {
		startFraction = 0
	}
	if startFraction > 1 {
		startFraction = 1
	}

	start = (sourceDuration - clipLength) * startFraction
	return start, clipLength
}
