package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}

// FormatSeconds renders seconds with millisecond precision, the form passed
// to ffmpeg's -ss and -t options.
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', 3, 64)
}

// ParseTimeToSeconds parses a time string in HH:MM:SS, MM:SS, or raw seconds format.
// Uses colon count: 2 colons = H:M:S, 1 colon = M:S, 0 colons = raw seconds.
// The seconds field may be fractional in every form.
func ParseTimeToSeconds(timeStr string) (float64, error) {
	timeStr = strings.TrimSpace(timeStr)
	parts := strings.Split(timeStr, ":")

	var hours, minutes int
	var seconds float64
	var err error

	switch len(parts) {
	case 3:
		if hours, err = strconv.Atoi(parts[0]); err != nil {
			break
		}
		if minutes, err = strconv.Atoi(parts[1]); err != nil {
			break
		}
		seconds, err = strconv.ParseFloat(parts[2], 64)
	case 2:
		if minutes, err = strconv.Atoi(parts[0]); err != nil {
			break
		}
		seconds, err = strconv.ParseFloat(parts[1], 64)
	case 1:
		seconds, err = strconv.ParseFloat(parts[0], 64)
	default:
		err = fmt.Errorf("too many fields")
	}
	if err != nil || hours < 0 || minutes < 0 || seconds < 0 {
		return 0, fmt.Errorf("expected HH:MM:SS, MM:SS, or seconds, got '%s'", timeStr)
	}

	return float64(hours*3600+minutes*60) + seconds, nil
}
