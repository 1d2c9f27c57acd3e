package sim

import "fmt"

// FormatLapTime renders seconds as m:ss.mmm, or bare seconds under a
// minute. Negative times render as "N/A".
func FormatLapTime(seconds float64) string {
	if seconds < 0 {
		return "N/A"
	}
	minutes := int(seconds) / 60
	remainder := seconds - float64(minutes)*60
	if minutes > 0 {
		return fmt.Sprintf("%d:%06.3f", minutes, remainder)
	}
	return fmt.Sprintf("%.3fs", remainder)
}

// FormatSegmentTime renders a segment time in seconds with millisecond
// precision. Negative times render as "N/A".
func FormatSegmentTime(seconds float64) string {
	if seconds < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.3fs", seconds)
}
