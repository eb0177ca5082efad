package timekeeper

import "fmt"

// FormatClock splits remaining seconds into two-digit minute and second strings.
func FormatClock(remaining int) (string, string) {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d", remaining/60), fmt.Sprintf("%02d", remaining%60)
}

// FormatRemaining renders remaining seconds as "mm:ss".
func FormatRemaining(remaining int) string {
	minutes, seconds := FormatClock(remaining)
	return minutes + ":" + seconds
}
