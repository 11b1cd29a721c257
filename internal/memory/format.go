package memory

import (
	"fmt"
	"time"
)

// SplitDuration breaks d into whole minutes and remaining whole seconds.
func SplitDuration(d time.Duration) (minutes, seconds int) {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return total / 60, total % 60
}

// FormatDuration renders d as MM:SS.
func FormatDuration(d time.Duration) string {
	m, s := SplitDuration(d)
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatSeconds renders a whole number of seconds as MM:SS.
func FormatSeconds(secs int) string {
	return FormatDuration(time.Duration(secs) * time.Second)
}
