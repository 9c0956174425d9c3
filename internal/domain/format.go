package domain

import (
	"fmt"
	"math"
	"time"
)

// ClockLayout is the layout used for wall-clock times, e.g. "9:05 AM".
const ClockLayout = "3:04 PM"

// FormatDuration renders a duration as whole minutes, e.g. "10 mins".
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%d mins", int(math.Round(d.Minutes())))
}

// FormatClock renders a wall-clock time.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}
