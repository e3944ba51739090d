package game

import (
	"fmt"
	"math"
)

// Display helpers for the status surface. Pure functions only; no
// gameplay rules live here.

// FormatDistance renders a distance with a unit that fits its scale,
// switching to light years once interstellar space is in range.
func FormatDistance(distance float64) string {
	switch {
	case distance < 1_000:
		return fmt.Sprintf("%d mi", int(distance))
	case distance < 1_000_000:
		return fmt.Sprintf("%.1f K mi", distance/1_000)
	case distance < distInterstellar:
		return fmt.Sprintf("%.2f M mi", distance/1_000_000)
	default:
		return fmt.Sprintf("%.4f ly", distance/distInterstellar)
	}
}

// FormatDuration renders a number of seconds as a compact s/m/h/d
// figure, rounding up.
func FormatDuration(seconds float64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", int(math.Ceil(seconds)))
	case seconds < 3600:
		return fmt.Sprintf("%dm", int(math.Ceil(seconds/60)))
	case seconds < 86400:
		return fmt.Sprintf("%dh", int(math.Ceil(seconds/3600)))
	default:
		return fmt.Sprintf("%dd", int(math.Ceil(seconds/86400)))
	}
}

// TimeToMilestone estimates the travel time to a distance threshold at
// the given speed.
func TimeToMilestone(current, target float64, speed int) string {
	remaining := target - current
	if remaining <= 0 {
		return "Reached"
	}
	if speed <= 0 {
		return "Never"
	}
	perSecond := float64(speed) * distancePerSpeed
	return FormatDuration(remaining / perSecond)
}
