package mockgen

import (
	"math/rand"
	"time"
)

// RandomInt returns a uniformly distributed integer in [min, max], both
// bounds inclusive. min must not exceed max.
func RandomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// Shuffle permutes the slice in place using Fisher-Yates and returns it.
func Shuffle[T any](items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}

// RandomPastDate backdates "now" by a random whole number of days up to
// maxDays and a random whole number of hours up to maxHours, so that
// generated content has a plausible temporal spread.
func RandomPastDate(maxDays, maxHours int) time.Time {
	days := RandomInt(0, maxDays)
	hours := RandomInt(0, maxHours)
	return time.Now().
		AddDate(0, 0, -days).
		Add(-time.Duration(hours) * time.Hour)
}
