package domain

import "time"

// DateKeyLayout is the journal key format. ISO calendar days sort
// lexicographically in chronological order.
const DateKeyLayout = "2006-01-02"

// TodayKey returns the journal key for the current calendar day
func TodayKey() string {
	return time.Now().Format(DateKeyLayout)
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD key
func ValidDateKey(s string) bool {
	_, err := time.Parse(DateKeyLayout, s)
	return err == nil
}
