package timeutil

import (
	"time"
)

const (
	DateLayout   = "2006-01-02"
	MinuteLayout = "15:04"
)

// Clock returns the current instant. Components take a Clock so tests can pin "now".
type Clock func() time.Time

var SystemClock Clock = time.Now

// Today returns the current local calendar date as YYYY-MM-DD
func Today() string {
	return DateKey(time.Now())
}

// NowMinute returns the current local time as HH:mm
func NowMinute() string {
	return MinuteKey(time.Now())
}

func DateKey(t time.Time) string {
	return t.Local().Format(DateLayout)
}

func MinuteKey(t time.Time) string {
	return t.Local().Format(MinuteLayout)
}

// ParseDateKey parses YYYY-MM-DD as local midnight.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, key, time.Local)
}

func ValidDateKey(key string) bool {
	t, err := ParseDateKey(key)
	return err == nil && t.Format(DateLayout) == key
}

func ValidMinuteKey(key string) bool {
	t, err := time.Parse(MinuteLayout, key)
	return err == nil && t.Format(MinuteLayout) == key
}

// PreviousDateKey returns the calendar day before key.
func PreviousDateKey(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -1).Format(DateLayout), nil
}

func Greeting(t time.Time) string {
	hour := t.Local().Hour()
	switch {
	case hour < 12:
		return "Bom dia"
	case hour < 18:
		return "Boa tarde"
	default:
		return "Boa noite"
	}
}
