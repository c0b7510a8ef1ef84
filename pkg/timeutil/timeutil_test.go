package timeutil_test

import (
	"testing"
	"time"

	"github.com/limbo/basetracker/pkg/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	moment := time.Date(2024, time.June, 1, 7, 5, 42, 0, time.Local)
	assert.Equal(t, "2024-06-01", timeutil.DateKey(moment))
	assert.Equal(t, "07:05", timeutil.MinuteKey(moment))
}

func TestTodayMatchesClock(t *testing.T) {
	before := time.Now().Format(timeutil.DateLayout)
	today := timeutil.Today()
	after := time.Now().Format(timeutil.DateLayout)
	assert.Contains(t, []string{before, after}, today)
	assert.True(t, timeutil.ValidMinuteKey(timeutil.NowMinute()))
}

func TestValidation(t *testing.T) {
	testCases := []struct {
		Desc   string
		Value  string
		Date   bool
		Minute bool
	}{
		{Desc: "date", Value: "2024-06-01", Date: true},
		{Desc: "impossible date", Value: "2024-02-30"},
		{Desc: "unpadded date", Value: "2024-6-1"},
		{Desc: "minute", Value: "07:30", Minute: true},
		{Desc: "midnight", Value: "00:00", Minute: true},
		{Desc: "unpadded minute", Value: "7:30"},
		{Desc: "out of range", Value: "24:00"},
		{Desc: "empty", Value: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Date, timeutil.ValidDateKey(tc.Value))
			assert.Equal(t, tc.Minute, timeutil.ValidMinuteKey(tc.Value))
		})
	}
}

func TestPreviousDateKey(t *testing.T) {
	prev, err := timeutil.PreviousDateKey("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", prev)
	_, err = timeutil.PreviousDateKey("garbage")
	assert.Error(t, err)
}

func TestGreeting(t *testing.T) {
	day := func(h int) time.Time { return time.Date(2024, 1, 1, h, 0, 0, 0, time.Local) }
	assert.Equal(t, "Bom dia", timeutil.Greeting(day(6)))
	assert.Equal(t, "Boa tarde", timeutil.Greeting(day(12)))
	assert.Equal(t, "Boa noite", timeutil.Greeting(day(18)))
}
