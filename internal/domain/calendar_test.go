package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendarDate_Valid(t *testing.T) {
	d, ok := NewCalendarDate(2024, time.February, 29)
	require.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 29, d.Day())
	assert.Equal(t, "2024-02-29", d.String())
	assert.False(t, d.IsZero())
}

func TestNewCalendarDate_RejectsNormalizedOverflow(t *testing.T) {
	cases := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"feb 30", 2024, time.February, 30},
		{"feb 29 non-leap", 2023, time.February, 29},
		{"april 31", 2024, time.April, 31},
		{"day zero", 2020, time.January, 0},
		{"month 13", 2020, 13, 10},
		{"month zero", 2020, 0, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := NewCalendarDate(tc.year, tc.month, tc.day)
			assert.False(t, ok)
		})
	}
}

func TestCalendarDate_MidnightIsUTC(t *testing.T) {
	d, ok := NewCalendarDate(2024, time.March, 10)
	require.True(t, ok)
	m := d.Midnight()
	assert.Equal(t, time.UTC, m.Location())
	assert.Equal(t, 0, m.Hour())
}

func TestCalendarDate_ZeroValue(t *testing.T) {
	var d CalendarDate
	assert.True(t, d.IsZero())
}
