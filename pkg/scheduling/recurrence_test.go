package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRecurrenceWeekly(t *testing.T) {
	days, err := ExpandRecurrence("FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4", may1, 10)
	require.NoError(t, err)

	got := []string{}
	for _, d := range days {
		got = append(got, DayKey(d))
	}
	// 2024-05-01 是星期三
	assert.Equal(t, []string{"2024-05-01", "2024-05-06", "2024-05-08", "2024-05-13"}, got)
}

func TestExpandRecurrenceHonoursLimit(t *testing.T) {
	days, err := ExpandRecurrence("RRULE:FREQ=DAILY", may1.Add(15*time.Hour), 3)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, may1, days[0])
	assert.Equal(t, may1.AddDate(0, 0, 2), days[2])
}

func TestExpandRecurrenceRejectsBadRule(t *testing.T) {
	_, err := ExpandRecurrence("FREQ=SOMETIMES", may1, 3)
	assert.True(t, IsValidation(err))

	_, err = ExpandRecurrence("", may1, 3)
	assert.True(t, IsValidation(err))

	_, err = ExpandRecurrence("FREQ=DAILY", may1, 0)
	assert.True(t, IsValidation(err))
}
