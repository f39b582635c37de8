package gameday_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pmorten/scoreboard-system/gameday"
)

// 2023-09-01 is a Friday, 2023-09-02 and 2023-09-30 are Saturdays.
func eastern(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, gameday.Location())
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{
			name: "weekday afternoon stays on the same day",
			now:  eastern(2023, time.September, 1, 12, 0),
			want: "2023-09-01",
		},
		{
			name: "weekday just before nightly rollover",
			now:  eastern(2023, time.September, 1, 21, 59),
			want: "2023-09-01",
		},
		{
			name: "weekday at nightly rollover",
			now:  eastern(2023, time.September, 1, 22, 0),
			want: "2023-09-02",
		},
		{
			name: "saturday just before early rollover",
			now:  eastern(2023, time.September, 2, 17, 59),
			want: "2023-09-02",
		},
		{
			name: "saturday at early rollover",
			now:  eastern(2023, time.September, 2, 18, 0),
			want: "2023-09-03",
		},
		{
			name: "sunday evening has no early rollover",
			now:  eastern(2023, time.September, 3, 18, 30),
			want: "2023-09-03",
		},
		{
			name: "nightly rollover crosses the month boundary",
			now:  eastern(2023, time.September, 30, 23, 0),
			want: "2023-10-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gameday.Resolve(tt.now))
		})
	}
}

func TestResolveConvertsToEasternTime(t *testing.T) {
	// 23:30 UTC on Saturday is 19:30 in New York, past the early rollover.
	now := time.Date(2023, time.September, 2, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2023-09-03", gameday.Resolve(now))
}

func TestTodayIgnoresRollover(t *testing.T) {
	now := eastern(2023, time.September, 1, 23, 30)
	assert.Equal(t, "2023-09-01", gameday.Today(now))
}
