package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayOfFollowsSundayZeroConvention(t *testing.T) {
	// 2025-06-01 is a Sunday; walk the whole week from there.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	want := []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

	for i, w := range want {
		d := base.AddDate(0, 0, i)
		assert.Equal(t, w, WeekdayOf(d), "day %s", d.Format("2006-01-02"))
		assert.Equal(t, int(d.Weekday()), int(WeekdayOf(d)))
	}
}

func TestWeekdayString(t *testing.T) {
	assert.Equal(t, "SUNDAY", Sunday.String())
	assert.Equal(t, "WEDNESDAY", Wednesday.String())
	assert.Equal(t, "SATURDAY", Saturday.String())
	assert.Equal(t, "monday", Monday.Value())
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    Weekday
		wantErr bool
	}{
		{"MONDAY", Monday, false},
		{"monday", Monday, false},
		{"SUNDAY", Sunday, false},
		{"saturday", Saturday, false},
		{"Monday", 0, true},
		{"", 0, true},
		{"FUNDAY", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
