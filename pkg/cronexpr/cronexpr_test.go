package cronexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		expectErr bool
	}{
		{name: "every minute", expr: "* * * * *", expectErr: false},
		{name: "fixed time", expr: "30 9 * * *", expectErr: false},
		{name: "comma list", expr: "0,15,30,45 * * * *", expectErr: false},
		{name: "range", expr: "0 9-17 * * *", expectErr: false},
		{name: "step", expr: "*/5 * * * *", expectErr: false},
		{name: "range with step", expr: "0 0 1-15/2 * *", expectErr: false},
		{name: "weekday range", expr: "0 12 * * 1-5", expectErr: false},
		{name: "sunday as seven", expr: "0 0 * * 7", expectErr: false},
		{name: "range ending in seven", expr: "0 0 * * 5-7", expectErr: false},
		{name: "seven in comma list", expr: "0 0 * * 1,7", expectErr: false},
		{name: "stepped range ending in seven", expr: "0 0 * * 1-7/2", expectErr: false},
		{name: "weekday out of range", expr: "0 0 * * 8", expectErr: true},
		{name: "too few fields", expr: "* * * *", expectErr: true},
		{name: "too many fields", expr: "* * * * * *", expectErr: true},
		{name: "minute out of range", expr: "60 * * * *", expectErr: true},
		{name: "hour out of range", expr: "0 24 * * *", expectErr: true},
		{name: "month out of range", expr: "0 0 1 13 *", expectErr: true},
		{name: "garbage", expr: "not a cron", expectErr: true},
		{name: "empty", expr: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.expr)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNextAfter(t *testing.T) {
	ref := time.Date(2024, 3, 10, 11, 45, 30, 0, time.UTC)

	tests := []struct {
		name     string
		expr     string
		expected time.Time
	}{
		{name: "every minute", expr: "* * * * *", expected: time.Date(2024, 3, 10, 11, 46, 0, 0, time.UTC)},
		{name: "hourly on the hour", expr: "0 * * * *", expected: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)},
		{name: "daily at midnight", expr: "0 0 * * *", expected: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)},
		{name: "monthly on the first", expr: "0 0 1 * *", expected: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		// March 10 2024 is a Sunday; 7 must mean Sunday like 0 does.
		{name: "sunday as seven", expr: "0 0 * * 7", expected: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)},
		{name: "sunday as zero", expr: "0 0 * * 0", expected: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := NextAfter(tt.expr, ref)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}

	_, err := NextAfter("bogus", ref)
	assert.Error(t, err)
}

func TestDue(t *testing.T) {
	ref := time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expr     string
		now      time.Time
		expected bool
	}{
		{
			name:     "next instant already passed",
			expr:     "0 * * * *",
			now:      ref.Add(2 * time.Hour),
			expected: true,
		},
		{
			name:     "next instant not reached",
			expr:     "0 * * * *",
			now:      ref.Add(30 * time.Minute),
			expected: false,
		},
		{
			name:     "exactly at next instant is not yet due",
			expr:     "0 * * * *",
			now:      ref.Add(time.Hour),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due, err := Due(tt.expr, ref, tt.now)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, due)
		})
	}
}
