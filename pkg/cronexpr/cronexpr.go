package cronexpr

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Standard 5-field crontab grammar: minute hour day-of-month month day-of-week.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Validate reports whether expr is a well-formed crontab expression. Entities
// carrying schedules are validated at save time, so evaluation can assume a
// parseable expression.
func Validate(expr string) error {
	if _, err := parser.Parse(normalize(expr)); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return nil
}

// NextAfter returns the first occurrence of expr strictly after ref.
func NextAfter(expr string, ref time.Time) (time.Time, error) {
	schedule, err := parser.Parse(normalize(expr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid cron expression %q: %w", expr, err)
	}
	return schedule.Next(ref), nil
}

// Due reports whether a schedule last fired at ref should fire again: true
// iff the next occurrence after ref falls strictly before now.
func Due(expr string, ref, now time.Time) (bool, error) {
	next, err := NextAfter(expr, ref)
	if err != nil {
		return false, err
	}
	return next.Before(now), nil
}

// Crontab accepts 7 as Sunday in the day-of-week field; robfig/cron caps the
// field at 6. Rewrite 7 to 0 before parsing.
func normalize(expr string) string {
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return expr
	}
	fields[4] = normalizeDow(fields[4])
	return strings.Join(fields, " ")
}

func normalizeDow(field string) string {
	parts := strings.Split(field, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		base, step, hasStep := strings.Cut(part, "/")
		addSunday := false
		switch {
		case base == "7":
			base = "0"
		case strings.HasSuffix(base, "-7"):
			lo := strings.TrimSuffix(base, "-7")
			if lo == "7" {
				base = "0"
			} else {
				base = lo + "-6"
				addSunday = !hasStep || stepReachesSunday(lo, step)
			}
		}
		if hasStep {
			base += "/" + step
		}
		out = append(out, base)
		if addSunday {
			out = append(out, "0")
		}
	}
	return strings.Join(out, ",")
}

// stepReachesSunday reports whether a lo-7/step range lands on 7.
func stepReachesSunday(lo, step string) bool {
	start, err := strconv.Atoi(lo)
	if err != nil {
		return true
	}
	n, err := strconv.Atoi(step)
	if err != nil || n <= 0 {
		return true
	}
	return (7-start)%n == 0
}
