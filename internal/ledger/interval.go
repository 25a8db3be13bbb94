package ledger

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/txledger7000-backend/internal/config"
)

const dayLayout = "2006-01-02"

// localZone is the configured value meaning "the execution environment's
// default timezone".
const localZone = "local"

// Window is a resolved reporting window: calendar day bounds expanded to
// instants in the target timezone. It is resolved once per run and threaded
// through every stage.
type Window struct {
	Start time.Time
	End   time.Time
	Loc   *time.Location
	Label string
}

// ResolveWindow resolves the timezone and the inclusive day-range bounds from
// report options. Missing dates default to today in the resolved timezone.
func ResolveWindow(opts config.ReportOptions, now time.Time) (Window, error) {
	label := opts.UserTimezone
	if label == "" {
		label = localZone
	}

	loc := time.Local
	if label != localZone {
		resolved, err := time.LoadLocation(label)
		if err != nil {
			return Window{}, fmt.Errorf("resolve timezone %q: %w", label, err)
		}
		loc = resolved
	}

	today := now.In(loc)

	startDay, err := resolveDate(opts.StartDate, today, loc)
	if err != nil {
		return Window{}, fmt.Errorf("start date: %w", err)
	}
	endDay, err := resolveDate(opts.EndDate, today, loc)
	if err != nil {
		return Window{}, fmt.Errorf("end date: %w", err)
	}

	start := startOfDay(startDay, loc)
	end := endOfDay(endDay, loc)
	if end.Before(start) {
		return Window{}, fmt.Errorf("end date %s is before start date %s",
			endDay.Format(dayLayout), startDay.Format(dayLayout))
	}

	return Window{Start: start, End: end, Loc: loc, Label: label}, nil
}

// Contains reports inclusive membership of an instant in the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Localize converts a UTC block time into the window's timezone and returns
// the local day string, the ISO-8601 timestamp and the localized instant.
// Both strings are computed regardless of interval membership.
func (w Window) Localize(unixSec int64) (day string, timestamp string, local time.Time) {
	local = time.Unix(unixSec, 0).In(w.Loc)
	return local.Format(dayLayout), local.Format(time.RFC3339), local
}

func resolveDate(value string, fallback time.Time, loc *time.Location) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseInLocation(dayLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", value, err)
	}
	return parsed, nil
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func endOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
}
