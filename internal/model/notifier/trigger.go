package notifier

import (
	"time"

	"github.com/jinzhu/now"
)

// trigger reports the most recent instant at or before t when a job should fire.
type trigger interface {
	last(t time.Time) time.Time
}

// daily fires every day at a time-of-day offset from midnight.
type daily struct {
	offset time.Duration
}

func (d daily) last(t time.Time) time.Time {
	at := atOffset(now.With(t).BeginningOfDay(), d.offset)
	if at.After(t) {
		at = atOffset(now.With(t).BeginningOfDay().AddDate(0, 0, -1), d.offset)
	}
	return at
}

// monthly fires on the first day of every month at a time-of-day offset.
type monthly struct {
	offset time.Duration
}

func (m monthly) last(t time.Time) time.Time {
	first := now.With(t).BeginningOfMonth()
	at := atOffset(first, m.offset)
	if at.After(t) {
		at = atOffset(first.AddDate(0, -1, 0), m.offset)
	}
	return at
}

// atOffset builds wall-clock HH:MM on day, so DST shifts don't move the trigger.
func atOffset(day time.Time, offset time.Duration) time.Time {
	y, m, d := day.Date()
	hour := int(offset / time.Hour)
	minute := int((offset % time.Hour) / time.Minute)
	return time.Date(y, m, d, hour, minute, 0, 0, day.Location())
}
