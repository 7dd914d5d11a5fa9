// Package datetime implements the date helpers: NOW, DATE_ADD, DATE_DIFF and
// DATE_FORMAT over zone-less dates and date-times.
//
// Date and DateTime keep their wall-clock fields in UTC so that day arithmetic
// never sees a daylight saving transition. Callers convert from and to
// time.Time with DateOf, DateTimeOf and the Time methods.
package datetime

import (
	"time"

	"github.com/dromara/carbon/v2"
)

// Default patterns, in DateTimeFormatter syntax.
const (
	DatePattern     = "yyyy-MM-dd"
	DateTimePattern = "yyyy-MM-dd HH:mm"
	TimePattern     = "HH:mm"
)

// Date is a calendar date without time of day.
type Date struct {
	t time.Time
}

// NewDate returns the date y-m-d. Out of range values are normalized the way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t as seen in t's location.
func DateOf(t time.Time) Date {
	return NewDate(t.Date())
}

// Time returns midnight of d, in UTC.
func (d Date) Time() time.Time {
	return d.t
}

// AtStartOfDay returns d at 00:00.
func (d Date) AtStartOfDay() DateTime {
	return DateTime{t: d.t}
}

func (d Date) String() string {
	return FormatDate(&d)
}

// DateTime is a calendar date with a wall-clock time of day.
type DateTime struct {
	t time.Time
}

// NewDateTime returns the given wall-clock date-time.
func NewDateTime(year int, month time.Month, day, hour, minute, sec, nsec int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, minute, sec, nsec, time.UTC)}
}

// DateTimeOf returns the wall-clock reading of t in t's location.
func DateTimeOf(t time.Time) DateTime {
	y, m, d := t.Date()
	return NewDateTime(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// Time returns dt with its wall clock interpreted in UTC.
func (dt DateTime) Time() time.Time {
	return dt.t
}

// Date drops the time of day.
func (dt DateTime) Date() Date {
	return DateOf(dt.t)
}

func (dt DateTime) String() string {
	return FormatDateTime(&dt)
}

// AddDays shifts d by days calendar days. Negative values move backwards.
func AddDays(d Date, days int) Date {
	return DateOf(toCarbon(d.t).AddDays(days).StdTime())
}

// AddDaysTime shifts dt by days calendar days, keeping the time of day.
func AddDaysTime(dt DateTime, days int) DateTime {
	return DateTimeOf(toCarbon(dt.t).AddDays(days).StdTime())
}

// DiffDays returns the number of whole days from d1 to d2. It is negative
// when d2 is before d1.
func DiffDays(d1, d2 Date) int64 {
	return toCarbon(d1.t).DiffInDays(toCarbon(d2.t))
}

// DiffDaysTime returns the number of whole days from dt1 to dt2, truncated
// toward zero. The elapsed time is first floored to whole seconds, so
// fractions of a second count. Unix seconds are used rather than
// time.Duration, which cannot span more than about 292 years.
func DiffDaysTime(dt1, dt2 DateTime) int64 {
	secs := dt2.t.Unix() - dt1.t.Unix()
	if dt2.t.Nanosecond() < dt1.t.Nanosecond() {
		secs--
	}
	return secs / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

func toCarbon(t time.Time) *carbon.Carbon {
	return carbon.CreateFromStdTime(t, carbon.UTC)
}
