package datetime

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dromara/carbon/v2"
)

// FormatDate formats d with pattern, DatePattern by default. Absent dates
// and patterns that cannot format a date yield "".
func FormatDate(d *Date, pattern ...string) string {
	if d == nil {
		return ""
	}
	p, err := CompilePattern(patternOr(pattern, DatePattern))
	if err != nil {
		return ""
	}
	s, err := p.FormatDate(*d)
	if err != nil {
		return ""
	}
	return s
}

// FormatDateTime formats dt with pattern, DateTimePattern by default. Absent
// values and malformed patterns yield "".
func FormatDateTime(dt *DateTime, pattern ...string) string {
	if dt == nil {
		return ""
	}
	p, err := CompilePattern(patternOr(pattern, DateTimePattern))
	if err != nil {
		return ""
	}
	return p.FormatDateTime(*dt)
}

func patternOr(pattern []string, def string) string {
	if len(pattern) > 0 {
		return pattern[0]
	}
	return def
}

// ParseDateTime reads s in any of the common textual date-time forms. Values
// with an explicit offset are converted to UTC.
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}, errors.New("empty date-time")
	}
	c := carbon.Parse(s, carbon.UTC)
	if c.Error != nil {
		return DateTime{}, errors.Wrapf(c.Error, "parse date-time %q", s)
	}
	if c.IsInvalid() {
		return DateTime{}, errors.Newf("parse date-time %q: invalid value", s)
	}
	return DateTimeOf(c.StdTime()), nil
}

// ParseDate reads s like ParseDateTime and drops the time of day.
func ParseDate(s string) (Date, error) {
	dt, err := ParseDateTime(s)
	if err != nil {
		return Date{}, err
	}
	return dt.Date(), nil
}
