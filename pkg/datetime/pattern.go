package datetime

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrInvalidPattern is returned for patterns that cannot be compiled.
var ErrInvalidPattern = errors.New("invalid date pattern")

// ErrUnsupportedField is returned when a Date is formatted with a pattern that
// needs a time of day.
var ErrUnsupportedField = errors.New("unsupported field")

// Pattern is a compiled DateTimeFormatter-style pattern such as
// "yyyy-MM-dd HH:mm". Letters are fields, text in single quotes is literal,
// two single quotes print one, and other characters are printed as is.
// Locale-dependent week fields (w W e c F) and the pad modifier p are not
// supported and fail to compile.
type Pattern struct {
	source   string
	elems    []element
	usesTime bool
}

type element struct {
	literal string
	field   func(b *strings.Builder, t time.Time)
}

// CompilePattern parses pattern.
func CompilePattern(pattern string) (*Pattern, error) {
	p := &Pattern{source: pattern}
	runes := []rune(pattern)
	depth := 0
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			p.elems = append(p.elems, element{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isLetter(r):
			n := 1
			for i+n < len(runes) && runes[i+n] == r {
				n++
			}
			fn, isTime, err := compileField(r, n)
			if err != nil {
				return nil, errors.Wrapf(err, "pattern %q", pattern)
			}
			flush()
			p.elems = append(p.elems, element{field: fn})
			p.usesTime = p.usesTime || isTime
			i += n - 1
		case r == '\'':
			end := i + 1
			if end < len(runes) && runes[end] == '\'' {
				lit.WriteRune('\'')
				i = end
				continue
			}
			closed := false
			for ; end < len(runes); end++ {
				if runes[end] != '\'' {
					lit.WriteRune(runes[end])
					continue
				}
				if end+1 < len(runes) && runes[end+1] == '\'' {
					lit.WriteRune('\'')
					end++
					continue
				}
				closed = true
				break
			}
			if !closed {
				return nil, errors.Wrapf(ErrInvalidPattern, "pattern %q: unterminated quote", pattern)
			}
			i = end
		case r == '[':
			depth++
		case r == ']':
			if depth == 0 {
				return nil, errors.Wrapf(ErrInvalidPattern, "pattern %q: ']' without '['", pattern)
			}
			depth--
		case r == '#' || r == '{' || r == '}':
			return nil, errors.Wrapf(ErrInvalidPattern, "pattern %q: reserved character %q", pattern, r)
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	return p, nil
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// UsesTime reports whether the pattern prints any time-of-day field.
func (p *Pattern) UsesTime() bool {
	return p.usesTime
}

// FormatDate formats d. Patterns with time fields are rejected.
func (p *Pattern) FormatDate(d Date) (string, error) {
	if p.usesTime {
		return "", errors.Wrapf(ErrUnsupportedField, "pattern %q formats a time of day", p.source)
	}
	return p.format(d.t), nil
}

// FormatDateTime formats dt.
func (p *Pattern) FormatDateTime(dt DateTime) string {
	return p.format(dt.t)
}

func (p *Pattern) format(t time.Time) string {
	var b strings.Builder
	for _, e := range p.elems {
		if e.field != nil {
			e.field(&b, t)
			continue
		}
		b.WriteString(e.literal)
	}
	return b.String()
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func compileField(letter rune, count int) (fn func(*strings.Builder, time.Time), isTime bool, err error) {
	tooMany := func(limit int) error {
		if count > limit {
			return errors.Wrapf(ErrInvalidPattern, "too many pattern letters: %c", letter)
		}
		return nil
	}
	number := func(get func(time.Time) int, width int) func(*strings.Builder, time.Time) {
		return func(b *strings.Builder, t time.Time) {
			pad(b, get(t), width)
		}
	}

	switch letter {
	case 'G':
		if err := tooMany(5); err != nil {
			return nil, false, err
		}
		return func(b *strings.Builder, t time.Time) {
			ad := t.Year() > 0
			switch {
			case count == 4 && ad:
				b.WriteString("Anno Domini")
			case count == 4:
				b.WriteString("Before Christ")
			case count == 5 && ad:
				b.WriteString("A")
			case count == 5:
				b.WriteString("B")
			case ad:
				b.WriteString("AD")
			default:
				b.WriteString("BC")
			}
		}, false, nil
	case 'y', 'u':
		yearOfEra := letter == 'y'
		get := func(t time.Time) int {
			y := t.Year()
			if yearOfEra && y <= 0 {
				return 1 - y
			}
			return y
		}
		if count == 2 {
			return func(b *strings.Builder, t time.Time) {
				y := get(t) % 100
				if y < 0 {
					y = -y
				}
				pad(b, y, 2)
			}, false, nil
		}
		return number(get, count), false, nil
	case 'M', 'L':
		if err := tooMany(5); err != nil {
			return nil, false, err
		}
		switch count {
		case 1, 2:
			return number(func(t time.Time) int { return int(t.Month()) }, count), false, nil
		case 3:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Month().String()[:3]) }, false, nil
		case 4:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Month().String()) }, false, nil
		default:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Month().String()[:1]) }, false, nil
		}
	case 'Q', 'q':
		if err := tooMany(5); err != nil {
			return nil, false, err
		}
		switch count {
		case 1, 2:
			return number(quarter, count), false, nil
		case 3:
			return func(b *strings.Builder, t time.Time) {
				b.WriteByte('Q')
				pad(b, quarter(t), 1)
			}, false, nil
		case 4:
			return func(b *strings.Builder, t time.Time) {
				b.WriteString(quarterNames[quarter(t)-1])
			}, false, nil
		default:
			return number(quarter, 1), false, nil
		}
	case 'd':
		if err := tooMany(2); err != nil {
			return nil, false, err
		}
		return number(func(t time.Time) int { return t.Day() }, count), false, nil
	case 'D':
		if err := tooMany(3); err != nil {
			return nil, false, err
		}
		return number(func(t time.Time) int { return t.YearDay() }, count), false, nil
	case 'E':
		if err := tooMany(5); err != nil {
			return nil, false, err
		}
		switch count {
		case 4:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Weekday().String()) }, false, nil
		case 5:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Weekday().String()[:1]) }, false, nil
		default:
			return func(b *strings.Builder, t time.Time) { b.WriteString(t.Weekday().String()[:3]) }, false, nil
		}
	case 'a':
		if err := tooMany(1); err != nil {
			return nil, false, err
		}
		return func(b *strings.Builder, t time.Time) {
			if t.Hour() < 12 {
				b.WriteString("AM")
			} else {
				b.WriteString("PM")
			}
		}, true, nil
	case 'H', 'k', 'h', 'K', 'm', 's':
		if err := tooMany(2); err != nil {
			return nil, false, err
		}
		return number(clockField(letter), count), true, nil
	case 'S':
		if err := tooMany(9); err != nil {
			return nil, false, err
		}
		return func(b *strings.Builder, t time.Time) {
			frac := strconv.Itoa(t.Nanosecond() + 1e9)[1:]
			b.WriteString(frac[:count])
		}, true, nil
	case 'n':
		return number(func(t time.Time) int { return t.Nanosecond() }, count), true, nil
	}
	return nil, false, errors.Wrapf(ErrInvalidPattern, "unknown pattern letter: %c", letter)
}

var quarterNames = [4]string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"}

func quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func clockField(letter rune) func(time.Time) int {
	switch letter {
	case 'H':
		return func(t time.Time) int { return t.Hour() }
	case 'k':
		return func(t time.Time) int {
			if t.Hour() == 0 {
				return 24
			}
			return t.Hour()
		}
	case 'h':
		return func(t time.Time) int {
			if h := t.Hour() % 12; h != 0 {
				return h
			}
			return 12
		}
	case 'K':
		return func(t time.Time) int { return t.Hour() % 12 }
	case 'm':
		return func(t time.Time) int { return t.Minute() }
	default:
		return func(t time.Time) int { return t.Second() }
	}
}

func pad(b *strings.Builder, v, width int) {
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
