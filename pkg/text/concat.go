// Package text implements CONCAT and GROUP_CONCAT over nullable strings.
package text

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultGroupDelimiter separates GROUP_CONCAT output when none is given.
const DefaultGroupDelimiter = ","

// Concat joins the present parts with no delimiter.
func Concat(parts ...*string) string {
	return ConcatWith("", parts...)
}

// ConcatWith joins the present parts with delimiter. Absent parts are
// skipped, empty strings are kept.
func ConcatWith(delimiter string, parts ...*string) string {
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(present(parts), delimiter)
}

// GroupConcat is GroupConcatWith using DefaultGroupDelimiter.
func GroupConcat(list []*string) string {
	return GroupConcatWith(list, DefaultGroupDelimiter)
}

// GroupConcatWith drops absent entries, removes duplicates and joins the
// remaining values in ascending order. The output is always sorted, whatever
// the input order.
func GroupConcatWith(list []*string, delimiter string) string {
	if len(list) == 0 {
		return ""
	}
	values := distinct(present(list))
	sort.Strings(values)
	return strings.Join(values, delimiter)
}

// GroupConcatCollate is GroupConcatWith ordered by the collation rules of tag
// instead of code point order.
func GroupConcatCollate(list []*string, delimiter string, tag language.Tag) string {
	if len(list) == 0 {
		return ""
	}
	values := distinct(present(list))
	collate.New(tag).SortStrings(values)
	return strings.Join(values, delimiter)
}

func present(parts []*string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
