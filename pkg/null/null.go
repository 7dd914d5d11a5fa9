// Package null implements SQL-style handling of absent values.
//
// Absent scalars are nil pointers, absent collections are nil or zero-length
// slices. Strings get the looser SQL treatment where blank means absent.
package null

import (
	"database/sql"
	"strings"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// FromSQL converts a database/sql nullable into a pointer, nil when invalid.
func FromSQL[T any](n sql.Null[T]) *T {
	if !n.Valid {
		return nil
	}
	return Ptr(n.V)
}

// IsNull reports whether p is absent.
func IsNull[T any](p *T) bool {
	return p == nil
}

// IsBlank reports whether s is absent, empty or whitespace only.
func IsBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

// IsEmpty reports whether s is nil or has no elements.
func IsEmpty[T any](s []T) bool {
	return len(s) == 0
}

// IsEmptyMap reports whether m is nil or has no entries.
func IsEmptyMap[K comparable, V any](m map[K]V) bool {
	return len(m) == 0
}

// IfNull returns def when v is absent, *v otherwise.
func IfNull[T any](v *T, def T) T {
	if IsNull(v) {
		return def
	}
	return *v
}

// IfNullString returns def when s is blank, *s otherwise.
func IfNullString(s *string, def string) string {
	if IsBlank(s) {
		return def
	}
	return *s
}

// StringOrEmpty is IfNullString with an empty default.
func StringOrEmpty(s *string) string {
	return IfNullString(s, "")
}

// IntOrZero is IfNull with a zero default.
func IntOrZero(v *int) int {
	return IfNull(v, 0)
}

// Int64OrZero is IfNull with a zero default.
func Int64OrZero(v *int64) int64 {
	return IfNull(v, 0)
}

// Float64OrZero is IfNull with a zero default.
func Float64OrZero(v *float64) float64 {
	return IfNull(v, 0.0)
}

// Coalesce returns the first present value, or nil if there is none.
func Coalesce[T any](values ...*T) *T {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
