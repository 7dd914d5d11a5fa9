package null

// The NVL family mirrors the IFNULL family under the Oracle spelling.

// Nvl is an alias for IfNull.
func Nvl[T any](v *T, def T) T {
	return IfNull(v, def)
}

// NvlString is an alias for IfNullString.
func NvlString(s *string, def string) string {
	return IfNullString(s, def)
}

// NvlStringOrEmpty is an alias for StringOrEmpty.
func NvlStringOrEmpty(s *string) string {
	return StringOrEmpty(s)
}

// NvlInt is an alias for IntOrZero.
func NvlInt(v *int) int {
	return IntOrZero(v)
}

// NvlInt64 is an alias for Int64OrZero.
func NvlInt64(v *int64) int64 {
	return Int64OrZero(v)
}

// NvlFloat64 is an alias for Float64OrZero.
func NvlFloat64(v *float64) float64 {
	return Float64OrZero(v)
}
