// Package setop implements UNION and UNION ALL over slices.
package setop

// Union returns the elements of a followed by those of b with duplicates
// removed, keeping the first occurrence. If only one side has elements it is
// returned as is, duplicates included; if neither does the result is an empty
// slice.
func Union[T comparable](a, b []T) []T {
	if out, ok := shortCircuit(a, b); ok {
		return out
	}
	seen := make(map[T]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, list := range [][]T{a, b} {
		for _, v := range list {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// UnionAll returns the elements of a followed by those of b. The
// short-circuit rules of Union apply.
func UnionAll[T any](a, b []T) []T {
	if out, ok := shortCircuit(a, b); ok {
		return out
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func shortCircuit[T any](a, b []T) ([]T, bool) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return []T{}, true
	case len(a) == 0:
		return b, true
	case len(b) == 0:
		return a, true
	}
	return nil, false
}
