// Package numeric implements SUM, MIN and MAX over nullable numbers.
//
// Each function comes in a variadic form and a list form. The two forms do
// not share their empty-input results: MAX of nothing is the MaxOf sentinel
// in both forms, MIN of an empty list is MaxOf while MIN of no arguments is
// zero. Callers that need to tell "no data" apart must check the input.
package numeric

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxOf returns the largest value representable by T.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		// unsigned
		return ^zero
	}
	bits := unsafe.Sizeof(zero) * 8
	return ^(T(1) << (bits - 1))
}

// Sum adds the present values. No values yields zero.
func Sum[T Number](values ...*T) T {
	var total T
	for _, v := range values {
		if v != nil {
			total += *v
		}
	}
	return total
}

// SumList is Sum over a list.
func SumList[T Number](list []*T) T {
	if len(list) == 0 {
		return 0
	}
	return Sum(list...)
}

// Max returns the largest present value, or MaxOf when there is none.
func Max[T constraints.Integer](values ...*T) T {
	best, ok := extreme(values, func(a, b T) bool { return a > b })
	if !ok {
		return MaxOf[T]()
	}
	return best
}

// MaxList is Max over a list.
func MaxList[T constraints.Integer](list []*T) T {
	if len(list) == 0 {
		return MaxOf[T]()
	}
	return Max(list...)
}

// Min returns the smallest present value, or zero when there is none.
func Min[T constraints.Integer](values ...*T) T {
	best, ok := extreme(values, func(a, b T) bool { return a < b })
	if !ok {
		return 0
	}
	return best
}

// MinList returns MaxOf for an empty list and Min of its elements otherwise.
func MinList[T constraints.Integer](list []*T) T {
	if len(list) == 0 {
		return MaxOf[T]()
	}
	return Min(list...)
}

func extreme[T constraints.Integer](values []*T, better func(a, b T) bool) (T, bool) {
	var best T
	found := false
	for _, v := range values {
		if v == nil {
			continue
		}
		if !found || better(*v, best) {
			best = *v
			found = true
		}
	}
	return best, found
}
