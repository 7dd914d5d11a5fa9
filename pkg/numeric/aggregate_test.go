package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func p[T any](v T) *T { return &v }

func TestMaxOf(t *testing.T) {
	assert.Equal(t, math.MaxInt, MaxOf[int]())
	assert.Equal(t, int8(math.MaxInt8), MaxOf[int8]())
	assert.Equal(t, int32(math.MaxInt32), MaxOf[int32]())
	assert.Equal(t, int64(math.MaxInt64), MaxOf[int64]())
	assert.Equal(t, uint8(math.MaxUint8), MaxOf[uint8]())
	assert.Equal(t, uint64(math.MaxUint64), MaxOf[uint64]())
}

func TestSum(t *testing.T) {
	assert.Equal(t, 3, Sum(p(1), nil, p(2)))
	assert.Equal(t, 0, Sum[int]())
	assert.Equal(t, 0, Sum[int](nil, nil))
	assert.Equal(t, -4, Sum(p(-6), p(2)))
	assert.InDelta(t, 3.75, Sum(p(1.5), nil, p(2.25)), 1e-9)

	assert.Equal(t, 3, SumList([]*int{p(1), nil, p(2)}))
	assert.Equal(t, 0, SumList[int](nil))
	assert.Equal(t, 0, SumList([]*int{}))
}

func TestMax(t *testing.T) {
	assert.Equal(t, 3, Max(p(3), p(1), p(2)))
	assert.Equal(t, -1, Max(p(-5), nil, p(-1)))
	assert.Equal(t, math.MaxInt, Max[int]())
	assert.Equal(t, math.MaxInt, Max[int](nil, nil))

	assert.Equal(t, 3, MaxList([]*int{p(3), p(1), p(2)}))
	assert.Equal(t, math.MaxInt, MaxList[int](nil))
	assert.Equal(t, math.MaxInt, MaxList([]*int{}))
	assert.Equal(t, int32(math.MaxInt32), MaxList([]*int32{}))
}

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(p(3), p(1), p(2)))
	assert.Equal(t, -5, Min(p(-5), nil, p(-1)))

	// The variadic and list forms disagree on empty input.
	assert.Equal(t, 0, Min[int]())
	assert.Equal(t, 0, Min[int](nil, nil))
	assert.Equal(t, math.MaxInt, MinList[int](nil))
	assert.Equal(t, math.MaxInt, MinList([]*int{}))

	// A non-empty list of absents delegates to the variadic fallback.
	assert.Equal(t, 0, MinList([]*int{nil}))
	assert.Equal(t, 2, MinList([]*int{nil, p(2), p(4)}))
}

func TestMinMaxUnsigned(t *testing.T) {
	assert.Equal(t, uint(9), Max(p(uint(9)), p(uint(4))))
	assert.Equal(t, uint(4), Min(p(uint(9)), p(uint(4))))
	assert.Equal(t, uint(math.MaxUint), MinList[uint](nil))
}
