package setop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want []int
	}{
		{"merge dedupes", []int{1, 2}, []int{2, 3}, []int{1, 2, 3}},
		{"first occurrence wins", []int{3, 1, 3}, []int{1, 2}, []int{3, 1, 2}},
		{"both empty", []int{}, nil, []int{}},
		{"both nil", nil, nil, []int{}},
		{"left only keeps duplicates", []int{1, 1, 2}, nil, []int{1, 1, 2}},
		{"right only keeps duplicates", []int{}, []int{2, 2}, []int{2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Union(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Union(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestUnionAll(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want []string
	}{
		{"concatenates", []string{"1", "2"}, []string{"2", "3"}, []string{"1", "2", "2", "3"}},
		{"both nil", nil, nil, []string{}},
		{"left only", []string{"a", "a"}, []string{}, []string{"a", "a"}},
		{"right only", nil, []string{"b"}, []string{"b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnionAll(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("UnionAll(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestShortCircuitReturnsInputSlice(t *testing.T) {
	a := []int{1, 1, 2}
	got := Union(a, nil)
	assert.Same(t, &a[0], &got[0])

	got = UnionAll(nil, a)
	assert.Same(t, &a[0], &got[0])
}

func TestEmptyResultIsNotNil(t *testing.T) {
	assert.NotNil(t, Union[int](nil, nil))
	assert.NotNil(t, UnionAll[int](nil, nil))
}

func TestMergeDoesNotAliasInputs(t *testing.T) {
	a, b := []int{1}, []int{2}
	got := UnionAll(a, b)
	got[0] = 9
	assert.Equal(t, 1, a[0])
}
