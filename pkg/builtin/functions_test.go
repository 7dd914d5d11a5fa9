package builtin

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/sqlhelpers/internal/testutil"
	"github.com/kasuganosora/sqlhelpers/pkg/config"
)

func newTestRegistry(t *testing.T) *FunctionRegistry {
	t.Helper()
	return NewRegistry(config.DefaultOptions(), testutil.NewTestLogger(t))
}

func TestNewFunctionRegistry(t *testing.T) {
	registry := NewFunctionRegistry()
	require.NotNil(t, registry)
	assert.NotNil(t, registry.functions)
	assert.Equal(t, 0, registry.Count())
}

func TestRegister(t *testing.T) {
	registry := NewFunctionRegistry()

	err := registry.Register(&FunctionInfo{
		Name:        "Test_Func",
		Type:        FunctionTypeScalar,
		Description: "Test function",
		Handler: func(args []interface{}) (interface{}, error) {
			return "test", nil
		},
	})
	require.NoError(t, err)

	fn, exists := registry.Get("test_func")
	require.True(t, exists)
	assert.Equal(t, "Test_Func", fn.Name)
	assert.True(t, registry.Exists("TEST_FUNC"))
}

func TestRegisterErrors(t *testing.T) {
	registry := NewFunctionRegistry()
	noop := func(args []interface{}) (interface{}, error) { return nil, nil }

	tests := []struct {
		name        string
		info        *FunctionInfo
		expectError bool
	}{
		{"Nil info", nil, true},
		{"Empty name", &FunctionInfo{Name: "", Handler: noop}, true},
		{"Nil handler", &FunctionInfo{Name: "test", Handler: nil}, true},
		{"Valid info", &FunctionInfo{Name: "test_func", Handler: noop}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.info)
			assert.Equal(t, tt.expectError, err != nil, "err = %v", err)
		})
	}
}

func TestUnregister(t *testing.T) {
	registry := newTestRegistry(t)

	assert.True(t, registry.Unregister("NVL"))
	assert.False(t, registry.Exists("nvl"))
	assert.False(t, registry.Unregister("nvl"))
}

func TestBuiltinCatalog(t *testing.T) {
	registry := newTestRegistry(t)

	names := make([]string, 0)
	for _, fn := range registry.List() {
		names = append(names, fn.Name)
		assert.NotEmpty(t, fn.Description, fn.Name)
		assert.NotEmpty(t, fn.Signatures, fn.Name)
	}
	assert.Equal(t, []string{
		"coalesce", "concat", "concat_ws", "date_add", "date_diff", "date_format",
		"group_concat", "ifnull", "isnull", "max", "min", "now", "nvl", "sum",
		"union", "union_all",
	}, names)

	assert.Equal(t, []string{
		CategoryAggregate, CategoryControl, CategoryDate, CategoryList, CategoryString,
	}, registry.Categories())
	assert.Len(t, registry.ListByCategory(CategoryControl), 4)
	assert.Len(t, registry.ListByCategory(CategoryDate), 4)
	assert.Empty(t, registry.ListByCategory("json"))
}

func TestCallUnknownFunction(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Call("no_such_fn")
	assert.True(t, errors.Is(err, ErrFunctionNotFound))
}

func TestCallArity(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name string
		args []interface{}
	}{
		{"isnull", nil},
		{"ifnull", nil},
		{"nvl", []interface{}{1, 2, 3}},
		{"concat_ws", nil},
		{"group_concat", nil},
		{"now", []interface{}{1}},
		{"date_add", []interface{}{"2024-01-01"}},
		{"date_diff", []interface{}{"2024-01-01"}},
		{"date_format", nil},
		{"union", []interface{}{nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Call(tt.name, tt.args...)
			assert.True(t, errors.Is(err, ErrArgumentCount), "err = %v", err)
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	registry := Default()
	require.NotNil(t, registry)
	assert.Same(t, registry, Default())

	got, err := registry.Call("COALESCE", nil, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}
