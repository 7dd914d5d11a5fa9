package builtin

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/kasuganosora/sqlhelpers/pkg/setop"
)

func (h *handlers) listFunctions() []*FunctionInfo {
	return []*FunctionInfo{
		{
			Name: "union",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "union", ReturnType: "list", ParamTypes: []string{"list", "list"}},
			},
			Handler:     listUnion,
			Description: "Both lists with duplicates removed, first occurrence wins",
			Example:     "UNION([1, 2], [2, 3]) -> [1, 2, 3]",
			Category:    CategoryList,
		},
		{
			Name: "union_all",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "union_all", ReturnType: "list", ParamTypes: []string{"list", "list"}},
			},
			Handler:     listUnionAll,
			Description: "Both lists concatenated",
			Example:     "UNION_ALL([1, 2], [2, 3]) -> [1, 2, 2, 3]",
			Category:    CategoryList,
		},
	}
}

func listUnion(args []interface{}) (interface{}, error) {
	a, b, err := listPair("union", args)
	if err != nil {
		return nil, err
	}
	for _, list := range [][]interface{}{a, b} {
		for _, v := range list {
			if v != nil && !reflect.TypeOf(v).Comparable() {
				return nil, errors.Wrapf(ErrArgumentType, "union(): %T values cannot be compared", v)
			}
		}
	}
	return setop.Union(a, b), nil
}

func listUnionAll(args []interface{}) (interface{}, error) {
	a, b, err := listPair("union_all", args)
	if err != nil {
		return nil, err
	}
	return setop.UnionAll(a, b), nil
}

func listPair(name string, args []interface{}) ([]interface{}, []interface{}, error) {
	if err := arity(name, args, 2, 2); err != nil {
		return nil, nil, err
	}
	a, ok := asList(args[0])
	if !ok {
		return nil, nil, errors.Wrapf(ErrArgumentType, "%s(): expected a list, got %T", name, args[0])
	}
	b, ok := asList(args[1])
	if !ok {
		return nil, nil, errors.Wrapf(ErrArgumentType, "%s(): expected a list, got %T", name, args[1])
	}
	return a, b, nil
}
