package builtin

import (
	"github.com/kasuganosora/sqlhelpers/pkg/numeric"
)

// Aggregates accept either loose arguments, SUM(1, NULL, 2), or a single
// list argument, SUM([1, NULL, 2]). The two forms keep their own defaults for
// empty input: MIN() is 0 but MIN([]) is the integer maximum.

func (h *handlers) aggregateFunctions() []*FunctionInfo {
	signatures := func(name string) []FunctionSignature {
		return []FunctionSignature{
			{Name: name, ReturnType: "integer", ParamTypes: []string{"integer"}, Variadic: true},
			{Name: name, ReturnType: "integer", ParamTypes: []string{"list"}},
		}
	}
	return []*FunctionInfo{
		{
			Name:        "sum",
			Type:        FunctionTypeAggregate,
			Signatures:  signatures("sum"),
			Handler:     aggregate("sum", numeric.Sum[int64], numeric.SumList[int64]),
			Description: "Sum of the non-NULL values, 0 when there are none",
			Example:     "SUM(1, NULL, 2) -> 3",
			Category:    CategoryAggregate,
		},
		{
			Name:        "max",
			Type:        FunctionTypeAggregate,
			Signatures:  signatures("max"),
			Handler:     aggregate("max", numeric.Max[int64], numeric.MaxList[int64]),
			Description: "Largest non-NULL value, the integer maximum when there are none",
			Example:     "MAX(3, 1, 2) -> 3",
			Category:    CategoryAggregate,
		},
		{
			Name:        "min",
			Type:        FunctionTypeAggregate,
			Signatures:  signatures("min"),
			Handler:     aggregate("min", numeric.Min[int64], numeric.MinList[int64]),
			Description: "Smallest non-NULL value; 0 for no arguments, the integer maximum for an empty list",
			Example:     "MIN(3, 1, 2) -> 1",
			Category:    CategoryAggregate,
		},
	}
}

func aggregate(name string, variadic func(...*int64) int64, list func([]*int64) int64) FunctionHandle {
	return func(args []interface{}) (interface{}, error) {
		if len(args) == 1 && args[0] != nil {
			if elems, ok := asList(args[0]); ok {
				values, err := int64Ptrs(name, elems)
				if err != nil {
					return nil, err
				}
				return list(values), nil
			}
		}
		values, err := int64Ptrs(name, args)
		if err != nil {
			return nil, err
		}
		return variadic(values...), nil
	}
}

func int64Ptrs(name string, args []interface{}) ([]*int64, error) {
	out := make([]*int64, len(args))
	for i, arg := range args {
		v, err := toInt64Ptr(name, arg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
