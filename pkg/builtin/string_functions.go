package builtin

import (
	"github.com/cockroachdb/errors"

	"github.com/kasuganosora/sqlhelpers/pkg/text"
)

func (h *handlers) stringFunctions() []*FunctionInfo {
	return []*FunctionInfo{
		{
			Name: "concat",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "concat", ReturnType: "string", ParamTypes: []string{"string"}, Variadic: true},
			},
			Handler:     h.stringConcat,
			Description: "Concatenates the non-NULL arguments",
			Example:     "CONCAT('a', NULL, 'b') -> 'ab'",
			Category:    CategoryString,
		},
		{
			Name: "concat_ws",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "concat_ws", ReturnType: "string", ParamTypes: []string{"string", "string"}, Variadic: true},
			},
			Handler:     h.stringConcatWs,
			Description: "Concatenates the non-NULL arguments after the first, separated by the first",
			Example:     "CONCAT_WS(',', 'a', NULL, 'b') -> 'a,b'",
			Category:    CategoryString,
		},
		{
			Name: "group_concat",
			Type: FunctionTypeAggregate,
			Signatures: []FunctionSignature{
				{Name: "group_concat", ReturnType: "string", ParamTypes: []string{"list"}},
				{Name: "group_concat", ReturnType: "string", ParamTypes: []string{"list", "string"}},
			},
			Handler:     h.stringGroupConcat,
			Description: "Joins the distinct non-NULL list values in ascending order",
			Example:     "GROUP_CONCAT(['b', 'a', 'a']) -> 'a,b'",
			Category:    CategoryString,
		},
	}
}

func (h *handlers) stringConcat(args []interface{}) (interface{}, error) {
	return text.ConcatWith(h.opts.ConcatDelimiter, stringPtrs(args)...), nil
}

func (h *handlers) stringConcatWs(args []interface{}) (interface{}, error) {
	if err := arity("concat_ws", args, 1, -1); err != nil {
		return nil, err
	}
	delimiter := h.opts.ConcatDelimiter
	if args[0] != nil {
		delimiter = toString(args[0])
	}
	return text.ConcatWith(delimiter, stringPtrs(args[1:])...), nil
}

func (h *handlers) stringGroupConcat(args []interface{}) (interface{}, error) {
	if err := arity("group_concat", args, 1, 2); err != nil {
		return nil, err
	}
	list, ok := asList(args[0])
	if !ok {
		return nil, errors.Wrapf(ErrArgumentType, "group_concat(): expected a list, got %T", args[0])
	}
	delimiter := h.opts.GroupConcatDelimiter
	if len(args) == 2 && args[1] != nil {
		delimiter = toString(args[1])
	}
	return text.GroupConcatWith(stringPtrs(list), delimiter), nil
}

func stringPtrs(args []interface{}) []*string {
	if args == nil {
		return nil
	}
	out := make([]*string, len(args))
	for i, arg := range args {
		out[i] = toStringPtr(arg)
	}
	return out
}
