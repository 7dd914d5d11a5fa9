package builtin

import "reflect"

func (h *handlers) controlFunctions() []*FunctionInfo {
	return []*FunctionInfo{
		{
			Name: "isnull",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "isnull", ReturnType: "boolean", ParamTypes: []string{"any"}},
			},
			Handler:     controlIsNull,
			Description: "True for NULL, blank strings and empty lists",
			Example:     "ISNULL('  ') -> true",
			Category:    CategoryControl,
		},
		{
			Name: "ifnull",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "ifnull", ReturnType: "any", ParamTypes: []string{"any", "any"}},
				{Name: "ifnull", ReturnType: "any", ParamTypes: []string{"any"}},
			},
			Handler:     controlIfNull("ifnull"),
			Description: "Returns the second argument when the first is NULL (or a blank string); without one, the zero value of the first argument's type",
			Example:     "IFNULL(NULL, 'default') -> 'default'",
			Category:    CategoryControl,
		},
		{
			Name: "nvl",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "nvl", ReturnType: "any", ParamTypes: []string{"any", "any"}},
				{Name: "nvl", ReturnType: "any", ParamTypes: []string{"any"}},
			},
			Handler:     controlIfNull("nvl"),
			Description: "Alias of IFNULL",
			Example:     "NVL('', 'default') -> 'default'",
			Category:    CategoryControl,
		},
		{
			Name: "coalesce",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "coalesce", ReturnType: "any", ParamTypes: []string{"any"}, Variadic: true},
			},
			Handler:     controlCoalesce,
			Description: "Returns the first non-NULL argument",
			Example:     "COALESCE(NULL, NULL, 'hello') -> 'hello'",
			Category:    CategoryControl,
		},
	}
}

func controlIsNull(args []interface{}) (interface{}, error) {
	if err := arity("isnull", args, 1, 1); err != nil {
		return nil, err
	}
	return isNullValue(args[0]), nil
}

// controlIfNull treats strings by the blank rule and every other value by
// the nil rule. With one argument the default is the zero value of its type:
// "" for strings, 0 for numbers, NULL when the type is unknown.
func controlIfNull(name string) FunctionHandle {
	return func(args []interface{}) (interface{}, error) {
		if err := arity(name, args, 1, 2); err != nil {
			return nil, err
		}
		value := unwrapPointer(args[0])
		def := zeroOf(args[0])
		if len(args) == 2 {
			def = args[1]
		}
		if value == nil || isNullValue(value) && isString(value) {
			return def, nil
		}
		return value, nil
	}
}

func zeroOf(arg interface{}) interface{} {
	if arg == nil {
		return nil
	}
	t := reflect.TypeOf(arg)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return reflect.Zero(t).Interface()
	}
	return nil
}

func controlCoalesce(args []interface{}) (interface{}, error) {
	for _, arg := range args {
		if arg = unwrapPointer(arg); arg != nil {
			return arg, nil
		}
	}
	return nil, nil
}
