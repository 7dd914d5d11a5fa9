package builtin

import (
	"github.com/kasuganosora/sqlhelpers/pkg/datetime"
)

func (h *handlers) dateFunctions() []*FunctionInfo {
	return []*FunctionInfo{
		{
			Name:        "now",
			Type:        FunctionTypeScalar,
			Signatures:  []FunctionSignature{{Name: "now", ReturnType: "datetime"}},
			Handler:     dateNow,
			Description: "Current local date and time",
			Example:     "NOW() -> 2024-01-01 12:00",
			Category:    CategoryDate,
		},
		{
			Name: "date_add",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "date_add", ReturnType: "date", ParamTypes: []string{"date", "integer"}},
				{Name: "date_add", ReturnType: "datetime", ParamTypes: []string{"datetime", "integer"}},
			},
			Handler:     dateAdd,
			Description: "Shifts a date by a number of days",
			Example:     "DATE_ADD('2024-01-01', 9) -> 2024-01-10",
			Category:    CategoryDate,
		},
		{
			Name: "date_diff",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "date_diff", ReturnType: "integer", ParamTypes: []string{"date", "date"}},
				{Name: "date_diff", ReturnType: "integer", ParamTypes: []string{"datetime", "datetime"}},
			},
			Handler:     dateDiff,
			Description: "Whole days from the first date to the second",
			Example:     "DATE_DIFF('2024-01-01', '2024-01-10') -> 9",
			Category:    CategoryDate,
		},
		{
			Name: "date_format",
			Type: FunctionTypeScalar,
			Signatures: []FunctionSignature{
				{Name: "date_format", ReturnType: "string", ParamTypes: []string{"date"}},
				{Name: "date_format", ReturnType: "string", ParamTypes: []string{"date", "string"}},
			},
			Handler:     h.dateFormat,
			Description: "Formats a date with a yyyy-MM-dd style pattern, '' when it cannot",
			Example:     "DATE_FORMAT('2024-03-07', 'dd/MM/yyyy') -> '07/03/2024'",
			Category:    CategoryDate,
		},
	}
}

func dateNow(args []interface{}) (interface{}, error) {
	if err := arity("now", args, 0, 0); err != nil {
		return nil, err
	}
	return datetime.Now(), nil
}

func dateAdd(args []interface{}) (interface{}, error) {
	if err := arity("date_add", args, 2, 2); err != nil {
		return nil, err
	}
	t, ok, err := toTemporal("date_add", args[0])
	if err != nil || !ok {
		return nil, err
	}
	days, err := toInt("date_add", args[1])
	if err != nil {
		return nil, err
	}
	if t.date != nil {
		return datetime.AddDays(*t.date, days), nil
	}
	return datetime.AddDaysTime(*t.dateTime, days), nil
}

// dateDiff compares by calendar date when either side is a Date.
func dateDiff(args []interface{}) (interface{}, error) {
	if err := arity("date_diff", args, 2, 2); err != nil {
		return nil, err
	}
	t1, ok1, err := toTemporal("date_diff", args[0])
	if err != nil {
		return nil, err
	}
	t2, ok2, err := toTemporal("date_diff", args[1])
	if err != nil {
		return nil, err
	}
	if !ok1 || !ok2 {
		return nil, nil
	}
	if t1.date != nil || t2.date != nil {
		return datetime.DiffDays(t1.asDate(), t2.asDate()), nil
	}
	return datetime.DiffDaysTime(t1.asDateTime(), t2.asDateTime()), nil
}

// dateFormat never fails on data: absent dates and unusable patterns give ""
// and the reason is logged at debug level.
func (h *handlers) dateFormat(args []interface{}) (interface{}, error) {
	if err := arity("date_format", args, 1, 2); err != nil {
		return nil, err
	}
	t, ok, err := toTemporal("date_format", args[0])
	if err != nil {
		h.logger.Debug("date_format: unreadable date", "value", args[0], "err", err)
		return "", nil
	}
	if !ok {
		return "", nil
	}

	pattern := h.opts.DateTimePattern
	if t.date != nil {
		pattern = h.opts.DatePattern
	}
	if len(args) == 2 && args[1] != nil {
		pattern = toString(args[1])
	}

	p, err := datetime.CompilePattern(pattern)
	if err != nil {
		h.logger.Debug("date_format: bad pattern", "pattern", pattern, "err", err)
		return "", nil
	}
	if t.date == nil {
		return p.FormatDateTime(*t.dateTime), nil
	}
	s, err := p.FormatDate(*t.date)
	if err != nil {
		h.logger.Debug("date_format: pattern does not fit a date", "pattern", pattern, "err", err)
		return "", nil
	}
	return s, nil
}
