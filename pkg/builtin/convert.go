package builtin

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/kasuganosora/sqlhelpers/pkg/datetime"
)

// toStringPtr converts an argument to a nullable string. nil stays absent,
// scalars are rendered the way SQL CONCAT renders them.
func toStringPtr(arg interface{}) *string {
	if arg == nil {
		return nil
	}
	if p, ok := arg.(*string); ok {
		return p
	}
	s := toString(arg)
	return &s
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case datetime.Date:
		return val.String()
	case datetime.DateTime:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toInt64Ptr converts an argument to a nullable integer.
func toInt64Ptr(fn string, arg interface{}) (*int64, error) {
	if arg == nil {
		return nil, nil
	}
	var n int64
	switch v := arg.(type) {
	case int:
		n = int64(v)
	case int8:
		n = int64(v)
	case int16:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		n = int64(v)
	case uint8:
		n = int64(v)
	case uint16:
		n = int64(v)
	case uint32:
		n = int64(v)
	case uint64:
		n = int64(v)
	case float32:
		n = int64(v)
	case float64:
		n = int64(v)
	case *int64:
		return v, nil
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrArgumentType, "%s(): cannot convert %q to integer", fn, v)
		}
		n = parsed
	default:
		return nil, errors.Wrapf(ErrArgumentType, "%s(): cannot convert %T to integer", fn, arg)
	}
	return &n, nil
}

func toInt(fn string, arg interface{}) (int, error) {
	p, err := toInt64Ptr(fn, arg)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, errors.Wrapf(ErrArgumentType, "%s(): integer argument cannot be NULL", fn)
	}
	return int(*p), nil
}

// asList reports whether arg is a list value and returns its elements. nil
// counts as an absent list.
func asList(arg interface{}) ([]interface{}, bool) {
	switch v := arg.(type) {
	case nil:
		return nil, true
	case []interface{}:
		return v, true
	case string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(arg)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = unwrapPointer(rv.Index(i).Interface())
	}
	return out, true
}

// unwrapPointer turns typed nullable elements such as *string into either nil
// or their value.
func unwrapPointer(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

// isNullValue is the dynamic form of the isNull overloads.
func isNullValue(arg interface{}) bool {
	switch v := arg.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.IsNil() || rv.Len() == 0
	case reflect.Array:
		return rv.Len() == 0
	}
	return false
}

// temporal is a parsed date argument; exactly one of date and dateTime is set.
type temporal struct {
	date     *datetime.Date
	dateTime *datetime.DateTime
}

func (t temporal) asDateTime() datetime.DateTime {
	if t.date != nil {
		return t.date.AtStartOfDay()
	}
	return *t.dateTime
}

func (t temporal) asDate() datetime.Date {
	if t.date != nil {
		return *t.date
	}
	return t.dateTime.Date()
}

// toTemporal converts an argument to a date or date-time. The bool result is
// false for an absent argument.
func toTemporal(fn string, arg interface{}) (temporal, bool, error) {
	switch v := arg.(type) {
	case nil:
		return temporal{}, false, nil
	case datetime.Date:
		return temporal{date: &v}, true, nil
	case *datetime.Date:
		if v == nil {
			return temporal{}, false, nil
		}
		return temporal{date: v}, true, nil
	case datetime.DateTime:
		return temporal{dateTime: &v}, true, nil
	case *datetime.DateTime:
		if v == nil {
			return temporal{}, false, nil
		}
		return temporal{dateTime: v}, true, nil
	case time.Time:
		dt := datetime.DateTimeOf(v)
		return temporal{dateTime: &dt}, true, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return temporal{}, false, nil
		}
		if len(s) == len("2006-01-02") {
			d, err := datetime.ParseDate(s)
			if err != nil {
				return temporal{}, false, errors.Wrapf(ErrArgumentType, "%s(): %v", fn, err)
			}
			return temporal{date: &d}, true, nil
		}
		dt, err := datetime.ParseDateTime(s)
		if err != nil {
			return temporal{}, false, errors.Wrapf(ErrArgumentType, "%s(): %v", fn, err)
		}
		return temporal{dateTime: &dt}, true, nil
	default:
		return temporal{}, false, errors.Wrapf(ErrArgumentType, "%s(): cannot convert %T to date", fn, arg)
	}
}
