package builtin

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/sqlhelpers/internal/testutil"
	"github.com/kasuganosora/sqlhelpers/pkg/config"
	"github.com/kasuganosora/sqlhelpers/pkg/datetime"
)

func TestDateNow(t *testing.T) {
	defer datetime.ResetClock()
	datetime.SetClock(datetime.NewFixedClock(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)))

	got, err := newTestRegistry(t).Call("now")
	require.NoError(t, err)
	assert.Equal(t, datetime.NewDateTime(2024, 2, 3, 4, 5, 6, 0), got)
}

func TestDateAdd(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name string
		args []interface{}
		want interface{}
	}{
		{"date", []interface{}{datetime.NewDate(2024, 1, 1), 9}, datetime.NewDate(2024, 1, 10)},
		{"negative", []interface{}{datetime.NewDate(2024, 1, 1), -1}, datetime.NewDate(2023, 12, 31)},
		{"date string", []interface{}{"2024-02-28", 1}, datetime.NewDate(2024, 2, 29)},
		{"datetime", []interface{}{datetime.NewDateTime(2024, 1, 1, 10, 30, 0, 0), 2}, datetime.NewDateTime(2024, 1, 3, 10, 30, 0, 0)},
		{"datetime string", []interface{}{"2024-01-01 10:30:00", "2"}, datetime.NewDateTime(2024, 1, 3, 10, 30, 0, 0)},
		{"time.Time", []interface{}{time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), int64(1)}, datetime.NewDateTime(2024, 1, 2, 8, 0, 0, 0)},
		{"absent date", []interface{}{nil, 3}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Call("date_add", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := registry.Call("date_add", datetime.NewDate(2024, 1, 1), nil)
	assert.True(t, errors.Is(err, ErrArgumentType))

	_, err = registry.Call("date_add", 42, 1)
	assert.True(t, errors.Is(err, ErrArgumentType))
}

func TestDateDiff(t *testing.T) {
	registry := newTestRegistry(t)

	tests := []struct {
		name string
		args []interface{}
		want interface{}
	}{
		{"strings", []interface{}{"2024-01-01", "2024-01-10"}, int64(9)},
		{"negative", []interface{}{datetime.NewDate(2024, 1, 10), datetime.NewDate(2024, 1, 1)}, int64(-9)},
		{"datetimes truncate", []interface{}{
			datetime.NewDateTime(2024, 1, 1, 12, 0, 0, 0),
			datetime.NewDateTime(2024, 1, 3, 11, 0, 0, 0),
		}, int64(1)},
		{"mixed compares dates", []interface{}{
			datetime.NewDate(2024, 1, 1),
			datetime.NewDateTime(2024, 1, 3, 11, 0, 0, 0),
		}, int64(2)},
		{"fractions of a second count", []interface{}{
			datetime.NewDateTime(2024, 1, 1, 0, 0, 0, 5e8),
			datetime.NewDateTime(2024, 1, 2, 0, 0, 0, 4e8),
		}, int64(0)},
		{"absent", []interface{}{nil, "2024-01-10"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Call("date_diff", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFormat(t *testing.T) {
	registry := newTestRegistry(t)
	d := datetime.NewDate(2024, 3, 7)
	var nilDate *datetime.Date

	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"default date pattern", []interface{}{d}, "2024-03-07"},
		{"default datetime pattern", []interface{}{datetime.NewDateTime(2024, 3, 7, 9, 5, 0, 0)}, "2024-03-07 09:05"},
		{"explicit pattern", []interface{}{d, "dd/MM/yyyy"}, "07/03/2024"},
		{"pointer", []interface{}{&d, "yyyy"}, "2024"},
		{"string date", []interface{}{"2024-03-07", "MMM d"}, "Mar 7"},
		{"null pattern uses default", []interface{}{d, nil}, "2024-03-07"},
		{"absent", []interface{}{nil}, ""},
		{"typed absent", []interface{}{nilDate, "yyyy"}, ""},
		{"bad pattern", []interface{}{d, "bad-pattern"}, ""},
		{"time field on date", []interface{}{d, "HH:mm"}, ""},
		{"unreadable date", []interface{}{"someday"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Call("date_format", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFormatLogsSwallowedErrors(t *testing.T) {
	logger, logs := testutil.NewBufferLogger()
	registry := NewRegistry(config.DefaultOptions(), logger)

	got, err := registry.Call("date_format", datetime.NewDate(2024, 1, 1), "bad-pattern")
	require.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Contains(t, logs.String(), "date_format: bad pattern")
}

func TestDateFormatConfiguredPatterns(t *testing.T) {
	opts := config.DefaultOptions()
	opts.DatePattern = "dd.MM.yyyy"
	opts.DateTimePattern = "dd.MM.yyyy HH:mm:ss"
	registry := NewRegistry(opts, nil)

	got, err := registry.Call("date_format", datetime.NewDate(2024, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, "02.01.2024", got)

	got, err = registry.Call("date_format", datetime.NewDateTime(2024, 1, 2, 3, 4, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, "02.01.2024 03:04:05", got)
}
