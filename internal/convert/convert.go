// Package convert holds the value reinterpretation rules shared by the
// checker, the transforms and the loaders.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/leengari/edakit/internal/domain/schema"
)

// DefaultDateLayout is the compact year-month-day layout (%Y%m%d)
const DefaultDateLayout = "20060102"

// IsMissing reports whether v is the missing-value marker: nil or a float NaN
func IsMissing(v interface{}) bool {
	switch n := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(n)
	case float32:
		return math.IsNaN(float64(n))
	}
	return false
}

// ToNumeric reinterprets v as a number.
// The second return is false when reinterpretation fails or yields a missing value.
func ToNumeric(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case bool:
		if n {
			f = 1
		}
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// ParseDate reinterprets v as a date using layout.
// Integers are formatted in base 10 first so 20240105 parses like "20240105".
func ParseDate(v interface{}, layout string) (time.Time, bool) {
	if layout == "" {
		layout = DefaultDateLayout
	}
	var text string
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		text = strings.TrimSpace(d)
	case int:
		text = strconv.FormatInt(int64(d), 10)
	case int32:
		text = strconv.FormatInt(int64(d), 10)
	case int64:
		text = strconv.FormatInt(d, 10)
	case json.Number:
		text = d.String()
	case float64:
		if d != math.Trunc(d) || math.IsInf(d, 0) || math.IsNaN(d) {
			return time.Time{}, false
		}
		text = strconv.FormatInt(int64(d), 10)
	default:
		return time.Time{}, false
	}
	parsed, err := time.Parse(layout, text)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Render returns the text used to label a value in summaries and dummy column names
func Render(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// FromText converts raw text (CSV/XLSX cell, JSON scalar) to the declared column type.
// Empty text is missing (nil). Text that does not convert is returned unchanged so
// the consistency checker can report it.
func FromText(raw string, colType schema.ColumnType, dateLayout string) interface{} {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	switch colType {
	case schema.ColumnTypeInt:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
			return int64(f)
		}
	case schema.ColumnTypeFloat:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	case schema.ColumnTypeBool:
		if b, err := strconv.ParseBool(text); err == nil {
			return b
		}
	case schema.ColumnTypeDate:
		if d, ok := ParseDate(text, dateLayout); ok {
			return d
		}
		for _, layout := range []string{"2006-01-02", time.RFC3339} {
			if d, err := time.Parse(layout, text); err == nil {
				return d
			}
		}
	}
	return raw
}

// Normalize converts decoded JSON scalars to the Go kinds the helpers expect
// for a declared column type. Values that do not fit are returned unchanged.
func Normalize(v interface{}, colType schema.ColumnType, dateLayout string) interface{} {
	switch val := v.(type) {
	case json.Number:
		switch colType {
		case schema.ColumnTypeInt:
			if n, err := val.Int64(); err == nil {
				return n
			}
			if f, err := val.Float64(); err == nil && f == math.Trunc(f) {
				return int64(f)
			}
			if f, err := val.Float64(); err == nil {
				return f
			}
		case schema.ColumnTypeDate:
			if d, ok := ParseDate(val, dateLayout); ok {
				return d
			}
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case string:
		if colType == schema.ColumnTypeDate {
			return FromText(val, colType, dateLayout)
		}
	}
	return v
}
