package convert

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"gotest.tools/v3/assert"

	"github.com/leengari/edakit/internal/domain/schema"
)

func TestToNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"int64", int64(7), 7, true},
		{"int", 3, 3, true},
		{"float", 2.5, 2.5, true},
		{"bool true", true, 1, true},
		{"bool false", false, 0, true},
		{"numeric string", " 42.5 ", 42.5, true},
		{"infinity string", "inf", math.Inf(1), true},
		{"json number", json.Number("12"), 12, true},
		{"word", "abc", 0, false},
		{"empty string", "", 0, false},
		{"nan string", "NaN", 0, false},
		{"nan float", math.NaN(), 0, false},
		{"nil", nil, 0, false},
		{"time", time.Now(), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToNumeric(tt.value)
			assert.Equal(t, ok, tt.ok)
			if tt.ok {
				assert.Equal(t, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	got, ok := ParseDate("20240105", "")
	assert.Assert(t, ok)
	assert.Assert(t, got.Equal(want))

	got, ok = ParseDate(int64(20240105), DefaultDateLayout)
	assert.Assert(t, ok)
	assert.Assert(t, got.Equal(want))

	_, ok = ParseDate("20240231", DefaultDateLayout)
	assert.Assert(t, !ok, "February 31st must not parse")

	_, ok = ParseDate(true, DefaultDateLayout)
	assert.Assert(t, !ok)
}

func TestRender(t *testing.T) {
	assert.Equal(t, Render("SI"), "SI")
	assert.Equal(t, Render(int64(3)), "3")
	assert.Equal(t, Render(2.50), "2.5")
	assert.Equal(t, Render(true), "true")
	assert.Equal(t, Render(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)), "2024-01-05")
}

func TestFromText(t *testing.T) {
	assert.Equal(t, FromText("12", schema.ColumnTypeInt, ""), int64(12))
	assert.Equal(t, FromText("12.0", schema.ColumnTypeInt, ""), int64(12))
	assert.Equal(t, FromText("12.5", schema.ColumnTypeInt, ""), "12.5")
	assert.Equal(t, FromText("1.5", schema.ColumnTypeFloat, ""), 1.5)
	assert.Equal(t, FromText("abc", schema.ColumnTypeFloat, ""), "abc")
	assert.Equal(t, FromText("true", schema.ColumnTypeBool, ""), true)
	assert.Equal(t, FromText("  ", schema.ColumnTypeText, ""), nil)
	assert.Equal(t, FromText("SI", schema.ColumnTypeText, ""), "SI")

	d, ok := FromText("2024-01-05", schema.ColumnTypeDate, "").(time.Time)
	assert.Assert(t, ok)
	assert.Equal(t, d.Day(), 5)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalize(json.Number("4"), schema.ColumnTypeInt, ""), int64(4))
	assert.Equal(t, Normalize(json.Number("4.5"), schema.ColumnTypeInt, ""), 4.5)
	assert.Equal(t, Normalize(json.Number("4.5"), schema.ColumnTypeFloat, ""), 4.5)
	assert.Equal(t, Normalize("abc", schema.ColumnTypeFloat, ""), "abc")
	assert.Equal(t, Normalize(nil, schema.ColumnTypeFloat, ""), nil)
}
