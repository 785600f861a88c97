package transform

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/leengari/edakit/internal/convert"
	"github.com/leengari/edakit/internal/domain/errors"
	"github.com/leengari/edakit/internal/domain/schema"
)

// category is one distinct non-missing value of the encoded column
type category struct {
	key   string
	value interface{}
	name  string
}

// OneHot replaces a categorical column with one BOOL column per distinct
// non-missing value, appended after the remaining columns. Categories are
// ordered by value: numerically when every value is a number, by time when
// every value is a date, by rendered text otherwise. Dummy columns are named
// by the rendered value; a row whose value is missing is false in every
// dummy column. Two values rendering to the same name, or a name already
// used by another column, is a duplicate_column error.
func OneHot(t *schema.Table, column string) (*schema.Table, error) {
	if _, err := t.Column(column); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []category
	for _, row := range t.Rows {
		val, ok := row.Get(column)
		if !ok || convert.IsMissing(val) {
			continue
		}
		key := categoryKey(val)
		if !seen[key] {
			seen[key] = true
			categories = append(categories, category{key: key, value: val, name: convert.Render(val)})
		}
	}
	sortCategories(categories)

	out, err := t.Drop(column)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(categories))
	for _, c := range categories {
		if names[c.name] || out.Schema.GetColumn(c.name) != nil {
			return nil, errors.NewDuplicateColumn(t.Name, c.name)
		}
		names[c.name] = true
		out.Schema.Columns = append(out.Schema.Columns, schema.Column{Name: c.name, Type: schema.ColumnTypeBool})
	}

	for i, row := range out.Rows {
		var key string
		val, ok := t.Rows[i].Get(column)
		present := ok && !convert.IsMissing(val)
		if present {
			key = categoryKey(val)
		}
		for _, c := range categories {
			row.Set(c.name, present && key == c.key)
		}
	}
	return out, nil
}

// categoryKey identifies a value by kind and content, so 1 and "1" differ
// while int64(1) and 1.0 are the same number
func categoryKey(v interface{}) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case bool:
		return "b:" + strconv.FormatBool(val)
	case time.Time:
		return "t:" + val.UTC().Format(time.RFC3339Nano)
	}
	if f, ok := convert.ToNumeric(v); ok {
		return "n:" + strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("v:%T:%s", v, convert.Render(v))
}

func sortCategories(categories []category) {
	allNumbers, allDates := true, true
	for _, c := range categories {
		switch c.value.(type) {
		case string, bool:
			allNumbers, allDates = false, false
		case time.Time:
			allNumbers = false
		default:
			allDates = false
			if _, ok := convert.ToNumeric(c.value); !ok {
				allNumbers = false
			}
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		switch {
		case allNumbers:
			a, _ := convert.ToNumeric(categories[i].value)
			b, _ := convert.ToNumeric(categories[j].value)
			return a < b
		case allDates:
			return categories[i].value.(time.Time).Before(categories[j].value.(time.Time))
		default:
			return categories[i].name < categories[j].name
		}
	})
}
