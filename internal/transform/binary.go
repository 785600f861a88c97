package transform

import (
	"github.com/leengari/edakit/internal/domain/schema"
)

// DefaultTruthy is the flag value encoded as 1 by CategorizeBinary
const DefaultTruthy = "SI"

// CategorizeBinary encodes each named column as an INT flag: 1 where the value
// equals truthy, 0 everywhere else (missing cells included).
// An empty truthy means DefaultTruthy. The source table is not modified.
func CategorizeBinary(t *schema.Table, columns []string, truthy string) (*schema.Table, error) {
	if truthy == "" {
		truthy = DefaultTruthy
	}
	if err := requireColumns(t, columns); err != nil {
		return nil, err
	}

	out := t.Copy()
	for _, name := range columns {
		out.Schema.GetColumn(name).Type = schema.ColumnTypeInt
		for _, row := range out.Rows {
			var flag int64
			if s, ok := row.Data[name].(string); ok && s == truthy {
				flag = 1
			}
			row.Set(name, flag)
		}
	}
	return out, nil
}

func requireColumns(t *schema.Table, columns []string) error {
	for _, name := range columns {
		if _, err := t.Column(name); err != nil {
			return err
		}
	}
	return nil
}
