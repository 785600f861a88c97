package repl

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/edakit/internal/charts"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/engine"
	"github.com/leengari/edakit/internal/testutil"
)

func TestPrintTable(t *testing.T) {
	table := testutil.CreateSurveyTable().Head(2)

	var buf bytes.Buffer
	assert.NilError(t, PrintTable(&buf, table))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, len(lines), 5)
	assert.Assert(t, strings.HasPrefix(lines[0], "id (INT)"))
	assert.Assert(t, strings.Contains(lines[2], "1200.5"))
	assert.Equal(t, lines[4], "(2 rows)")
}

func TestPrintTable_Missing(t *testing.T) {
	table := testutil.CreateColumnTable("n", schema.ColumnTypeInt, int64(1), nil)

	var buf bytes.Buffer
	assert.NilError(t, PrintTable(&buf, table))
	assert.Assert(t, strings.Contains(buf.String(), "NULL"))
}

func TestStart_RunsCommandsUntilExit(t *testing.T) {
	eng := engine.New(testutil.CreateSurveyTable(), nil)
	opts := charts.DefaultOptions()
	opts.OutDir = t.TempDir()

	in := strings.NewReader("unique region\n\ncategorize smoker\nbogus\nexit\ndescribe income\n")
	var out bytes.Buffer
	Start(in, &out, eng, opts)

	got := out.String()
	assert.Assert(t, strings.Contains(got, "60.00%"))
	assert.Assert(t, strings.Contains(got, "smoker (INT)"))
	assert.Assert(t, strings.Contains(got, `unknown command "bogus"`))
	// nothing after exit runs
	assert.Assert(t, !strings.Contains(got, "mean"))
	assert.Equal(t, eng.Table().Schema.GetColumn("smoker").Type, schema.ColumnTypeInt)
}

func TestExecute_Check(t *testing.T) {
	eng := engine.New(testutil.CreateSurveyTable(), nil)

	var buf bytes.Buffer
	assert.NilError(t, Execute(&buf, eng, charts.DefaultOptions(), "check", nil))

	got := buf.String()
	assert.Assert(t, strings.Contains(got, "survey: 2 inconsistent cells"), got)
	assert.Assert(t, strings.Contains(got, "value=abc"), got)
}

func TestExecute_ArgumentErrors(t *testing.T) {
	eng := engine.New(testutil.CreateSurveyTable(), nil)
	opts := charts.DefaultOptions()

	tests := []struct {
		cmd  string
		args []string
		want string
	}{
		{"head", []string{"x"}, "invalid row count"},
		{"onehot", nil, "exactly one column"},
		{"counts", nil, "at least one column"},
		{"plot", []string{"hist"}, "usage"},
		{"describe", []string{"missing"}, "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			var buf bytes.Buffer
			err := Execute(&buf, eng, opts, tt.cmd, tt.args)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
