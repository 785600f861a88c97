package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/fs"

	"github.com/leengari/edakit/internal/storage"
)

const surveyCSV = `id,region,smoker,income,visit
1,norte,SI,1200.5,20240105
2,sur,NO,abc,20240231
3,norte,SI,980,20231120
4,centro,NO,,20220714
`

const surveyMeta = `{"name": "survey", "columns": [
  {"name": "id", "type": "INT"},
  {"name": "region", "type": "CATEGORY"},
  {"name": "smoker", "type": "TEXT"},
  {"name": "income", "type": "FLOAT"},
  {"name": "visit", "type": "TEXT"}
]}`

func newFixture(t *testing.T) *fs.Dir {
	t.Helper()
	return fs.NewDir(t, "edakit",
		fs.WithFile("survey.csv", surveyCSV),
		fs.WithFile("meta.json", surveyMeta),
	)
}

// run executes the CLI with a config path that does not exist, so defaults apply
func run(t *testing.T, dir *fs.Dir, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	root := newRootCmd(a)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{
		"--config", dir.Join("edakit.yaml"),
		"--input", dir.Join("survey.csv"),
		"--schema", dir.Join("meta.json"),
	}, args...))
	err := root.Execute()
	a.close()
	return out.String(), err
}

func TestCheck_ReportsMismatches(t *testing.T) {
	dir := newFixture(t)

	out, err := run(t, dir, "check")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "survey: 2 inconsistent cells"), out)
	assert.Assert(t, strings.Contains(out, "value=abc"), out)
}

func TestCheck_Export(t *testing.T) {
	dir := newFixture(t)
	export := dir.Join("report.xlsx")

	out, err := run(t, dir, "check", "--export", export, "--freq", "region")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "exported 3 sheets"), out)

	table, err := storage.LoadXLSX(export, "survey_check", nil, "")
	assert.NilError(t, err)
	assert.Equal(t, len(table.Rows), 4)
	assert.Equal(t, table.Rows[1].Data["income"], false)
}

func TestCategorize(t *testing.T) {
	dir := newFixture(t)

	out, err := run(t, dir, "categorize", "smoker", "--truthy", "NO")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "smoker (INT)"), out)
	assert.Assert(t, strings.Contains(out, "(4 rows)"), out)
}

func TestOneHot_Save(t *testing.T) {
	dir := newFixture(t)
	saved := filepath.Join(dir.Path(), "encoded")

	_, err := run(t, dir, "onehot", "region", "--save", saved)
	assert.NilError(t, err)

	table, err := storage.LoadTable(saved, "")
	assert.NilError(t, err)
	assert.DeepEqual(t, table.Schema.ColumnNames(), []string{"id", "smoker", "income", "visit", "centro", "norte", "sur"})
}

func TestUnique(t *testing.T) {
	dir := newFixture(t)

	out, err := run(t, dir, "unique", "region")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "50.00%"), out)
}

func TestPlot(t *testing.T) {
	dir := newFixture(t)
	plots := dir.Join("plots")

	out, err := run(t, dir, "plot", "counts", "region", "--out", plots)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "wrote"), out)

	entries, err := os.ReadDir(plots)
	assert.NilError(t, err)
	assert.Equal(t, len(entries), 1)
}

func TestErrors(t *testing.T) {
	dir := newFixture(t)

	_, err := run(t, dir, "describe", "nope")
	assert.ErrorContains(t, err, "not found")

	_, err = run(t, dir, "plot", "pie", "region")
	assert.ErrorContains(t, err, "unknown plot kind")

	_, err = run(t, dir, "unique")
	assert.ErrorContains(t, err, "accepts 1 arg")
}

func TestMissingInput(t *testing.T) {
	root := newRootCmd(&app{})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "check"})

	err := root.Execute()
	assert.ErrorContains(t, err, "--input is required")
}
