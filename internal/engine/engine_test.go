package engine

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/edakit/internal/charts"
	"github.com/leengari/edakit/internal/config"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/testutil"
)

func newTestEngine() (*Engine, *MockObserver) {
	eng := New(testutil.CreateSurveyTable(), nil)
	observer := &MockObserver{}
	eng.AddObserver(observer)
	return eng, observer
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

func TestEngine_Check(t *testing.T) {
	eng, observer := newTestEngine()

	result, report := eng.Check()

	testutil.AssertSameShape(t, result, eng.Table(), "check")
	assert.Equal(t, len(report.Mismatches), 2)
	assert.DeepEqual(t, eventTypes(observer.Events), []EventType{EventOpStart, EventOpEnd})
	assert.Equal(t, observer.Events[0].RunID, observer.Events[1].RunID)
	assert.Equal(t, observer.Events[1].Operation, "check")
}

func TestEngine_CheckStrict(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Check.Strict = true
	table := testutil.CreateColumnTable("label", schema.ColumnTypeText, "a", int64(1))
	eng := New(table, cfg)

	_, report := eng.Check()

	assert.Equal(t, len(report.Mismatches), 1)
	assert.Equal(t, report.Mismatches[0].RowIndex, 1)
}

func TestEngine_CategorizeReplacesTable(t *testing.T) {
	eng, observer := newTestEngine()

	head, err := eng.Categorize([]string{"smoker"})
	assert.NilError(t, err)

	assert.DeepEqual(t, head.Schema.ColumnNames(), []string{"smoker"})
	testutil.AssertRowCount(t, len(head.Rows), 5, "preview")
	assert.Equal(t, eng.Table().Schema.GetColumn("smoker").Type, schema.ColumnTypeInt)
	assert.Equal(t, eng.Table().Rows[1].Data["smoker"], int64(0))
	assert.DeepEqual(t, eventTypes(observer.Events), []EventType{EventOpStart, EventOpEnd})
}

func TestEngine_ErrorsAreObserved(t *testing.T) {
	eng, observer := newTestEngine()

	_, err := eng.ToDate([]string{"nope"})
	testutil.AssertError(t, err, "unknown column")

	assert.DeepEqual(t, eventTypes(observer.Events), []EventType{EventOpStart, EventOpError})
	assert.Assert(t, strings.Contains(observer.Events[1].Data.(string), "nope"))
	// table untouched
	assert.Equal(t, eng.Table().Schema.GetColumn("visit").Type, schema.ColumnTypeText)
}

func TestEngine_OneHotThenCounts(t *testing.T) {
	eng, _ := newTestEngine()

	out, err := eng.OneHot("region")
	assert.NilError(t, err)
	testutil.AssertColumnCount(t, len(out.Schema.Columns), 7, "one-hot")

	var buf bytes.Buffer
	assert.NilError(t, eng.ValueCounts(&buf, []string{"norte"}))
	assert.Assert(t, strings.Contains(buf.String(), "true   3"), buf.String())
}

func TestEngine_UniqueValuesAndDescribe(t *testing.T) {
	eng, observer := newTestEngine()

	var buf bytes.Buffer
	assert.NilError(t, eng.UniqueValues(&buf, "region"))
	assert.Assert(t, strings.Contains(buf.String(), "60.00%"))

	desc, err := eng.Describe("income")
	assert.NilError(t, err)
	assert.Equal(t, desc.Count, 3)

	assert.Equal(t, len(observer.Events), 4)
}

func TestEngine_Plot(t *testing.T) {
	eng, observer := newTestEngine()
	opts := charts.DefaultOptions()
	opts.OutDir = t.TempDir()

	result, err := eng.Plot(PlotHistogram, []string{"income"}, opts)
	assert.NilError(t, err)
	assert.Equal(t, len(result.Files), 1)

	_, err = eng.Plot(PlotKind("pie"), []string{"income"}, opts)
	assert.ErrorContains(t, err, "unknown plot kind")

	assert.Equal(t, observer.Events[1].Operation, "plot_hist")
	assert.Equal(t, observer.Events[3].Type, EventOpError)
}
