package engine

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/leengari/edakit/internal/charts"
	"github.com/leengari/edakit/internal/config"
	"github.com/leengari/edakit/internal/consistency"
	"github.com/leengari/edakit/internal/domain/run"
	"github.com/leengari/edakit/internal/domain/schema"
	"github.com/leengari/edakit/internal/summary"
	"github.com/leengari/edakit/internal/transform"
)

// previewRows is how many rows the coercion operations hand back
const previewRows = 5

// Engine runs analysis operations against one loaded table.
// Coercions (Categorize, ToDate, OneHot) replace the engine's table with
// their result so later operations see the converted columns.
type Engine struct {
	mu        sync.RWMutex
	table     *schema.Table
	cfg       *config.Config
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine; a nil cfg means config.DefaultConfig()
func New(table *schema.Table, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Engine{
		table:     table,
		cfg:       cfg,
		observers: make([]Observer, 0),
	}
}

// Table returns the current table
func (e *Engine) Table() *schema.Table {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.table
}

func (e *Engine) setTable(t *schema.Table) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.table = t
}

// Check reports per-cell type consistency of the current table
func (e *Engine) Check() (*schema.Table, *consistency.Report) {
	r := e.begin("check", nil)

	var opts []consistency.Option
	if e.cfg.Check.Strict {
		opts = append(opts, consistency.WithStrictText(), consistency.WithDateLayout(e.cfg.Transform.DateLayout))
	}
	source := e.Table()
	result := consistency.CheckRows(source, opts...)
	report := consistency.Summarize(source, result)

	e.finish(r, map[string]interface{}{
		"rows":       report.Rows,
		"mismatches": len(report.Mismatches),
	}, nil)
	return result, report
}

// Categorize encodes flag columns as 1/0 and returns the first rows of those columns
func (e *Engine) Categorize(columns []string) (*schema.Table, error) {
	r := e.begin("categorize", columns)
	out, err := transform.CategorizeBinary(e.Table(), columns, e.cfg.Transform.Truthy)
	return e.preview(r, out, columns, err)
}

// ToDate parses date columns and returns the first rows of those columns
func (e *Engine) ToDate(columns []string) (*schema.Table, error) {
	r := e.begin("to_date", columns)
	out, err := transform.ColumnsToDate(e.Table(), columns, e.cfg.Transform.DateLayout)
	return e.preview(r, out, columns, err)
}

func (e *Engine) preview(r *run.Run, out *schema.Table, columns []string, err error) (*schema.Table, error) {
	if err != nil {
		e.finish(r, nil, err)
		return nil, err
	}
	e.setTable(out)
	head, err := out.Head(previewRows).Select(columns...)
	e.finish(r, columns, err)
	return head, err
}

// OneHot replaces a categorical column with dummy columns and returns the new table
func (e *Engine) OneHot(column string) (*schema.Table, error) {
	r := e.begin("onehot", column)
	out, err := transform.OneHot(e.Table(), column)
	if err != nil {
		e.finish(r, nil, err)
		return nil, err
	}
	e.setTable(out)
	e.finish(r, map[string]interface{}{"columns": len(out.Schema.Columns)}, nil)
	return out, nil
}

// UniqueValues prints the frequency and percentage of each value of a column
func (e *Engine) UniqueValues(w io.Writer, column string) error {
	r := e.begin("unique", column)
	err := summary.PrintUniqueValues(w, e.Table(), column)
	e.finish(r, column, err)
	return err
}

// ValueCounts prints the value counts of each column
func (e *Engine) ValueCounts(w io.Writer, columns []string) error {
	r := e.begin("value_counts", columns)
	err := summary.PrintValueCounts(w, e.Table(), columns)
	e.finish(r, columns, err)
	return err
}

// Describe summarises the numeric cells of a column
func (e *Engine) Describe(column string) (*summary.Description, error) {
	r := e.begin("describe", column)
	desc, err := summary.Describe(e.Table(), column)
	e.finish(r, column, err)
	return desc, err
}

// PlotKind names a chart family
type PlotKind string

const (
	PlotCategorical PlotKind = "categorical"
	PlotHistogram   PlotKind = "hist"
	PlotValueCounts PlotKind = "counts"
)

// Plot renders one chart per column with the configured plot options
func (e *Engine) Plot(kind PlotKind, columns []string, opts charts.Options) (*charts.Result, error) {
	r := e.begin("plot_"+string(kind), columns)

	var (
		result *charts.Result
		err    error
	)
	switch kind {
	case PlotCategorical:
		result, err = charts.CategoricalTopN(e.Table(), columns, opts)
	case PlotHistogram:
		result, err = charts.Histograms(e.Table(), columns, opts)
	case PlotValueCounts:
		result, err = charts.ValueCountBars(e.Table(), columns, opts)
	default:
		err = fmt.Errorf("unknown plot kind %q", kind)
	}

	if err != nil {
		e.finish(r, nil, err)
		return nil, err
	}
	e.finish(r, map[string]interface{}{"files": len(result.Files), "skipped": result.Skipped}, nil)
	return result, nil
}

func (e *Engine) begin(operation string, data interface{}) *run.Run {
	r := run.New(operation)
	e.notify(Event{Type: EventOpStart, RunID: r.ID, Operation: operation, Data: data})
	return r
}

func (e *Engine) finish(r *run.Run, data interface{}, err error) {
	r.Close()
	if err != nil {
		e.notify(Event{Type: EventOpError, RunID: r.ID, Operation: r.Operation, Duration: r.Duration(), Data: err.Error()})
		return
	}
	e.notify(Event{Type: EventOpEnd, RunID: r.ID, Operation: r.Operation, Duration: r.Duration(), Data: data})
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	e.mu.RLock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	for _, observer := range observers {
		observer.OnEvent(event)
	}
}
