// Command edakit runs exploratory data analysis helpers over a CSV, XLSX or
// table-directory input: type consistency checks, column coercions, frequency
// summaries and charts.
package main

import (
	"log/slog"
	"os"
)

func main() {
	a := &app{}
	err := newRootCmd(a).Execute()
	a.close()
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
