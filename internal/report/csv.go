package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"parabench/internal/core"
)

// WriteCSV writes the records as a CSV artifact. The column order matches
// the tables external plotting scripts already consume: the Result column
// appears only for kernels that report a computed value.
func WriteCSV(w io.Writer, spec core.BenchmarkSpec, records []core.MetricsRecord) error {
	cw := csv.NewWriter(w)

	withResult := spec.Accuracy != nil
	header := []string{"Method", "Threads", "Time"}
	if withResult {
		header = append(header, "Result")
	}
	header = append(header, "Speedup", "Efficiency")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Method,
			strconv.Itoa(r.Threads),
			formatFloat(r.Seconds),
		}
		if withResult {
			if r.Result != nil {
				row = append(row, formatFloat(*r.Result))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, formatFloat(r.Speedup), formatFloat(r.Efficiency))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
