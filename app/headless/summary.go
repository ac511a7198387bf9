package headless

import (
	"bytes"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/soocke/voronoi-bench/domain/stats"
)

// WriteSummary renders results as a table.
func WriteSummary(w io.Writer, results []Result) error {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Points", "Windows", "Samples", "Mean (ms)", "StdDev (ms)", "p50 (ms)", "p99 (ms)", "Max (ms)", "Status"})
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		table.Append([]string{
			strconv.Itoa(r.PointCount),
			strconv.Itoa(r.Cycles),
			strconv.FormatInt(r.Samples, 10),
			windowText(r, r.Last.MeanText),
			windowText(r, r.Last.StdDevText),
			fmtMs(r.P50, r.Samples),
			fmtMs(r.P99, r.Samples),
			fmtMs(r.Max, r.Samples),
			status,
		})
	}
	table.Render()
	_, err := io.Copy(w, &buf)
	return err
}

func windowText(r Result, text func() string) string {
	if r.Cycles == 0 {
		return "-"
	}
	return text()
}

func fmtMs(v float64, samples int64) string {
	if samples == 0 {
		return "-"
	}
	return stats.FormatPrecision(v, stats.DisplayPrecision)
}
