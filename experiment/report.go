package experiment

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/tenet/statement"
)

// Summary collects the results of a batch of experiments.
type Summary struct {
	Results []*Result
}

// Render prints every result as a pair of tables.
func (r *Summary) Render() string {
	var sb strings.Builder
	for _, res := range r.Results {
		sb.WriteString(tensorTable(res).Render())
		sb.WriteString("\n")
		sb.WriteString(summaryTable(res).Render())
		sb.WriteString("\n\n")
	}

	return sb.String()
}

func tensorTable(res *Result) table.Writer {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Experiment %s", res.Name))
	t.AppendHeader(table.Row{
		"Tensor", "Kind", "Total", "Unique", "Reuse Factor",
		"Temporal", "Spatial", "Spatial@0", "Spatial@1",
	})

	for _, tr := range res.Tensors {
		t.AppendRow(table.Row{
			tr.Tensor,
			tr.Kind.String(),
			fmt.Sprintf("%.0f", tr.TotalVolume),
			fmt.Sprintf("%.2f", tr.UniqueVolume),
			fmt.Sprintf("%.2f", tr.ReuseFactor),
			fmt.Sprintf("%.2f", tr.TemporalReuse),
			fmt.Sprintf("%.2f", tr.SpatialReuse),
			fmt.Sprintf("%.2f", tr.SpatialReuseAt0),
			fmt.Sprintf("%.2f", tr.SpatialReuseAt1),
		})
	}

	return t
}

func summaryTable(res *Result) table.Writer {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Domain Size", fmt.Sprintf("%.0f", res.DomainSize)},
		{"Ingress Delay", fmt.Sprintf("%.2f", res.IngressDelay)},
		{"Egress Delay", fmt.Sprintf("%.2f", res.EgressDelay)},
		{"Computation Delay", fmt.Sprintf("%.2f", res.ComputationDelay)},
		{"Active PEs", fmt.Sprintf("%.0f", res.ActivePENum)},
		{"Average Active PEs", fmt.Sprintf("%.2f", res.AveragePENum)},
		{"Energy", fmt.Sprintf("%.0f", res.Energy)},
		{"Mapping Issues", len(res.Issues)},
	})

	return t
}

// WriteReport writes the results as plain text, one block per experiment.
func (r *Summary) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	for _, res := range r.Results {
		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "Experiment %s\n", res.Name)
		fmt.Fprintln(w, separator)

		for _, tr := range res.Tensors {
			label := "Input"
			if tr.Kind == statement.Write {
				label = "Output"
			}
			fmt.Fprintf(w, "%s Tensor: %s\n", label, tr.Tensor)
			fmt.Fprintf(w, " Unique volume: %.2f\n", tr.UniqueVolume)
			fmt.Fprintf(w, " temporal reuse: %f\n", tr.TemporalReuse)
			fmt.Fprintf(w, " spatial reuse total: %f\n", tr.SpatialReuse)
			fmt.Fprintf(w, " spatial reuse distance0: %f\n", tr.SpatialReuseAt0)
			fmt.Fprintf(w, " spatial reuse distance1: %f\n", tr.SpatialReuseAt1)
			fmt.Fprintf(w, " Total Volume : %.0f\n", tr.TotalVolume)
			fmt.Fprintf(w, " Domain size : %f\n", res.DomainSize)
		}

		fmt.Fprintf(w, "Delay: In: %.0f; Out: %.0f; Com: %.0f\n",
			res.IngressDelay, res.EgressDelay, res.ComputationDelay)
		fmt.Fprintf(w, "Active PE Num: %.0f; Average: %.2f\n", res.ActivePENum, res.AveragePENum)
		fmt.Fprintf(w, "Energy: %.0f\n", res.Energy)

		if len(res.Issues) > 0 {
			fmt.Fprintf(w, "Mapping issues (%d):\n", len(res.Issues))
			for _, is := range res.Issues {
				fmt.Fprintf(w, "  [%s] %s\n", is.Type, is.Message)
			}
		}

		fmt.Fprintln(w)
	}
}

// SaveReportToFile writes the plain text report to filename.
func (r *Summary) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
