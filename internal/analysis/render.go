package analysis

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	reportTitle = "JTH Monday.com Data Analysis Report"
	rule        = 60
	subRule     = 40
)

// Render writes the report as plain text.
func Render(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, reportTitle)
	fmt.Fprintln(bw, strings.Repeat("=", rule))

	for _, s := range r.Sheets {
		if err := renderSheet(bw, s); err != nil {
			return err
		}
	}
	renderSummary(bw, r)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderSheet(w *bufio.Writer, s SheetReport) error {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", rule))
	fmt.Fprintf(w, "Analyzing: %s\n", s.Label)
	fmt.Fprintln(w, strings.Repeat("=", rule))

	if s.Err != nil {
		fmt.Fprintf(w, "Error analyzing %s: %v\n", s.Label, s.Err)
		return nil
	}

	fmt.Fprintf(w, "Total Rows: %d\n", s.Rows)
	fmt.Fprintf(w, "Total Columns: %d\n", len(s.Columns))
	fmt.Fprintln(w, "\nColumn Names and Types:")
	fmt.Fprintln(w, strings.Repeat("-", subRule))

	for _, c := range s.Columns {
		fmt.Fprintf(w, "  - %s\n", c.Name)
		fmt.Fprintf(w, "    Type: %s, Non-null: %d/%d, Unique: %d\n", c.Kind, c.NonNull, c.Total, c.Distinct)
		if len(c.Samples) > 0 {
			fmt.Fprintf(w, "    Sample values: %s\n", quoteList(c.Samples))
		}
	}

	fmt.Fprintf(w, "\nFirst %d rows preview:\n", len(s.Preview))
	fmt.Fprintln(w, strings.Repeat("-", subRule))
	if err := renderPreview(w, s); err != nil {
		return err
	}

	if s.PrimaryKey != "" {
		fmt.Fprintf(w, "\nPrimary Key: %s\n", s.PrimaryKey)
	}
	if len(s.ForeignKeys) > 0 {
		fmt.Fprintf(w, "\nPotential Foreign Keys: %s\n", quoteList(s.ForeignKeys))
	}
	return nil
}

func renderPreview(w io.Writer, s SheetReport) error {
	if len(s.Preview) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c.Name
	}
	fmt.Fprintln(tw, "\t"+strings.Join(header, "\t"))
	for i, row := range s.Preview {
		fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

func renderSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", rule))
	fmt.Fprintln(w, "SCHEMA RELATIONSHIPS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", rule))

	fmt.Fprintln(w, "\nIdentified Entities:")
	for i, e := range r.Entities {
		fmt.Fprintf(w, "%d. %s - %s\n", i+1, e.Label, e.Description)
	}

	fmt.Fprintln(w, "\nWorkflow Stages Detected:")
	for _, wf := range r.Workflows {
		fmt.Fprintf(w, "  %s: %s\n", wf.Name, quoteList(wf.Stages))
	}
}

func quoteList(vals []string) string {
	quoted := make([]string, len(vals))
	for i, v := range vals {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
