package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("NAME\tBRAND\tPRICE\tCONDITION\tSOURCE\n")
	for i := range products {
		tw.writef("%s\t%s\t%.0f %s\t%s\t%s\n",
			products[i].Name,
			products[i].Brand,
			products[i].Price,
			products[i].Currency,
			products[i].Condition,
			products[i].Source,
		)
	}
	return tw.finish()
}

func printTrendingSections(sections []domain.TrendingSection) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SECTION\tKEYWORD\tPRODUCTS\n")
	for i := range sections {
		tw.writef("%s\t%s\t%d\n",
			sections[i].Title,
			sections[i].Keyword,
			len(sections[i].Products),
		)
	}
	return tw.finish()
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
