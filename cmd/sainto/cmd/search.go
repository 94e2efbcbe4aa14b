package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/bilegt6969/sainto-api/internal/api/client"
	"github.com/bilegt6969/sainto-api/pkg/session"
	domain "github.com/bilegt6969/sainto-api/pkg/types"
)

func searchCommand() *cobra.Command {
	var (
		source  string
		pages   int
		filters []string
	)

	searchCmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the storefront catalog",
		Long: "Runs a product search through the API server, paging through\n" +
			"results the same way the storefront does.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], source, pages, filters)
		},
	}
	searchCmd.Flags().StringVar(&source, "source", "new", "search source (new, preow)")
	searchCmd.Flags().IntVar(&pages, "pages", 1, "number of result pages to fetch")
	searchCmd.Flags().
		StringArrayVar(&filters, "filter", nil, "facet filter as facet=value (repeatable)")

	return searchCmd
}

func runSearch(cmd *cobra.Command, query, source string, pages int, filters []string) error {
	fetcher := apiclient.NewSessionFetcher(newClient())
	sess := session.New(fetcher)

	if source == string(domain.SourcePreOwned) {
		sess.SetSource(domain.SourcePreOwned)
	}

	// Query and source changes reset the filter selection, so apply
	// filters last.
	sess.SetQuery(query)
	for _, f := range filters {
		facet, value, ok := strings.Cut(f, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q: expected facet=value", f)
		}
		sess.ToggleFilter(facet, value)
	}

	if err := sess.Load(cmd.Context()); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for page := 2; page <= pages && sess.ShouldLoadMore(); page++ {
		issued, err := sess.LoadMore(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading page %d: %w", page, err)
		}
		if !issued {
			break
		}
	}

	products := sess.Products()
	if jsonOutput() {
		return printJSON(products)
	}

	if err := printProductTable(products); err != nil {
		return err
	}
	fmt.Printf("\n%d of %d results\n", len(products), sess.TotalCount())
	return nil
}
