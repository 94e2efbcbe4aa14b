package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func trendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show trending sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := newClient().Trending(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching trending sections: %w", err)
			}

			if jsonOutput() {
				return printJSON(resp.Sections)
			}
			return printTrendingSections(resp.Sections)
		},
	}
}
