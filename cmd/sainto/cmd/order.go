package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/bilegt6969/sainto-api/internal/api/client"
)

func orderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order [file]",
		Short: "Submit an order from a JSON file",
		Long: "Reads an order payload from a JSON file and submits it to the\n" +
			"API server. Use \"-\" to read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd, args[0])
		},
	}
}

func runOrder(cmd *cobra.Command, path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading order file: %w", err)
	}

	var req apiclient.CreateOrderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("parsing order file: %w", err)
	}

	resp, err := newClient().CreateOrder(cmd.Context(), &req)
	if err != nil {
		return fmt.Errorf("submitting order: %w", err)
	}

	if jsonOutput() {
		return printJSON(resp)
	}

	fmt.Printf("order %s accepted (number %s)\n", resp.OrderID, resp.OrderNumber)
	return nil
}
