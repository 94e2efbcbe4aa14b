// Package main is the entry point for the sainto storefront API.
package main

import (
	"os"

	"github.com/bilegt6969/sainto-api/cmd/sainto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
