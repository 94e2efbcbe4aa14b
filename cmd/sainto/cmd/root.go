// Package cmd implements the sainto CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/bilegt6969/sainto-api/internal/api/client"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "sainto",
	Short: "Sneaker storefront backend",
	Long: "sainto serves the storefront API: marketplace and eBay product\n" +
		"search, category browsing, CMS-driven trending sections, and order\n" +
		"intake with Discord notifications.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(searchCommand())
	rootCmd.AddCommand(trendingCommand())
	rootCmd.AddCommand(orderCommand())
	rootCmd.AddCommand(versionCommand())
}

func initConfig() {
	viper.SetEnvPrefix("SAINTO")
	viper.AutomaticEnv()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Root exposes the root command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
