package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "profitrade",
	Short: "Crypto investment chatbot",
	Long: `ProfiTrade answers free-text crypto questions with live CoinGecko data
and canned investment guidance.

It serves a web chat page and a JSON API, can answer Telegram messages,
and can answer a single question from the command line.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
