package cmd

import (
	"fmt"

	"github.com/mselser95/profitrade/internal/app"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat server",
	Long: `Starts the ProfiTrade server, which will:
1. Serve the chat page on / and the chat API on POST /chat/ask
2. Expose /health, /ready and /metrics
3. Cache CoinGecko responses in memory or in Redis (CACHE_BACKEND)

Use --telegram to also answer messages sent to the bot in TELEGRAM_BOT_TOKEN.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolP("telegram", "t", false, "Also run the Telegram bot")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Get flags
	withTelegram, _ := cmd.Flags().GetBool("telegram")

	application, err := app.New(cfg, logger, &app.Options{Telegram: withTelegram})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	err = application.Run()
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}

	return nil
}
