package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mselser95/profitrade/internal/app"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Answer one question and exit",
	Long: `Answers a single question exactly as POST /chat/ask would and prints
the reply to stdout. Logs go to stderr.

Example:
  profitrade ask "what's the bitcoin price?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().Duration("timeout", 30*time.Second, "Overall deadline for the answer")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	timeout, _ := cmd.Flags().GetDuration("timeout")

	application, err := app.New(cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}
	defer application.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reply := application.Ask(ctx, strings.Join(args, " "))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), reply)
	if err != nil {
		return fmt.Errorf("write reply: %w", err)
	}

	return nil
}
