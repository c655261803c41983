package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"microscan/internal/config"
)

// Version is the application version.
const Version = "0.1.0"

// Cfg is the loaded configuration shared by subcommands.
var Cfg *config.Config

var rootCmd = &cobra.Command{
	Use:     "microscan",
	Short:   "Microplastic detection frontend",
	Long:    "Submits microscope images to a remote detection service and reports particle counts, sizes and risk.",
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; environment variables and defaults cover the rest
		_ = godotenv.Load()
		Cfg = config.Load()
	},
}

func Execute() {
	// Stop cleanly on Ctrl+C (SIGINT) or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
