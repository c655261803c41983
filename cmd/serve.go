package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"microscan/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis web server",
	Run: func(cmd *cobra.Command, args []string) {
		application, err := app.New(Cfg)
		if err != nil {
			log.Fatalf("Failed to initialize server: %v", err)
		}

		if err := application.Run(cmd.Context()); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
