package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"microscan/internal/source"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List the bundled example images",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := source.ListExamples(Cfg.ExampleDirectory)
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}
