package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"microscan/internal/source"
)

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Analyze every image in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("read directory: %w", err)
		}

		var images []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".jpg", ".jpeg", ".png":
				images = append(images, entry.Name())
			}
		}
		if len(images) == 0 {
			return fmt.Errorf("no JPEG or PNG images in %s", dir)
		}

		bar := progressbar.NewOptions(len(images),
			progressbar.OptionSetDescription("Analyzing"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)

		manager := newCLIManager()

		totalParticles := 0
		failures := 0
		for _, name := range images {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				fmt.Fprintf(os.Stderr, "\n%s: %v\n", name, err)
				failures++
				bar.Add(1)
				continue
			}

			resp, err := manager.AnalyzeSource(cmd.Context(), source.NewUpload(data), "upload")
			if err != nil {
				fmt.Fprintf(os.Stderr, "\n%s: %v\n", name, err)
				failures++
				bar.Add(1)
				continue
			}

			totalParticles += resp.TotalCount
			fmt.Fprintf(os.Stderr, "\n%s: %d particles, status %s, risk %g\n",
				name, resp.TotalCount, resp.Status, resp.RiskScore)
			bar.Add(1)
		}
		bar.Finish()

		fmt.Fprintf(os.Stderr, "\nAnalyzed %d images (%d failed), %d particles total.\n",
			len(images)-failures, failures, totalParticles)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
