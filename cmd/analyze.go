package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"microscan/internal/analyzer"
	"microscan/internal/detector"
	"microscan/internal/logger"
	"microscan/internal/render"
	"microscan/internal/services"
	"microscan/internal/source"
)

var analyzeOpts struct {
	InputPath string
	Example   string
	Camera    bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a single image and print the size report",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, name, err := selectSource()
		if err != nil {
			return err
		}

		manager := newCLIManager()
		resp, err := manager.AnalyzeSource(cmd.Context(), src, name)
		if err != nil {
			return err
		}

		fmt.Print(render.Report(resp))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOpts.InputPath, "input", "i", "", "Path to a JPEG or PNG image")
	analyzeCmd.Flags().StringVarP(&analyzeOpts.Example, "example", "e", "", "Name of a bundled example image")
	analyzeCmd.Flags().BoolVarP(&analyzeOpts.Camera, "camera", "c", false, "Capture the image from the configured camera")

	rootCmd.AddCommand(analyzeCmd)
}

// selectSource maps the mutually exclusive input flags to an image source.
func selectSource() (source.Source, string, error) {
	set := 0
	if analyzeOpts.InputPath != "" {
		set++
	}
	if analyzeOpts.Example != "" {
		set++
	}
	if analyzeOpts.Camera {
		set++
	}
	if set != 1 {
		return nil, "", fmt.Errorf("exactly one of --input, --example or --camera is required")
	}

	switch {
	case analyzeOpts.InputPath != "":
		data, err := os.ReadFile(analyzeOpts.InputPath)
		if err != nil {
			return nil, "", fmt.Errorf("read input image: %w", err)
		}
		return source.NewUpload(data), "upload", nil
	case analyzeOpts.Example != "":
		return source.NewExample(Cfg.ExampleDirectory, analyzeOpts.Example), "example", nil
	default:
		return source.NewCamera(Cfg.CameraDevice), "camera", nil
	}
}

// newCLIManager wires the analysis flow without history recording.
func newCLIManager() *services.Manager {
	det := detector.NewClient(Cfg.APIURL, time.Duration(Cfg.RequestTimeout)*time.Second)
	an := analyzer.New(analyzer.Config{
		PixelToNM:     Cfg.PixelToNM,
		RiskThreshold: Cfg.RiskThreshold,
	})
	return services.NewManager(det, an, nil, Cfg, logger.New(Cfg.LogDirectory))
}
