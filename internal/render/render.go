// Package render turns analysis results into display forms: the chart
// payload for the web page and plain text for the CLI.
package render

import (
	"fmt"
	"strings"

	"microscan/internal/analyzer"
	"microscan/internal/dto"
)

const (
	chartTitle = "Microplastic Size Distribution (Count-Based)"
	chartYAxis = "Count"
	barWidth   = 40
)

var chartLabels = []string{"Min Size", "Average Size", "Max Size"}

// Chart builds the 3-bar categorical chart payload from a summary.
func Chart(summary *analyzer.Summary) *dto.Chart {
	return &dto.Chart{
		Title:  chartTitle,
		YAxis:  chartYAxis,
		Labels: chartLabels,
		Counts: []int{summary.MinCount, summary.AvgCount, summary.MaxCount},
	}
}

// Report formats one analysis result as terminal text, mirroring the web
// page sections: detection summary, per-particle sizes, bucket counts and
// the bar chart.
func Report(resp *dto.AnalysisResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Detection Summary\n")
	fmt.Fprintf(&b, "  Total Microplastics Detected: %d\n", resp.TotalCount)
	fmt.Fprintf(&b, "  Risk Score: %g\n", resp.RiskScore)
	fmt.Fprintf(&b, "  Final Status: %s\n", resp.Status)

	if resp.Summary == nil {
		fmt.Fprintf(&b, "\n%s\n", resp.Message)
		return b.String()
	}

	fmt.Fprintf(&b, "\nIndividual Microplastic Sizes (nm)\n")
	for _, p := range resp.Particles {
		fmt.Fprintf(&b, "  Microplastic %d: Width = %.1f nm | Height = %.1f nm | Size = %.1f nm\n",
			p.Index, p.WidthNM, p.HeightNM, p.SizeNM)
	}

	s := resp.Summary
	fmt.Fprintf(&b, "\nSize Statistics\n")
	fmt.Fprintf(&b, "  Min: %.1f nm | Avg: %.1f nm | Max: %.1f nm\n", s.MinSizeNM, s.AvgSizeNM, s.MaxSizeNM)

	fmt.Fprintf(&b, "\nSize Category Counts\n")
	fmt.Fprintf(&b, "  Min Size: %d\n", s.MinCount)
	fmt.Fprintf(&b, "  Average Size: %d\n", s.AvgCount)
	fmt.Fprintf(&b, "  Max Size: %d\n", s.MaxCount)

	fmt.Fprintf(&b, "\n%s\n", BarChart(resp.Chart))

	return b.String()
}

// BarChart renders the chart payload as horizontal ASCII bars, each
// annotated with its count. Negative counts render as an empty bar with the
// raw value still shown.
func BarChart(chart *dto.Chart) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (y: %s)\n", chart.Title, chart.YAxis)

	max := 0
	for _, c := range chart.Counts {
		if c > max {
			max = c
		}
	}

	for i, label := range chart.Labels {
		count := 0
		if i < len(chart.Counts) {
			count = chart.Counts[i]
		}
		bar := ""
		if max > 0 && count > 0 {
			bar = strings.Repeat("#", count*barWidth/max)
		}
		fmt.Fprintf(&b, "  %-13s %s %d\n", label, bar, count)
	}

	return b.String()
}
