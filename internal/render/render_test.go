package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microscan/internal/analyzer"
	"microscan/internal/dto"
)

func TestChartPayload(t *testing.T) {
	chart := Chart(&analyzer.Summary{MinCount: 1, AvgCount: 2, MaxCount: 3})

	assert.Equal(t, []string{"Min Size", "Average Size", "Max Size"}, chart.Labels)
	assert.Equal(t, []int{1, 2, 3}, chart.Counts)
	assert.Equal(t, "Count", chart.YAxis)
	require.NotEmpty(t, chart.Title)
}

func TestReportWithSummary(t *testing.T) {
	resp := &dto.AnalysisResponse{
		TotalCount: 2,
		RiskScore:  7.5,
		Status:     "LOW RISK",
		Particles: []dto.Particle{
			{Index: 1, WidthNM: 100, HeightNM: 100, SizeNM: 100},
			{Index: 2, WidthNM: 300, HeightNM: 300, SizeNM: 300},
		},
		Summary: &dto.SizeSummary{
			MinSizeNM: 100, AvgSizeNM: 200, MaxSizeNM: 300,
			MinCount: 1, AvgCount: 0, MaxCount: 1,
		},
		Chart: Chart(&analyzer.Summary{MinCount: 1, AvgCount: 0, MaxCount: 1}),
	}

	out := Report(resp)
	assert.Contains(t, out, "Total Microplastics Detected: 2")
	assert.Contains(t, out, "Risk Score: 7.5")
	assert.Contains(t, out, "Final Status: LOW RISK")
	assert.Contains(t, out, "Microplastic 1: Width = 100.0 nm | Height = 100.0 nm | Size = 100.0 nm")
	assert.Contains(t, out, "Min Size: 1")
	assert.Contains(t, out, "Average Size: 0")
}

func TestReportNothingDetected(t *testing.T) {
	resp := &dto.AnalysisResponse{
		Status:  "UNKNOWN",
		Message: "No microplastics detected.",
	}

	out := Report(resp)
	assert.Contains(t, out, "No microplastics detected.")
	assert.NotContains(t, out, "Size Category Counts")
}

func TestBarChartNegativeCounts(t *testing.T) {
	// The residual average bucket can go negative; the chart must render
	// the raw value instead of clamping or panicking.
	out := BarChart(&dto.Chart{
		Title:  "t",
		YAxis:  "Count",
		Labels: []string{"Min Size", "Average Size", "Max Size"},
		Counts: []int{3, -3, 3},
	})

	assert.Contains(t, out, "-3")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
}
