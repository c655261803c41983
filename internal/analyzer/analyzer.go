// Package analyzer turns detection boxes into physical particle sizes and a
// three-bucket size distribution (min / average / max).
package analyzer

import (
	"math"

	"microscan/internal/detector"
)

const (
	// minThresholdFactor marks sizes within 10% above the smallest particle.
	minThresholdFactor = 1.10
	// maxThresholdFactor marks sizes within 10% below the largest particle.
	maxThresholdFactor = 0.90
)

// Config holds the analysis constants. RiskThreshold has no consumer in the
// current flow; the risk verdict comes from the detection backend.
type Config struct {
	PixelToNM     float64
	RiskThreshold float64
}

// Analyzer computes per-particle sizes and summary statistics. It is pure:
// no state beyond the construction-time config, safe for concurrent use.
type Analyzer struct {
	pixelToNM     float64
	riskThreshold float64
}

func New(cfg Config) *Analyzer {
	return &Analyzer{
		pixelToNM:     cfg.PixelToNM,
		riskThreshold: cfg.RiskThreshold,
	}
}

// Sample is the derived physical size of one detection box, in input order.
// Index is 1-based for display.
type Sample struct {
	Index    int
	WidthNM  float64
	HeightNM float64
	SizeNM   float64
}

// Summary aggregates the sample sizes into min/avg/max statistics and bucket
// counts. AvgCount is a residual (total minus the two tallies) and can go
// negative when the size range is so narrow that the min and max thresholds
// cross and particles tally into both buckets. That mirrors the upstream
// classification exactly and must not be clamped.
type Summary struct {
	MinSize float64
	MaxSize float64
	AvgSize float64

	MinCount int
	AvgCount int
	MaxCount int
}

// Analyze converts every box to a size sample and, when at least one box is
// present, classifies the samples into size buckets. A nil summary means
// nothing was detected; callers render that as an informational state, not
// an error. totalCount is the detector-reported count and seeds the residual
// average bucket even if it disagrees with len(boxes).
func (a *Analyzer) Analyze(boxes []detector.Box, totalCount int) ([]Sample, *Summary) {
	samples := make([]Sample, 0, len(boxes))
	for i, box := range boxes {
		widthNM := box.Width * a.pixelToNM
		heightNM := box.Height * a.pixelToNM
		samples = append(samples, Sample{
			Index:    i + 1,
			WidthNM:  widthNM,
			HeightNM: heightNM,
			SizeNM:   math.Sqrt(widthNM * heightNM),
		})
	}

	if len(samples) == 0 {
		return samples, nil
	}

	summary := &Summary{
		MinSize: samples[0].SizeNM,
		MaxSize: samples[0].SizeNM,
	}

	var sum float64
	for _, s := range samples {
		sum += s.SizeNM
		if s.SizeNM < summary.MinSize {
			summary.MinSize = s.SizeNM
		}
		if s.SizeNM > summary.MaxSize {
			summary.MaxSize = s.SizeNM
		}
	}
	summary.AvgSize = sum / float64(len(samples))

	minThresh := summary.MinSize * minThresholdFactor
	maxThresh := summary.MaxSize * maxThresholdFactor

	// Independent tallies, not a partition: a sample can satisfy both
	// predicates when minThresh >= maxThresh.
	for _, s := range samples {
		if s.SizeNM <= minThresh {
			summary.MinCount++
		}
		if s.SizeNM >= maxThresh {
			summary.MaxCount++
		}
	}
	summary.AvgCount = totalCount - summary.MinCount - summary.MaxCount

	return samples, summary
}
