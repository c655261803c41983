package model

import "time"

// Scan is one recorded analysis: where the image came from, what the
// detection backend reported and the computed size distribution. Thumbnail
// is a downscaled JPEG of the analyzed image.
type Scan struct {
	ID         int64
	CreatedAt  time.Time
	Source     string
	Status     string
	RiskScore  float64
	TotalCount int

	MinSizeNM float64
	AvgSizeNM float64
	MaxSizeNM float64
	MinCount  int
	AvgCount  int
	MaxCount  int

	Thumbnail []byte
}

// ScanFilter narrows and pages scan history listings.
type ScanFilter struct {
	Source string
	Status string
	Limit  int
	Offset int
}
