package dto

// Particle is the per-detection size row, indexed 1-based in detector order.
type Particle struct {
	Index    int     `json:"index"`
	WidthNM  float64 `json:"width_nm"`
	HeightNM float64 `json:"height_nm"`
	SizeNM   float64 `json:"size_nm"`
}

// SizeSummary mirrors the analyzer summary for JSON display.
type SizeSummary struct {
	MinSizeNM float64 `json:"min_size_nm"`
	AvgSizeNM float64 `json:"avg_size_nm"`
	MaxSizeNM float64 `json:"max_size_nm"`
	MinCount  int     `json:"min_count"`
	AvgCount  int     `json:"avg_count"`
	MaxCount  int     `json:"max_count"`
}

// Chart is the payload for the 3-bar size distribution chart.
type Chart struct {
	Title  string   `json:"title"`
	YAxis  string   `json:"y_axis"`
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// AnalysisResponse is the full display-ready result of one analyzed image.
// Summary and Chart are omitted when nothing was detected; Message then
// carries the informational "nothing found" text.
type AnalysisResponse struct {
	Source     string       `json:"source"`
	TotalCount int          `json:"total_count"`
	RiskScore  float64      `json:"risk_score"`
	Status     string       `json:"status"`
	Particles  []Particle   `json:"particles"`
	Summary    *SizeSummary `json:"summary,omitempty"`
	Chart      *Chart       `json:"chart,omitempty"`
	Message    string       `json:"message,omitempty"`
}

// ErrorResponse is the JSON error envelope for API failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
