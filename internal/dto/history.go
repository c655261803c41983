package dto

// HistoryEntry is one recorded scan in the history listing.
type HistoryEntry struct {
	ID         int64   `json:"id"`
	CreatedAt  string  `json:"created_at"`
	Source     string  `json:"source"`
	Status     string  `json:"status"`
	RiskScore  float64 `json:"risk_score"`
	TotalCount int     `json:"total_count"`
	MinSizeNM  float64 `json:"min_size_nm"`
	AvgSizeNM  float64 `json:"avg_size_nm"`
	MaxSizeNM  float64 `json:"max_size_nm"`
	MinCount   int     `json:"min_count"`
	AvgCount   int     `json:"avg_count"`
	MaxCount   int     `json:"max_count"`
}

// HistoryData is the paginated scan history payload.
type HistoryData struct {
	Entries     []HistoryEntry `json:"entries"`
	Length      int            `json:"length"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
	Limit       int            `json:"pageSize"`
}
