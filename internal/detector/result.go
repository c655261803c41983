package detector

// StatusUnknown is used when the endpoint response omits the status label.
const StatusUnknown = "UNKNOWN"

// Box is a single detection returned by the endpoint. Only Width and Height
// feed the size analysis; the remaining fields are carried for display.
type Box struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// Result is the parsed response of one detection request.
type Result struct {
	TotalCount int     `json:"total_count"`
	Boxes      []Box   `json:"boxes"`
	Status     string  `json:"status"`
	RiskScore  float64 `json:"risk_score"`
}

// applyDefaults fills in the documented fallbacks for fields the endpoint
// may omit: total_count 0, boxes empty, status "UNKNOWN", risk_score 0.
func (r *Result) applyDefaults() {
	if r.Boxes == nil {
		r.Boxes = []Box{}
	}
	if r.Status == "" {
		r.Status = StatusUnknown
	}
}
