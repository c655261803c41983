package services

import (
	"context"

	"microscan/internal/analyzer"
	"microscan/internal/config"
	"microscan/internal/detector"
	"microscan/internal/dto"
	"microscan/internal/logger"
	"microscan/internal/model"
	"microscan/internal/render"
	"microscan/internal/repository"
	"microscan/internal/source"
)

// NoDetectionsMessage is shown when the endpoint reports zero boxes. This is
// an informational state, not an error.
const NoDetectionsMessage = "No microplastics detected."

// Manager runs the analysis flow: fetch image bytes, one detection call,
// size analysis, then best-effort history recording. One image is processed
// to completion before the next; there is no retry and no partial result.
type Manager struct {
	detector *detector.Client
	analyzer *analyzer.Analyzer
	history  repository.ScanRepository
	logger   *logger.Logger
	cfg      *config.Config
}

// NewManager wires the analysis flow. history may be nil, in which case
// completed scans are not recorded (the CLI runs this way).
func NewManager(det *detector.Client, an *analyzer.Analyzer, history repository.ScanRepository, cfg *config.Config, logger *logger.Logger) *Manager {
	return &Manager{
		detector: det,
		analyzer: an,
		history:  history,
		logger:   logger,
		cfg:      cfg,
	}
}

// AnalyzeSource fetches the image from the given source and analyzes it.
// sourceName labels the input path ("upload", "example", "camera") in
// responses and history.
func (m *Manager) AnalyzeSource(ctx context.Context, src source.Source, sourceName string) (*dto.AnalysisResponse, error) {
	imageData, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return m.AnalyzeImage(ctx, imageData, sourceName)
}

// AnalyzeImage posts the image to the detection endpoint and computes the
// size distribution. A transport failure or a non-200 reply aborts the flow
// before any statistics are computed.
func (m *Manager) AnalyzeImage(ctx context.Context, imageData []byte, sourceName string) (*dto.AnalysisResponse, error) {
	result, err := m.detector.Detect(ctx, imageData)
	if err != nil {
		return nil, err
	}

	samples, summary := m.analyzer.Analyze(result.Boxes, result.TotalCount)

	resp := &dto.AnalysisResponse{
		Source:     sourceName,
		TotalCount: result.TotalCount,
		RiskScore:  result.RiskScore,
		Status:     result.Status,
		Particles:  make([]dto.Particle, 0, len(samples)),
	}
	for _, s := range samples {
		resp.Particles = append(resp.Particles, dto.Particle{
			Index:    s.Index,
			WidthNM:  s.WidthNM,
			HeightNM: s.HeightNM,
			SizeNM:   s.SizeNM,
		})
	}

	if summary == nil {
		resp.Message = NoDetectionsMessage
	} else {
		resp.Summary = &dto.SizeSummary{
			MinSizeNM: summary.MinSize,
			AvgSizeNM: summary.AvgSize,
			MaxSizeNM: summary.MaxSize,
			MinCount:  summary.MinCount,
			AvgCount:  summary.AvgCount,
			MaxCount:  summary.MaxCount,
		}
		resp.Chart = render.Chart(summary)
	}

	m.recordScan(resp, imageData)

	return resp, nil
}

// recordScan persists the completed analysis to the history. Failures are
// logged and never surface to the caller.
func (m *Manager) recordScan(resp *dto.AnalysisResponse, imageData []byte) {
	if m.history == nil {
		return
	}

	scan := &model.Scan{
		Source:     resp.Source,
		Status:     resp.Status,
		RiskScore:  resp.RiskScore,
		TotalCount: resp.TotalCount,
	}
	if resp.Summary != nil {
		scan.MinSizeNM = resp.Summary.MinSizeNM
		scan.AvgSizeNM = resp.Summary.AvgSizeNM
		scan.MaxSizeNM = resp.Summary.MaxSizeNM
		scan.MinCount = resp.Summary.MinCount
		scan.AvgCount = resp.Summary.AvgCount
		scan.MaxCount = resp.Summary.MaxCount
	}

	thumb, err := makeThumbnail(imageData, m.cfg.ThumbnailWidth)
	if err != nil {
		m.logger.Warning("Could not create history thumbnail: %v", err)
	} else {
		scan.Thumbnail = thumb
	}

	if _, err := m.history.Insert(scan); err != nil {
		m.logger.Error("Error recording scan history: %v", err)
		return
	}
	m.logger.Info("Recorded %s scan: %d particles, status %s", scan.Source, scan.TotalCount, scan.Status)
}

// History exposes the scan repository to handlers; nil when history is
// disabled.
func (m *Manager) History() repository.ScanRepository {
	return m.history
}

// Config exposes the loaded configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}
