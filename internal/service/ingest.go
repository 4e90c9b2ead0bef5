package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
)

// IngestService keeps a rolling window of the latest real-time samples
// received over MQTT and summarizes it once every domain.SampleCount
// messages.
type IngestService struct {
	archive *ArchiveService
	metrics *metrics.Metrics
	log     zerolog.Logger

	mu      sync.Mutex
	window  []domain.RealTimeSample
	pending int
}

func NewIngestService(archive *ArchiveService, m *metrics.Metrics, log zerolog.Logger) *IngestService {
	return &IngestService{
		archive: archive,
		metrics: m,
		log:     log,
		window:  make([]domain.RealTimeSample, 0, domain.SampleCount),
	}
}

// FromMQTT decodes one sample. It returns the report when this sample
// completed a window, nil otherwise.
func (s *IngestService) FromMQTT(ctx context.Context, topic string, payload []byte) (*domain.InsightReport, error) {
	var r domain.RealTimeSample
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, fmt.Errorf("decode sample on %s: %w", topic, err)
	}
	if r.Timestamp.IsZero() {
		return nil, fmt.Errorf("sample on %s has no timestamp", topic)
	}
	s.metrics.IncIngested()

	rows, full := s.push(r)
	if !full {
		return nil, nil
	}

	report := NewReport(domain.RealTimeMonitoring, rows, rows[len(rows)-1].Timestamp)
	if err := s.archive.Save(ctx, report); err != nil && !errors.Is(err, ErrArchiveDisabled) {
		return report, err
	}
	s.log.Info().Str("report_id", report.ID).Str("topic", topic).Msg("window summarized")
	return report, nil
}

func (s *IngestService) push(r domain.RealTimeSample) ([]domain.RealTimeSample, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.window) == domain.SampleCount {
		copy(s.window, s.window[1:])
		s.window = s.window[:domain.SampleCount-1]
	}
	s.window = append(s.window, r)
	s.pending++
	if s.pending < domain.SampleCount {
		return nil, false
	}
	s.pending = 0
	out := make([]domain.RealTimeSample, len(s.window))
	copy(out, s.window)
	return out, true
}
