package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

type ArchiveService struct {
	store   Archive
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func (s *ArchiveService) Enabled() bool { return s.store != nil }

func (s *ArchiveService) Save(ctx context.Context, r *domain.InsightReport) error {
	if s.store == nil {
		return ErrArchiveDisabled
	}
	if err := s.store.SaveReport(ctx, r); err != nil {
		return fmt.Errorf("archive report %s: %w", r.ID, err)
	}
	s.metrics.IncArchived()
	s.log.Info().Str("report_id", r.ID).Int("samples", r.SampleCount).Msg("insight report archived")
	return nil
}

// Recent returns archived reports newest first. limit <= 0 means the
// default; larger values are capped.
func (s *ArchiveService) Recent(ctx context.Context, limit int) ([]domain.InsightReport, error) {
	if s.store == nil {
		return nil, ErrArchiveDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	out, err := s.store.RecentReports(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list archived reports: %w", err)
	}
	return out, nil
}
