package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
)

var (
	ErrArchiveDisabled = errors.New("insight archive is not configured")
	ErrExportDisabled  = errors.New("cloud export is not configured")
)

// Archive persists insight reports. Implemented by the postgres repository
// and the DynamoDB client.
type Archive interface {
	SaveReport(ctx context.Context, r *domain.InsightReport) error
	RecentReports(ctx context.Context, limit int) ([]domain.InsightReport, error)
}

// ObjectStore uploads a blob and returns a download URL, and lists the
// keys stored under a prefix.
type ObjectStore interface {
	UploadReport(ctx context.Context, key string, data []byte, contentType string) (string, error)
	ListReports(ctx context.Context, prefix string) ([]string, error)
}

type Notifier interface {
	SendBatchAlerts(ctx context.Context, subject string, items []string) error
}

// Deps wires the services. Archive, Objects and Notifier may be nil.
type Deps struct {
	Generator *generator.Generator
	Archive   Archive
	Objects   ObjectStore
	Notifier  Notifier
	Metrics   *metrics.Metrics
	Logger    zerolog.Logger
}

type Services struct {
	Dashboards *DashboardService
	Archive    *ArchiveService
	Exports    *ExportService
	Ingest     *IngestService
}

func New(d Deps) *Services {
	if d.Metrics == nil {
		d.Metrics = metrics.Nop()
	}
	dash := &DashboardService{gen: d.Generator, metrics: d.Metrics, log: d.Logger}
	archive := &ArchiveService{store: d.Archive, metrics: d.Metrics, log: d.Logger}
	return &Services{
		Dashboards: dash,
		Archive:    archive,
		Exports:    &ExportService{objects: d.Objects, notifier: d.Notifier, dashboards: dash, log: d.Logger},
		Ingest:     NewIngestService(archive, d.Metrics, d.Logger),
	}
}
