package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

type ExportResult struct {
	View domain.View `json:"view"`
	Key  string      `json:"key"`
	URL  string      `json:"url"`
}

// ExportService pushes dashboards to object storage and recommendation
// digests to the notification topic.
type ExportService struct {
	objects    ObjectStore
	notifier   Notifier
	dashboards *DashboardService
	log        zerolog.Logger
}

func (s *ExportService) ExportDashboard(ctx context.Context, view domain.View) (*ExportResult, error) {
	if s.objects == nil {
		return nil, ErrExportDisabled
	}
	d, err := s.dashboards.Render(view)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dashboard: %w", err)
	}

	// Second-resolution timestamps keep keys sortable; the suffix keeps
	// exports within the same second apart.
	key := fmt.Sprintf("%s%s-%s.json", exportPrefix(d.View), d.GeneratedAt.UTC().Format("20060102T150405Z"), uuid.NewString()[:8])
	url, err := s.objects.UploadReport(ctx, key, body, "application/json")
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", d.View, err)
	}
	s.log.Info().Str("view", string(d.View)).Str("key", key).Msg("dashboard exported")
	return &ExportResult{View: d.View, Key: key, URL: url}, nil
}

// ListExports returns the keys previously exported for view.
func (s *ExportService) ListExports(ctx context.Context, view domain.View) ([]string, error) {
	if s.objects == nil {
		return nil, ErrExportDisabled
	}
	if _, ok := view.Info(); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, view)
	}
	keys, err := s.objects.ListReports(ctx, exportPrefix(view))
	if err != nil {
		return nil, fmt.Errorf("list exports for %s: %w", view, err)
	}
	return keys, nil
}

func exportPrefix(v domain.View) string { return "dashboards/" + string(v) + "/" }

// PublishRecommendations sends the report's recommendations as one digest.
func (s *ExportService) PublishRecommendations(ctx context.Context, r *domain.InsightReport) error {
	if s.notifier == nil {
		return ErrExportDisabled
	}
	subject := fmt.Sprintf("Fuel Operations: %d Recommendations", len(r.Recommendations))
	items := make([]string, 0, len(r.Insights)+len(r.Recommendations))
	for _, in := range r.Insights {
		items = append(items, fmt.Sprintf("%s: %s", in.Name, in.Value))
	}
	items = append(items, r.Recommendations...)
	if err := s.notifier.SendBatchAlerts(ctx, subject, items); err != nil {
		return fmt.Errorf("publish report %s: %w", r.ID, err)
	}
	return nil
}
