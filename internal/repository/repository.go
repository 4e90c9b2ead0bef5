package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/domain"
)

// Repos is the postgres-backed insight archive.
type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

type reportRow struct {
	ID              string    `db:"id"`
	View            string    `db:"view"`
	GeneratedAt     time.Time `db:"generated_at"`
	SampleCount     int       `db:"sample_count"`
	Insights        []byte    `db:"insights"`
	Recommendations []byte    `db:"recommendations"`
}

func (r *Repos) SaveReport(ctx context.Context, rep *domain.InsightReport) error {
	row, err := toRow(rep)
	if err != nil {
		return err
	}
	_, err = r.db.NamedExecContext(ctx, `INSERT INTO insight_reports(id, view, generated_at, sample_count, insights, recommendations)
		VALUES (:id, :view, :generated_at, :sample_count, :insights, :recommendations)`, row)
	return err
}

func (r *Repos) RecentReports(ctx context.Context, limit int) ([]domain.InsightReport, error) {
	var rows []reportRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, view, generated_at, sample_count, insights, recommendations
		FROM insight_reports ORDER BY generated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InsightReport, len(rows))
	for i, row := range rows {
		rep, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = rep
	}
	return out, nil
}

func toRow(rep *domain.InsightReport) (reportRow, error) {
	ins, err := json.Marshal(rep.Insights)
	if err != nil {
		return reportRow{}, fmt.Errorf("marshal insights: %w", err)
	}
	recs, err := json.Marshal(rep.Recommendations)
	if err != nil {
		return reportRow{}, fmt.Errorf("marshal recommendations: %w", err)
	}
	return reportRow{
		ID:              rep.ID,
		View:            string(rep.View),
		GeneratedAt:     rep.GeneratedAt,
		SampleCount:     rep.SampleCount,
		Insights:        ins,
		Recommendations: recs,
	}, nil
}

func fromRow(row reportRow) (domain.InsightReport, error) {
	rep := domain.InsightReport{
		ID:          row.ID,
		View:        domain.View(row.View),
		GeneratedAt: row.GeneratedAt.UTC(),
		SampleCount: row.SampleCount,
	}
	if err := json.Unmarshal(row.Insights, &rep.Insights); err != nil {
		return rep, fmt.Errorf("report %s insights: %w", row.ID, err)
	}
	if err := json.Unmarshal(row.Recommendations, &rep.Recommendations); err != nil {
		return rep, fmt.Errorf("report %s recommendations: %w", row.ID, err)
	}
	return rep, nil
}
