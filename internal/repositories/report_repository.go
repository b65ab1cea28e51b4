package repositories

import (
	"context"
	"database/sql"
	"time"

	"bazaarBack/internal/models"
)

type ReportRepository struct {
	DB *sql.DB
}

func (r *ReportRepository) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	report.ReportedAt = time.Now()
	query := `INSERT INTO reports (ad_id, reported_by, reason, reported_at) VALUES (?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, report.AdID, report.ReportedBy, report.Reason, report.ReportedAt)
	if err != nil {
		return models.Report{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Report{}, err
	}
	report.ID = int(id)
	return report, nil
}

func (r *ReportRepository) GetReports(ctx context.Context, limit, offset int) ([]models.Report, error) {
	query := `SELECT report_id, ad_id, reported_by, reason, reported_at
	          FROM reports ORDER BY report_id ASC LIMIT ? OFFSET ?`
	return r.queryReports(ctx, query, limit, offset)
}

func (r *ReportRepository) GetReportsForAd(ctx context.Context, adID int) ([]models.Report, error) {
	query := `SELECT report_id, ad_id, reported_by, reason, reported_at
	          FROM reports WHERE ad_id = ? ORDER BY report_id ASC`
	return r.queryReports(ctx, query, adID)
}

func (r *ReportRepository) queryReports(ctx context.Context, query string, args ...any) ([]models.Report, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []models.Report
	for rows.Next() {
		var report models.Report
		if err := rows.Scan(&report.ID, &report.AdID, &report.ReportedBy, &report.Reason, &report.ReportedAt); err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *ReportRepository) DeleteReport(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reports WHERE report_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrReportNotFound
	}
	return nil
}
