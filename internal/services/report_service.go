package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type ReportService struct {
	ReportRepo *repositories.ReportRepository
}

func (s *ReportService) CreateReport(ctx context.Context, report models.Report) (models.Report, error) {
	return s.ReportRepo.CreateReport(ctx, report)
}

func (s *ReportService) GetReports(ctx context.Context, limit, offset int) ([]models.Report, error) {
	return s.ReportRepo.GetReports(ctx, limit, offset)
}

func (s *ReportService) GetReportsForAd(ctx context.Context, adID int) ([]models.Report, error) {
	return s.ReportRepo.GetReportsForAd(ctx, adID)
}

func (s *ReportService) DeleteReport(ctx context.Context, id int) error {
	return s.ReportRepo.DeleteReport(ctx, id)
}
