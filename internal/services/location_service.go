package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type LocationService struct {
	LocationRepo *repositories.LocationRepository
}

func (s *LocationService) CreateLocation(ctx context.Context, loc models.Location) (models.Location, error) {
	return s.LocationRepo.CreateLocation(ctx, loc)
}

func (s *LocationService) GetLocationByID(ctx context.Context, id int) (models.Location, error) {
	return s.LocationRepo.GetLocationByID(ctx, id)
}

func (s *LocationService) GetLocations(ctx context.Context, limit, offset int) ([]models.Location, error) {
	return s.LocationRepo.GetLocations(ctx, limit, offset)
}

func (s *LocationService) UpdateLocation(ctx context.Context, id int, upd models.LocationUpdate) (models.Location, error) {
	return s.LocationRepo.UpdateLocation(ctx, id, upd)
}

func (s *LocationService) DeleteLocation(ctx context.Context, id int) error {
	return s.LocationRepo.DeleteLocation(ctx, id)
}
