package services

import (
	"context"
	"strings"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type AdService struct {
	AdRepo *repositories.AdRepository
}

func (s *AdService) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	return s.AdRepo.CreateAd(ctx, ad)
}

func (s *AdService) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	ad, err := s.AdRepo.GetAdByID(ctx, id)
	if err != nil {
		return models.Ad{}, err
	}
	if ad.User != nil {
		ad.User.Password = ""
	}
	return ad, nil
}

func (s *AdService) GetAds(ctx context.Context, limit, offset int) ([]models.Ad, error) {
	return s.AdRepo.GetAds(ctx, limit, offset)
}

func (s *AdService) GetAdsByUser(ctx context.Context, userID, limit, offset int) ([]models.Ad, error) {
	return s.AdRepo.GetAdsByUser(ctx, userID, limit, offset)
}

func (s *AdService) GetAdsByCategory(ctx context.Context, categoryID, limit, offset int) ([]models.Ad, error) {
	return s.AdRepo.GetAdsByCategory(ctx, categoryID, limit, offset)
}

func (s *AdService) GetAdsByLocation(ctx context.Context, locationID, limit, offset int) ([]models.Ad, error) {
	return s.AdRepo.GetAdsByLocation(ctx, locationID, limit, offset)
}

func (s *AdService) SearchAds(ctx context.Context, q string, limit, offset int) ([]models.Ad, error) {
	return s.AdRepo.SearchAds(ctx, strings.TrimSpace(q), limit, offset)
}

func (s *AdService) UpdateAd(ctx context.Context, id int, upd models.AdUpdate) (models.Ad, error) {
	ad, err := s.AdRepo.UpdateAd(ctx, id, upd)
	if err != nil {
		return models.Ad{}, err
	}
	if ad.User != nil {
		ad.User.Password = ""
	}
	return ad, nil
}

func (s *AdService) DeleteAd(ctx context.Context, id int) error {
	return s.AdRepo.DeleteAd(ctx, id)
}
