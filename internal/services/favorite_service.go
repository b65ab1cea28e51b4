package services

import (
	"context"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

type FavoriteService struct {
	FavoriteRepo *repositories.FavoriteRepository
}

// AddFavorite rejects a second add for the same user/ad pair.
func (s *FavoriteService) AddFavorite(ctx context.Context, fav models.Favorite) (models.Favorite, error) {
	exists, err := s.FavoriteRepo.IsFavorite(ctx, fav.UserID, fav.AdID)
	if err != nil {
		return models.Favorite{}, err
	}
	if exists {
		return models.Favorite{}, models.ErrFavoriteExists
	}
	return s.FavoriteRepo.AddFavorite(ctx, fav)
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, adID int) error {
	return s.FavoriteRepo.RemoveFavorite(ctx, userID, adID)
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, adID int) (bool, error) {
	return s.FavoriteRepo.IsFavorite(ctx, userID, adID)
}

func (s *FavoriteService) GetFavoritesByUser(ctx context.Context, userID, limit, offset int) ([]models.Favorite, error) {
	return s.FavoriteRepo.GetFavoritesByUser(ctx, userID, limit, offset)
}
