package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
	"bazaarBack/utils"
)

type AdImageService struct {
	AdImageRepo *repositories.AdImageRepository
	Storage     *utils.Storage
}

func (s *AdImageService) CreateAdImage(ctx context.Context, img models.AdImage) (models.AdImage, error) {
	return s.AdImageRepo.CreateAdImage(ctx, img)
}

// UploadAdImage stores the raw file in object storage and records the
// resulting URL as an image row for the ad.
func (s *AdImageService) UploadAdImage(ctx context.Context, adID int, file []byte, ext string) (models.AdImage, error) {
	fileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	url, err := s.Storage.UploadFile(file, fileName, "ads")
	if err != nil {
		return models.AdImage{}, err
	}
	return s.AdImageRepo.CreateAdImage(ctx, models.AdImage{AdID: adID, ImageURL: url})
}

func (s *AdImageService) GetImagesByAd(ctx context.Context, adID int) ([]models.AdImage, error) {
	return s.AdImageRepo.GetImagesByAd(ctx, adID)
}

func (s *AdImageService) DeleteAdImage(ctx context.Context, id int) error {
	return s.AdImageRepo.DeleteAdImage(ctx, id)
}
