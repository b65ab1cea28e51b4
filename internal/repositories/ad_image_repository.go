package repositories

import (
	"context"
	"database/sql"

	"bazaarBack/internal/models"
)

type AdImageRepository struct {
	DB *sql.DB
}

func (r *AdImageRepository) CreateAdImage(ctx context.Context, img models.AdImage) (models.AdImage, error) {
	query := `INSERT INTO ad_images (ad_id, image_url) VALUES (?, ?)`
	res, err := r.DB.ExecContext(ctx, query, img.AdID, img.ImageURL)
	if err != nil {
		return models.AdImage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.AdImage{}, err
	}
	img.ID = int(id)
	return img, nil
}

func (r *AdImageRepository) GetImagesByAd(ctx context.Context, adID int) ([]models.AdImage, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT image_id, ad_id, image_url FROM ad_images WHERE ad_id = ? ORDER BY image_id ASC`, adID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []models.AdImage
	for rows.Next() {
		var img models.AdImage
		if err := rows.Scan(&img.ID, &img.AdID, &img.ImageURL); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

func (r *AdImageRepository) DeleteAdImage(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ad_images WHERE image_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrImageNotFound
	}
	return nil
}
