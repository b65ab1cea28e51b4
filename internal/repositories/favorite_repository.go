package repositories

import (
	"context"
	"database/sql"

	"bazaarBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

func (r *FavoriteRepository) AddFavorite(ctx context.Context, fav models.Favorite) (models.Favorite, error) {
	query := `INSERT INTO favorites (user_id, ad_id) VALUES (?, ?)`
	_, err := r.DB.ExecContext(ctx, query, fav.UserID, fav.AdID)
	return fav, err
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userID, adID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND ad_id = ?`, userID, adID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrFavoriteNotFound
	}
	return nil
}

func (r *FavoriteRepository) IsFavorite(ctx context.Context, userID, adID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorites WHERE user_id = ? AND ad_id = ?`, userID, adID).Scan(&count)
	return count > 0, err
}

func (r *FavoriteRepository) GetFavoritesByUser(ctx context.Context, userID, limit, offset int) ([]models.Favorite, error) {
	query := `SELECT f.user_id, f.ad_id, a.title, a.price, a.ad_condition, a.is_sold
	          FROM favorites f
	          JOIN ads a ON f.ad_id = a.ad_id
	          WHERE f.user_id = ?
	          ORDER BY f.ad_id ASC LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []models.Favorite
	for rows.Next() {
		var fav models.Favorite
		ad := models.Ad{}
		if err := rows.Scan(&fav.UserID, &fav.AdID, &ad.Title, &ad.Price, &ad.Condition, &ad.IsSold); err != nil {
			return nil, err
		}
		ad.ID = fav.AdID
		fav.Ad = &ad
		favs = append(favs, fav)
	}
	return favs, rows.Err()
}
