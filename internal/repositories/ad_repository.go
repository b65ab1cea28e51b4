package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"bazaarBack/internal/models"
)

type AdRepository struct {
	DB *sql.DB
}

const adColumns = `ad_id, user_id, category_id, location_id, title, description, price, ad_condition, is_sold, created_at, updated_at`

func (r *AdRepository) CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error) {
	now := time.Now()
	ad.CreatedAt = now
	ad.UpdatedAt = now
	query := `INSERT INTO ads (user_id, category_id, location_id, title, description, price, ad_condition, is_sold, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, ad.UserID, ad.CategoryID, nullInt(ad.LocationID), ad.Title, ad.Description, ad.Price, ad.Condition, ad.IsSold, ad.CreatedAt, ad.UpdatedAt)
	if err != nil {
		return models.Ad{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Ad{}, err
	}
	ad.ID = int(id)
	return ad, nil
}

// GetAdByID returns the ad with its owner (public fields only), category,
// location and images embedded. Embedding stops there; the embedded records
// do not carry their own relations.
func (r *AdRepository) GetAdByID(ctx context.Context, id int) (models.Ad, error) {
	query := `
        SELECT a.ad_id, a.user_id, a.category_id, a.location_id, a.title, a.description,
               a.price, a.ad_condition, a.is_sold, a.created_at, a.updated_at,
               u.full_name, u.email, u.phone, u.profile_picture, u.created_at,
               c.name, c.parent_id,
               l.city, l.state, l.country
        FROM ads a
        JOIN users u ON a.user_id = u.user_id
        JOIN categories c ON a.category_id = c.category_id
        LEFT JOIN locations l ON a.location_id = l.location_id
        WHERE a.ad_id = ?`

	var ad models.Ad
	var locationID, parentID sql.NullInt64
	var userPhone, userPicture sql.NullString
	var city, state, country sql.NullString
	user := models.User{}
	category := models.Category{}
	var userCreatedAt time.Time

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&ad.ID, &ad.UserID, &ad.CategoryID, &locationID, &ad.Title, &ad.Description,
		&ad.Price, &ad.Condition, &ad.IsSold, &ad.CreatedAt, &ad.UpdatedAt,
		&user.FullName, &user.Email, &userPhone, &userPicture, &userCreatedAt,
		&category.Name, &parentID,
		&city, &state, &country,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Ad{}, models.ErrAdNotFound
	}
	if err != nil {
		return models.Ad{}, err
	}

	ad.LocationID = nullIntToPtr(locationID)

	user.ID = ad.UserID
	user.Phone = nullToPtr(userPhone)
	user.ProfilePicture = nullToPtr(userPicture)
	user.CreatedAt = userCreatedAt
	ad.User = &user

	category.ID = ad.CategoryID
	category.ParentID = nullIntToPtr(parentID)
	ad.Category = &category

	if ad.LocationID != nil {
		ad.Location = &models.Location{
			ID:      *ad.LocationID,
			City:    city.String,
			State:   nullToPtr(state),
			Country: country.String,
		}
	}

	images, err := r.getImages(ctx, ad.ID)
	if err != nil {
		return models.Ad{}, err
	}
	ad.Images = images
	return ad, nil
}

func (r *AdRepository) getImages(ctx context.Context, adID int) ([]models.AdImage, error) {
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

func (r *AdRepository) GetAds(ctx context.Context, limit, offset int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads ORDER BY ad_id ASC LIMIT ? OFFSET ?`
	return r.queryAds(ctx, query, limit, offset)
}

func (r *AdRepository) GetAdsByUser(ctx context.Context, userID, limit, offset int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE user_id = ? ORDER BY ad_id ASC LIMIT ? OFFSET ?`
	return r.queryAds(ctx, query, userID, limit, offset)
}

func (r *AdRepository) GetAdsByCategory(ctx context.Context, categoryID, limit, offset int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE category_id = ? ORDER BY ad_id ASC LIMIT ? OFFSET ?`
	return r.queryAds(ctx, query, categoryID, limit, offset)
}

func (r *AdRepository) GetAdsByLocation(ctx context.Context, locationID, limit, offset int) ([]models.Ad, error) {
	query := `SELECT ` + adColumns + ` FROM ads WHERE location_id = ? ORDER BY ad_id ASC LIMIT ? OFFSET ?`
	return r.queryAds(ctx, query, locationID, limit, offset)
}

// SearchAds matches the query as a substring of the title or the description.
func (r *AdRepository) SearchAds(ctx context.Context, q string, limit, offset int) ([]models.Ad, error) {
	pattern := "%" + q + "%"
	query := `SELECT ` + adColumns + ` FROM ads WHERE title LIKE ? OR description LIKE ? ORDER BY ad_id ASC LIMIT ? OFFSET ?`
	return r.queryAds(ctx, query, pattern, pattern, limit, offset)
}

func (r *AdRepository) queryAds(ctx context.Context, query string, args ...any) ([]models.Ad, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ads []models.Ad
	for rows.Next() {
		var ad models.Ad
		var locationID sql.NullInt64
		if err := rows.Scan(&ad.ID, &ad.UserID, &ad.CategoryID, &locationID, &ad.Title, &ad.Description,
			&ad.Price, &ad.Condition, &ad.IsSold, &ad.CreatedAt, &ad.UpdatedAt); err != nil {
			return nil, err
		}
		ad.LocationID = nullIntToPtr(locationID)
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (r *AdRepository) UpdateAd(ctx context.Context, id int, upd models.AdUpdate) (models.Ad, error) {
	var sets []string
	var args []any
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *upd.Price)
	}
	if upd.Condition != nil {
		sets = append(sets, "ad_condition = ?")
		args = append(args, *upd.Condition)
	}
	if upd.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *upd.CategoryID)
	}
	if upd.LocationID.Set {
		sets = append(sets, "location_id = ?")
		if upd.LocationID.Valid {
			args = append(args, upd.LocationID.Value)
		} else {
			args = append(args, nil)
		}
	}
	if upd.IsSold != nil {
		sets = append(sets, "is_sold = ?")
		args = append(args, *upd.IsSold)
	}
	if len(sets) > 0 {
		sets = append(sets, "updated_at = ?")
		args = append(args, time.Now(), id)
		query := `UPDATE ads SET ` + strings.Join(sets, ", ") + ` WHERE ad_id = ?`
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return models.Ad{}, err
		}
	}
	return r.GetAdByID(ctx, id)
}

func (r *AdRepository) DeleteAd(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM ads WHERE ad_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrAdNotFound
	}
	return nil
}
