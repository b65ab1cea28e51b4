package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bazaarBack/internal/models"
)

type LocationRepository struct {
	DB *sql.DB
}

func (r *LocationRepository) CreateLocation(ctx context.Context, loc models.Location) (models.Location, error) {
	if loc.Country == "" {
		loc.Country = "Pakistan"
	}
	query := `INSERT INTO locations (city, state, country) VALUES (?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, loc.City, nullString(loc.State), loc.Country)
	if err != nil {
		return models.Location{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Location{}, err
	}
	loc.ID = int(id)
	return loc, nil
}

func (r *LocationRepository) GetLocationByID(ctx context.Context, id int) (models.Location, error) {
	var loc models.Location
	var state sql.NullString
	query := `SELECT location_id, city, state, country FROM locations WHERE location_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&loc.ID, &loc.City, &state, &loc.Country)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Location{}, models.ErrLocationNotFound
	}
	if err != nil {
		return models.Location{}, err
	}
	loc.State = nullToPtr(state)
	return loc, nil
}

func (r *LocationRepository) GetLocations(ctx context.Context, limit, offset int) ([]models.Location, error) {
	query := `SELECT location_id, city, state, country FROM locations ORDER BY location_id ASC LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []models.Location
	for rows.Next() {
		var loc models.Location
		var state sql.NullString
		if err := rows.Scan(&loc.ID, &loc.City, &state, &loc.Country); err != nil {
			return nil, err
		}
		loc.State = nullToPtr(state)
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (r *LocationRepository) UpdateLocation(ctx context.Context, id int, upd models.LocationUpdate) (models.Location, error) {
	var sets []string
	var args []any
	if upd.City != nil {
		sets = append(sets, "city = ?")
		args = append(args, *upd.City)
	}
	if upd.State != nil {
		sets = append(sets, "state = ?")
		args = append(args, *upd.State)
	}
	if upd.Country != nil {
		sets = append(sets, "country = ?")
		args = append(args, *upd.Country)
	}
	if len(sets) > 0 {
		args = append(args, id)
		query := `UPDATE locations SET ` + strings.Join(sets, ", ") + ` WHERE location_id = ?`
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return models.Location{}, err
		}
	}
	return r.GetLocationByID(ctx, id)
}

func (r *LocationRepository) DeleteLocation(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM locations WHERE location_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrLocationNotFound
	}
	return nil
}
