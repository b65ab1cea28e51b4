package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"bazaarBack/internal/models"
)

type CategoryRepository struct {
	DB *sql.DB
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	query := `INSERT INTO categories (name, parent_id) VALUES (?, ?)`
	res, err := r.DB.ExecContext(ctx, query, category.Name, nullInt(category.ParentID))
	if err != nil {
		return models.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Category{}, err
	}
	category.ID = int(id)
	return category, nil
}

func (r *CategoryRepository) GetCategoryByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	var parentID sql.NullInt64
	query := `SELECT category_id, name, parent_id FROM categories WHERE category_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &parentID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, models.ErrCategoryNotFound
	}
	if err != nil {
		return models.Category{}, err
	}
	category.ParentID = nullIntToPtr(parentID)
	return category, nil
}

func (r *CategoryRepository) GetCategories(ctx context.Context, limit, offset int) ([]models.Category, error) {
	query := `SELECT category_id, name, parent_id FROM categories ORDER BY category_id ASC LIMIT ? OFFSET ?`
	return r.queryCategories(ctx, query, limit, offset)
}

// GetParentCategories returns the roots of the category tree.
func (r *CategoryRepository) GetParentCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT category_id, name, parent_id FROM categories WHERE parent_id IS NULL ORDER BY category_id ASC`
	return r.queryCategories(ctx, query)
}

// GetSubcategories returns the direct children of a category, not the full subtree.
func (r *CategoryRepository) GetSubcategories(ctx context.Context, parentID int) ([]models.Category, error) {
	query := `SELECT category_id, name, parent_id FROM categories WHERE parent_id = ? ORDER BY category_id ASC`
	return r.queryCategories(ctx, query, parentID)
}

func (r *CategoryRepository) queryCategories(ctx context.Context, query string, args ...any) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		var parentID sql.NullInt64
		if err := rows.Scan(&category.ID, &category.Name, &parentID); err != nil {
			return nil, err
		}
		category.ParentID = nullIntToPtr(parentID)
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id int, upd models.CategoryUpdate) (models.Category, error) {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.ParentID.Set {
		sets = append(sets, "parent_id = ?")
		if upd.ParentID.Valid {
			args = append(args, upd.ParentID.Value)
		} else {
			args = append(args, nil)
		}
	}
	if len(sets) > 0 {
		args = append(args, id)
		query := `UPDATE categories SET ` + strings.Join(sets, ", ") + ` WHERE category_id = ?`
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return models.Category{}, err
		}
	}
	return r.GetCategoryByID(ctx, id)
}

// DeleteCategory removes the row; children keep existing with parent_id set
// to NULL by the foreign key's ON DELETE SET NULL.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE category_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrCategoryNotFound
	}
	return nil
}
