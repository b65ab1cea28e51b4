package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"bazaarBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.CreatedAt = time.Now()
	query := `INSERT INTO users (full_name, email, phone, password, profile_picture, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, user.FullName, user.Email, nullString(user.Phone), user.Password, nullString(user.ProfilePicture), user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	user.ID = int(id)
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	var phone, picture sql.NullString
	query := `SELECT user_id, full_name, email, phone, password, profile_picture, created_at FROM users WHERE user_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.FullName, &user.Email, &phone, &user.Password, &picture, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	user.Phone = nullToPtr(phone)
	user.ProfilePicture = nullToPtr(picture)
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	var phone, picture sql.NullString
	query := `SELECT user_id, full_name, email, phone, password, profile_picture, created_at FROM users WHERE email = ?`
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.FullName, &user.Email, &phone, &user.Password, &picture, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	user.Phone = nullToPtr(phone)
	user.ProfilePicture = nullToPtr(picture)
	return user, nil
}

func (r *UserRepository) GetUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `SELECT user_id, full_name, email, phone, password, profile_picture, created_at
	          FROM users ORDER BY user_id ASC LIMIT ? OFFSET ?`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		var phone, picture sql.NullString
		if err := rows.Scan(&user.ID, &user.FullName, &user.Email, &phone, &user.Password, &picture, &user.CreatedAt); err != nil {
			return nil, err
		}
		user.Phone = nullToPtr(phone)
		user.ProfilePicture = nullToPtr(picture)
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateUser(ctx context.Context, id int, upd models.UserUpdate) (models.User, error) {
	var sets []string
	var args []any
	if upd.FullName != nil {
		sets = append(sets, "full_name = ?")
		args = append(args, *upd.FullName)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *upd.Phone)
	}
	if upd.ProfilePicture != nil {
		sets = append(sets, "profile_picture = ?")
		args = append(args, *upd.ProfilePicture)
	}
	if upd.Password != nil {
		sets = append(sets, "password = ?")
		args = append(args, *upd.Password)
	}
	if len(sets) > 0 {
		args = append(args, id)
		query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE user_id = ?`
		if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
			return models.User{}, err
		}
	}
	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	query := `INSERT INTO sessions (user_id, refresh_token, expires_at) VALUES (?, ?, ?)`
	_, err := r.DB.ExecContext(ctx, query, session.UserID, session.RefreshToken, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, token string) (models.Session, error) {
	var session models.Session
	query := `SELECT user_id, refresh_token, expires_at FROM sessions WHERE refresh_token = ?`
	err := r.DB.QueryRowContext(ctx, query, token).Scan(&session.UserID, &session.RefreshToken, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, err
}
