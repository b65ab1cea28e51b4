package models

import (
	"errors"
)

var (
	ErrNoRecord            = errors.New("models: no matching record found")
	ErrInvalidCredentials  = errors.New("models: invalid credentials")
	ErrDuplicateEmail      = errors.New("models: duplicate email")
	ErrUserNotFound        = errors.New("models: user not found")
	ErrLocationNotFound    = errors.New("models: location not found")
	ErrCategoryNotFound    = errors.New("models: category not found")
	ErrAdNotFound          = errors.New("models: ad not found")
	ErrImageNotFound       = errors.New("models: ad image not found")
	ErrFavoriteNotFound    = errors.New("models: favorite not found")
	ErrFavoriteExists      = errors.New("models: ad already in favorites")
	ErrMessageNotFound     = errors.New("models: message not found")
	ErrReportNotFound      = errors.New("models: report not found")
	ErrTransactionNotFound = errors.New("models: transaction not found")
	ErrSessionNotFound     = errors.New("models: session not found")
)
