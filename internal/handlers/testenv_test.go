package handlers_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"bazaarBack/internal/handlers"
	"bazaarBack/internal/repositories"
	"bazaarBack/internal/services"
	"bazaarBack/utils"
)

const handlerSchema = `
CREATE TABLE users (
    user_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name       TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    phone           TEXT,
    password        TEXT NOT NULL,
    profile_picture TEXT,
    created_at      DATETIME NOT NULL
);
CREATE TABLE locations (
    location_id INTEGER PRIMARY KEY AUTOINCREMENT,
    city        TEXT NOT NULL,
    state       TEXT,
    country     TEXT NOT NULL DEFAULT 'Pakistan'
);
CREATE TABLE categories (
    category_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    parent_id   INTEGER REFERENCES categories (category_id) ON DELETE SET NULL
);
CREATE TABLE ads (
    ad_id        INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id      INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    category_id  INTEGER NOT NULL REFERENCES categories (category_id),
    location_id  INTEGER REFERENCES locations (location_id) ON DELETE SET NULL,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL,
    price        REAL NOT NULL DEFAULT 0,
    ad_condition TEXT NOT NULL,
    is_sold      BOOLEAN NOT NULL DEFAULT 0,
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL
);
CREATE TABLE ad_images (
    image_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    ad_id     INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    image_url TEXT NOT NULL
);
CREATE TABLE favorites (
    user_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    ad_id   INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    PRIMARY KEY (user_id, ad_id)
);
CREATE TABLE sessions (
    session_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id       INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    refresh_token TEXT NOT NULL UNIQUE,
    expires_at    DATETIME NOT NULL
);
`

type testEnv struct {
	db       *sql.DB
	user     *handlers.UserHandler
	ad       *handlers.AdHandler
	favorite *handlers.FavoriteHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(handlerSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	tokens, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	userService := &services.UserService{
		UserRepo: &repositories.UserRepository{DB: db},
		Tokens:   tokens,
	}
	adService := &services.AdService{
		AdRepo: &repositories.AdRepository{DB: db},
	}
	favoriteService := &services.FavoriteService{
		FavoriteRepo: &repositories.FavoriteRepository{DB: db},
	}

	return &testEnv{
		db:       db,
		user:     &handlers.UserHandler{Service: userService},
		ad:       &handlers.AdHandler{Service: adService},
		favorite: &handlers.FavoriteHandler{Service: favoriteService},
	}
}
