package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
)

const testSchema = `
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

CREATE TABLE messages (
    message_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id   INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    receiver_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    ad_id       INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    message     TEXT NOT NULL,
    sent_at     DATETIME NOT NULL
);

CREATE TABLE reports (
    report_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    ad_id       INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    reported_by INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    reason      TEXT NOT NULL,
    reported_at DATETIME NOT NULL
);

CREATE TABLE transactions (
    transaction_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    ad_id            INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    buyer_id         INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    seller_id        INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    amount           REAL NOT NULL,
    status           TEXT NOT NULL DEFAULT 'Pending',
    transaction_date DATETIME NOT NULL
);

CREATE TABLE sessions (
    session_id    INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id       INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    refresh_token TEXT NOT NULL UNIQUE,
    expires_at    DATETIME NOT NULL
);
`

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *sql.DB, name, email string) models.User {
	t.Helper()
	repo := repositories.UserRepository{DB: db}
	u, err := repo.CreateUser(context.Background(), models.User{
		FullName: name,
		Email:    email,
		Password: "hashed-password",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedCategory(t *testing.T, db *sql.DB, name string, parentID *int) models.Category {
	t.Helper()
	repo := repositories.CategoryRepository{DB: db}
	c, err := repo.CreateCategory(context.Background(), models.Category{Name: name, ParentID: parentID})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedLocation(t *testing.T, db *sql.DB, city string) models.Location {
	t.Helper()
	repo := repositories.LocationRepository{DB: db}
	l, err := repo.CreateLocation(context.Background(), models.Location{City: city})
	if err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return l
}

func seedAd(t *testing.T, db *sql.DB, userID, categoryID int, title string) models.Ad {
	t.Helper()
	repo := repositories.AdRepository{DB: db}
	ad, err := repo.CreateAd(context.Background(), models.Ad{
		UserID:      userID,
		CategoryID:  categoryID,
		Title:       title,
		Description: "test description",
		Price:       100,
		Condition:   models.ConditionUsed,
	})
	if err != nil {
		t.Fatalf("seed ad: %v", err)
	}
	return ad
}

func seedMessage(t *testing.T, db *sql.DB, senderID, receiverID, adID int, text string) models.Message {
	t.Helper()
	repo := repositories.MessageRepository{DB: db}
	m, err := repo.CreateMessage(context.Background(), models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		AdID:       adID,
		Message:    text,
	})
	if err != nil {
		t.Fatalf("seed message: %v", err)
	}
	// sqlite DATETIME rounds sub-second order in rare cases, keep inserts apart
	time.Sleep(2 * time.Millisecond)
	return m
}
