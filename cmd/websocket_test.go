package main

import (
	"database/sql"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	_ "github.com/mattn/go-sqlite3"

	"bazaarBack/internal/handlers"
	"bazaarBack/internal/models"
	"bazaarBack/internal/repositories"
	"bazaarBack/internal/services"
)

const chatSchema = `
CREATE TABLE users (
    user_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    full_name       TEXT NOT NULL,
    email           TEXT NOT NULL UNIQUE,
    phone           TEXT,
    password        TEXT NOT NULL,
    profile_picture TEXT,
    created_at      DATETIME NOT NULL
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
    location_id  INTEGER,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL,
    price        REAL NOT NULL DEFAULT 0,
    ad_condition TEXT NOT NULL,
    is_sold      BOOLEAN NOT NULL DEFAULT 0,
    created_at   DATETIME NOT NULL,
    updated_at   DATETIME NOT NULL
);
CREATE TABLE messages (
    message_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id   INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    receiver_id INTEGER NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
    ad_id       INTEGER NOT NULL REFERENCES ads (ad_id) ON DELETE CASCADE,
    message     TEXT NOT NULL,
    sent_at     DATETIME NOT NULL
);
`

func newChatApplication(t *testing.T) *application {
	t.Helper()

	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(chatSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	wsManager := NewWebSocketManager()
	go wsManager.Run()

	messageRepo := repositories.MessageRepository{DB: db}
	messageService := &services.MessageService{MessageRepo: &messageRepo}

	return &application{
		errorLog:       log.New(io.Discard, "", 0),
		infoLog:        log.New(io.Discard, "", 0),
		db:             db,
		messageHandler: &handlers.MessageHandler{Service: messageService, Notify: wsManager.Send},
		wsManager:      wsManager,
	}
}

func seedChatFixtures(t *testing.T, db *sql.DB) {
	t.Helper()

	now := time.Now()
	for _, email := range []string{"ali@example.com", "sara@example.com"} {
		if _, err := db.Exec(
			`INSERT INTO users (full_name, email, password, created_at) VALUES (?, ?, ?, ?)`,
			strings.Split(email, "@")[0], email, "x", now,
		); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	if _, err := db.Exec(`INSERT INTO categories (name) VALUES ('Electronics')`); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO ads (user_id, category_id, title, description, price, ad_condition, created_at, updated_at)
		 VALUES (2, 1, 'iPhone 12', 'Lightly used', 150000, 'used', ?, ?)`, now, now,
	); err != nil {
		t.Fatalf("seed ad: %v", err)
	}
}

func dialChat(t *testing.T, url string, userID int) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial user=%d: %v", userID, err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := conn.WriteJSON(map[string]int{"user_id": userID}); err != nil {
		t.Fatalf("hello user=%d: %v", userID, err)
	}
	return conn
}

func TestWebSocket_MessageDelivery(t *testing.T) {
	app := newChatApplication(t)
	seedChatFixtures(t, app.db)

	srv := httptest.NewServer(app.routes())
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	receiver := dialChat(t, wsURL, 2)
	sender := dialChat(t, wsURL, 1)

	// let the hub process both registrations before sending
	time.Sleep(100 * time.Millisecond)

	out := models.Message{SenderID: 1, ReceiverID: 2, AdID: 1, Message: "Is this still available?"}
	if err := sender.WriteJSON(out); err != nil {
		t.Fatalf("send: %v", err)
	}

	receiver.SetReadDeadline(time.Now().Add(3 * time.Second))
	var got models.Message
	if err := receiver.ReadJSON(&got); err != nil {
		t.Fatalf("receive: %v", err)
	}
	if got.ID == 0 {
		t.Error("delivered message was not persisted first")
	}
	if got.SenderID != 1 || got.ReceiverID != 2 || got.Message != out.Message {
		t.Errorf("got %+v, want sender=1 receiver=2 text=%q", got, out.Message)
	}

	var count int
	if err := app.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("stored messages = %d, want 1", count)
	}
}

func TestWebSocket_RejectsSpoofedSender(t *testing.T) {
	app := newChatApplication(t)
	seedChatFixtures(t, app.db)

	srv := httptest.NewServer(app.routes())
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	receiver := dialChat(t, wsURL, 2)
	sender := dialChat(t, wsURL, 1)
	time.Sleep(100 * time.Millisecond)

	spoofed := models.Message{SenderID: 2, ReceiverID: 2, AdID: 1, Message: "not from me"}
	if err := sender.WriteJSON(spoofed); err != nil {
		t.Fatalf("send: %v", err)
	}

	receiver.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var got models.Message
	if err := receiver.ReadJSON(&got); err == nil {
		t.Fatalf("spoofed message was delivered: %+v", got)
	}

	var count int
	if err := app.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("stored messages = %d, want 0", count)
	}
}
