package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bazaarBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	msg.SentAt = time.Now()
	query := `INSERT INTO messages (sender_id, receiver_id, ad_id, message, sent_at) VALUES (?, ?, ?, ?, ?)`
	res, err := r.DB.ExecContext(ctx, query, msg.SenderID, msg.ReceiverID, msg.AdID, msg.Message, msg.SentAt)
	if err != nil {
		return models.Message{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Message{}, err
	}
	msg.ID = int(id)
	return msg, nil
}

func (r *MessageRepository) GetMessageByID(ctx context.Context, id int) (models.Message, error) {
	var msg models.Message
	query := `SELECT message_id, sender_id, receiver_id, ad_id, message, sent_at FROM messages WHERE message_id = ?`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.AdID, &msg.Message, &msg.SentAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, models.ErrMessageNotFound
	}
	return msg, err
}

func (r *MessageRepository) GetMessagesForAd(ctx context.Context, adID, limit, offset int) ([]models.Message, error) {
	query := `SELECT message_id, sender_id, receiver_id, ad_id, message, sent_at
	          FROM messages WHERE ad_id = ? ORDER BY message_id ASC LIMIT ? OFFSET ?`
	return r.queryMessages(ctx, query, adID, limit, offset)
}

// GetConversation returns the exchange between two users about one ad,
// oldest first. The user pair is symmetric: swapping user1ID and user2ID
// yields the same result.
func (r *MessageRepository) GetConversation(ctx context.Context, user1ID, user2ID, adID, limit, offset int) ([]models.Message, error) {
	query := `
        SELECT message_id, sender_id, receiver_id, ad_id, message, sent_at
        FROM messages
        WHERE ad_id = ?
          AND ((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?))
        ORDER BY sent_at ASC, message_id ASC
        LIMIT ? OFFSET ?`
	return r.queryMessages(ctx, query, adID, user1ID, user2ID, user2ID, user1ID, limit, offset)
}

func (r *MessageRepository) GetMessagesByUser(ctx context.Context, userID, limit, offset int) ([]models.Message, error) {
	query := `SELECT message_id, sender_id, receiver_id, ad_id, message, sent_at
	          FROM messages WHERE sender_id = ? OR receiver_id = ?
	          ORDER BY message_id ASC LIMIT ? OFFSET ?`
	return r.queryMessages(ctx, query, userID, userID, limit, offset)
}

func (r *MessageRepository) queryMessages(ctx context.Context, query string, args ...any) ([]models.Message, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.AdID, &msg.Message, &msg.SentAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) UpdateMessage(ctx context.Context, id int, upd models.MessageUpdate) (models.Message, error) {
	if upd.Message != nil {
		if _, err := r.DB.ExecContext(ctx, `UPDATE messages SET message = ? WHERE message_id = ?`, *upd.Message, id); err != nil {
			return models.Message{}, err
		}
	}
	return r.GetMessageByID(ctx, id)
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE message_id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrMessageNotFound
	}
	return nil
}
