package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type MessageHandler struct {
	Service *services.MessageService

	// Notify, when set, pushes a stored message to connected websocket
	// clients. Delivery failures do not affect the HTTP response.
	Notify func(models.Message)
}

func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg.SenderID == 0 || msg.ReceiverID == 0 || msg.AdID == 0 || msg.Message == "" {
		respondError(w, http.StatusBadRequest, "sender_id, receiver_id, ad_id and message are required")
		return
	}
	created, err := h.Service.CreateMessage(r.Context(), msg)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "sender_id, receiver_id or ad_id does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create message")
		return
	}
	if h.Notify != nil {
		h.Notify(created)
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *MessageHandler) GetMessagesForAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	limit, offset := parsePagination(r)
	messages, err := h.Service.GetMessagesForAd(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	user1ID, err := intParam(r, "user1_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	user2ID, err := intParam(r, "user2_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	adID, err := intParam(r, "ad_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	limit, offset := parsePagination(r)
	messages, err := h.Service.GetConversation(r.Context(), user1ID, user2ID, adID, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch conversation")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) GetMessagesByUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	limit, offset := parsePagination(r)
	messages, err := h.Service.GetMessagesByUser(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}
	var upd models.MessageUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	msg, err := h.Service.UpdateMessage(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrMessageNotFound) {
			respondError(w, http.StatusNotFound, "Message not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update message")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid message ID")
		return
	}
	if err := h.Service.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrMessageNotFound) {
			respondError(w, http.StatusNotFound, "Message not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete message")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Message deleted successfully"})
}
