package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type TransactionHandler struct {
	Service *services.TransactionService
}

func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var tx models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if tx.AdID == 0 || tx.BuyerID == 0 || tx.SellerID == 0 {
		respondError(w, http.StatusBadRequest, "ad_id, buyer_id and seller_id are required")
		return
	}
	if tx.Status != "" && !models.ValidTransactionStatus(tx.Status) {
		respondError(w, http.StatusBadRequest, "status must be Pending, Completed or Cancelled")
		return
	}
	created, err := h.Service.CreateTransaction(r.Context(), tx)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "ad_id, buyer_id or seller_id does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	txs, err := h.Service.GetTransactions(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) GetTransactionByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}
	tx, err := h.Service.GetTransactionByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch transaction")
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) GetTransactionsByBuyer(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	limit, offset := parsePagination(r)
	txs, err := h.Service.GetTransactionsByBuyer(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) GetTransactionsBySeller(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	limit, offset := parsePagination(r)
	txs, err := h.Service.GetTransactionsBySeller(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	respondJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}
	var upd models.TransactionUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if upd.Status != nil && !models.ValidTransactionStatus(*upd.Status) {
		respondError(w, http.StatusBadRequest, "status must be Pending, Completed or Cancelled")
		return
	}
	tx, err := h.Service.UpdateTransaction(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update transaction")
		return
	}
	respondJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid transaction ID")
		return
	}
	if err := h.Service.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully"})
}
