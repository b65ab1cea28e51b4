package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type FavoriteHandler struct {
	Service *services.FavoriteService
}

func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var fav models.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if fav.UserID == 0 || fav.AdID == 0 {
		respondError(w, http.StatusBadRequest, "user_id and ad_id are required")
		return
	}
	created, err := h.Service.AddFavorite(r.Context(), fav)
	if err != nil {
		if errors.Is(err, models.ErrFavoriteExists) || isDuplicateKeyError(err) {
			respondError(w, http.StatusBadRequest, "Ad is already in favorites")
			return
		}
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "user_id or ad_id does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *FavoriteHandler) GetFavoritesByUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	limit, offset := parsePagination(r)
	favs, err := h.Service.GetFavoritesByUser(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}
	respondJSON(w, http.StatusOK, favs)
}

func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := intParam(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	adID, err := intParam(r, "ad_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	if err := h.Service.RemoveFavorite(r.Context(), userID, adID); err != nil {
		if errors.Is(err, models.ErrFavoriteNotFound) {
			respondError(w, http.StatusNotFound, "Favorite not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed successfully"})
}

func (h *FavoriteHandler) IsFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := intParam(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	adID, err := intParam(r, "ad_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	isFav, err := h.Service.IsFavorite(r.Context(), userID, adID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to check favorite")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"is_favorite": isFav})
}
