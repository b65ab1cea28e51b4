package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type AdHandler struct {
	Service *services.AdService
}

func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var ad models.Ad
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if ad.Title == "" || ad.Description == "" || ad.UserID == 0 || ad.CategoryID == 0 {
		respondError(w, http.StatusBadRequest, "title, description, user_id and category_id are required")
		return
	}
	if !models.ValidCondition(ad.Condition) {
		respondError(w, http.StatusBadRequest, "condition must be New or Used")
		return
	}
	if ad.Price < 0 {
		respondError(w, http.StatusBadRequest, "price must not be negative")
		return
	}
	// is_sold is server-assigned; a new ad is never sold
	ad.IsSold = false

	created, err := h.Service.CreateAd(r.Context(), ad)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "user_id, category_id or location_id does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create ad")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *AdHandler) GetAds(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	ads, err := h.Service.GetAds(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch ads")
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) SearchAds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		respondError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}
	limit, offset := parsePagination(r)
	ads, err := h.Service.SearchAds(r.Context(), q, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search ads")
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) GetAdsByUser(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	limit, offset := parsePagination(r)
	ads, err := h.Service.GetAdsByUser(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch ads")
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) GetAdsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}
	limit, offset := parsePagination(r)
	ads, err := h.Service.GetAdsByCategory(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch ads")
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) GetAdsByLocation(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}
	limit, offset := parsePagination(r)
	ads, err := h.Service.GetAdsByLocation(r.Context(), id, limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch ads")
		return
	}
	respondJSON(w, http.StatusOK, ads)
}

func (h *AdHandler) GetAdByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	ad, err := h.Service.GetAdByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			respondError(w, http.StatusNotFound, "Ad not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch ad")
		return
	}
	respondJSON(w, http.StatusOK, ad)
}

func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	var upd models.AdUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if upd.Condition != nil && !models.ValidCondition(*upd.Condition) {
		respondError(w, http.StatusBadRequest, "condition must be New or Used")
		return
	}
	ad, err := h.Service.UpdateAd(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			respondError(w, http.StatusNotFound, "Ad not found")
			return
		}
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "category_id or location_id does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update ad")
		return
	}
	respondJSON(w, http.StatusOK, ad)
}

func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	if err := h.Service.DeleteAd(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrAdNotFound) {
			respondError(w, http.StatusNotFound, "Ad not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete ad")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Ad deleted successfully"})
}
