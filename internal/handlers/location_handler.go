package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type LocationHandler struct {
	Service *services.LocationService
}

func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var loc models.Location
	if err := json.NewDecoder(r.Body).Decode(&loc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if loc.City == "" {
		respondError(w, http.StatusBadRequest, "city is required")
		return
	}
	created, err := h.Service.CreateLocation(r.Context(), loc)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create location")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	locations, err := h.Service.GetLocations(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch locations")
		return
	}
	respondJSON(w, http.StatusOK, locations)
}

func (h *LocationHandler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}
	loc, err := h.Service.GetLocationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			respondError(w, http.StatusNotFound, "Location not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to fetch location")
		return
	}
	respondJSON(w, http.StatusOK, loc)
}

func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}
	var upd models.LocationUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	loc, err := h.Service.UpdateLocation(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			respondError(w, http.StatusNotFound, "Location not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update location")
		return
	}
	respondJSON(w, http.StatusOK, loc)
}

func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid location ID")
		return
	}
	if err := h.Service.DeleteLocation(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrLocationNotFound) {
			respondError(w, http.StatusNotFound, "Location not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete location")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Location deleted successfully"})
}
