package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

const maxUploadSize = 10 << 20 // 10 MB

type AdImageHandler struct {
	Service *services.AdImageService
}

func (h *AdImageHandler) CreateAdImage(w http.ResponseWriter, r *http.Request) {
	var img models.AdImage
	if err := json.NewDecoder(r.Body).Decode(&img); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if img.AdID == 0 || img.ImageURL == "" {
		respondError(w, http.StatusBadRequest, "ad_id and image_url are required")
		return
	}
	created, err := h.Service.CreateAdImage(r.Context(), img)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "ad_id does not reference an existing ad")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create image")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UploadAdImage accepts a multipart file, pushes it to object storage and
// records the resulting URL.
func (h *AdImageHandler) UploadAdImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	adID, err := strconv.Atoi(r.FormValue("ad_id"))
	if err != nil || adID == 0 {
		respondError(w, http.StatusBadRequest, "ad_id is required")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	img, err := h.Service.UploadAdImage(r.Context(), adID, data, filepath.Ext(header.Filename))
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "ad_id does not reference an existing ad")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}
	respondJSON(w, http.StatusCreated, img)
}

func (h *AdImageHandler) GetImagesByAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	images, err := h.Service.GetImagesByAd(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}
	respondJSON(w, http.StatusOK, images)
}

func (h *AdImageHandler) DeleteAdImage(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid image ID")
		return
	}
	if err := h.Service.DeleteAdImage(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			respondError(w, http.StatusNotFound, "Image not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Image deleted successfully"})
}
