package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bazaarBack/internal/models"
	"bazaarBack/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var report models.Report
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if report.AdID == 0 || report.ReportedBy == 0 || report.Reason == "" {
		respondError(w, http.StatusBadRequest, "ad_id, reported_by and reason are required")
		return
	}
	created, err := h.Service.CreateReport(r.Context(), report)
	if err != nil {
		if isForeignKeyConstraintError(err) {
			respondError(w, http.StatusBadRequest, "ad_id or reported_by does not exist")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create report")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (h *ReportHandler) GetReports(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r)
	reports, err := h.Service.GetReports(r.Context(), limit, offset)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) GetReportsForAd(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid ad ID")
		return
	}
	reports, err := h.Service.GetReportsForAd(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch reports")
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report ID")
		return
	}
	if err := h.Service.DeleteReport(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrReportNotFound) {
			respondError(w, http.StatusNotFound, "Report not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete report")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}
