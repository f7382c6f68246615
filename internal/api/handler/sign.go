package handler

import (
	"encoding/json"
	"net/http"

	"github.com/remiblancher/padsign/internal/api/dto"
	apierrors "github.com/remiblancher/padsign/internal/api/errors"
	"github.com/remiblancher/padsign/internal/api/service"
)

// SignHandler handles signing-related HTTP requests.
type SignHandler struct {
	service *service.SignService
}

// NewSignHandler creates a new SignHandler.
func NewSignHandler(svc *service.SignService) *SignHandler {
	return &SignHandler{service: svc}
}

// Sign handles POST /api/v1/sign
func (h *SignHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req dto.SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("Invalid JSON request body"))
		return
	}
	if req.Document == nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("document is required"))
		return
	}
	if req.Certificate == nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("certificate is required"))
		return
	}

	resp, err := h.service.Sign(r.Context(), &req)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Validate handles POST /api/v1/validate
func (h *SignHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("Invalid JSON request body"))
		return
	}
	if req.Certificate == nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("certificate is required"))
		return
	}

	resp, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// Inspect handles POST /api/v1/inspect
func (h *SignHandler) Inspect(w http.ResponseWriter, r *http.Request) {
	var req dto.InspectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("Invalid JSON request body"))
		return
	}
	if req.Certificate == nil {
		respondError(w, http.StatusBadRequest, apierrors.NewBadRequest("certificate is required"))
		return
	}

	resp, err := h.service.Inspect(r.Context(), &req)
	if err != nil {
		status, apiErr := apierrors.MapError(err)
		respondError(w, status, apiErr)
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
