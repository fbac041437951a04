package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/service"
)

// SubmissionHandler handles the respondent flow
type SubmissionHandler struct {
	submissionSvc *service.SubmissionService
	log           *logger.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionSvc *service.SubmissionService, log *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{submissionSvc: submissionSvc, log: log}
}

// Start handles POST /api/start
func (h *SubmissionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.submissionSvc.Start(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"submission_id": sub.ID,
		"status":        "success",
	})
}

// SubmitResponse handles POST /api/submit-response
func (h *SubmissionHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.submissionSvc.SubmitResponse(r.Context(), req); err != nil {
		writeServiceError(w, h.log, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Response recorded",
	})
}

// Complete handles POST /api/complete/{submissionId}
func (h *SubmissionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["submissionId"]

	if err := h.submissionSvc.Complete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"status":  "error",
				"message": "Submission not found",
			})
			return
		}
		h.log.Error("complete submission failed", "submission_id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Could not complete submission",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Submission marked as complete",
	})
}
