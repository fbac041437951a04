package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"creativestyle/internal/logger"
	"creativestyle/internal/service"
)

// ResultHandler serves computed results
type ResultHandler struct {
	resultSvc *service.ResultService
	log       *logger.Logger
}

func NewResultHandler(resultSvc *service.ResultService, log *logger.Logger) *ResultHandler {
	return &ResultHandler{resultSvc: resultSvc, log: log}
}

// Get handles GET /api/results/{submissionId}
func (h *ResultHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["submissionId"]

	result, err := h.resultSvc.GetResults(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log.With("submission_id", id), err, http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
