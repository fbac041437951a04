package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/service"
	"creativestyle/internal/transport/rest/middleware"
)

// AdminHandler handles dashboard endpoints
type AdminHandler struct {
	adminSvc *service.AdminService
	log      *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminSvc *service.AdminService, log *logger.Logger) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, log: log}
}

// ListSubmissions handles GET /api/admin/submissions?status=&date_from=&date_to=
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	subs, err := h.adminSvc.ListSubmissions(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.log, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"submissions": subs})
}

// GetSubmission handles GET /api/admin/submissions/{submissionId}
func (h *AdminHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["submissionId"]
	detail, err := h.adminSvc.GetSubmission(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.log, err, http.StatusBadRequest)
		return
	}
	h.log.Debug("admin viewed submission",
		"admin", middleware.GetAdminUsername(r.Context()),
		"submission_id", id,
	)
	writeJSON(w, http.StatusOK, detail)
}

// Simulate handles POST /api/admin/simulate
func (h *AdminHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req model.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "learning_score and application_score must be integers")
		return
	}
	h.log.Debug("score simulation",
		"admin", middleware.GetAdminUsername(r.Context()),
		"learning_score", req.LearningScore,
		"application_score", req.ApplicationScore,
	)
	writeJSON(w, http.StatusOK, h.adminSvc.Simulate(req))
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func parseFilter(r *http.Request) (model.SubmissionFilter, error) {
	var f model.SubmissionFilter
	q := r.URL.Query()

	if s := q.Get("status"); s != "" {
		complete, err := strconv.ParseBool(s)
		if err != nil {
			return f, fmt.Errorf("invalid status %q", s)
		}
		f.Complete = &complete
	}
	if s := q.Get("date_from"); s != "" {
		t, _, err := parseDate(s)
		if err != nil {
			return f, fmt.Errorf("invalid date_from %q", s)
		}
		f.From = &t
	}
	if s := q.Get("date_to"); s != "" {
		t, dateOnly, err := parseDate(s)
		if err != nil {
			return f, fmt.Errorf("invalid date_to %q", s)
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		f.To = &t
	}
	return f, nil
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates (UTC).
func parseDate(s string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), false, nil
	}
	t, err := time.Parse("2006-01-02", s)
	return t, true, err
}
