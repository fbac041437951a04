package handler

import (
	"net/http"

	"creativestyle/internal/service"
)

// QuestionHandler serves the question catalog
type QuestionHandler struct {
	submissionSvc *service.SubmissionService
}

func NewQuestionHandler(submissionSvc *service.SubmissionService) *QuestionHandler {
	return &QuestionHandler{submissionSvc: submissionSvc}
}

// List handles GET /api/questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions := h.submissionSvc.Questions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"total":     len(questions),
	})
}
