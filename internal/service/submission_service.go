package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"creativestyle/internal/catalog"
	"creativestyle/internal/event"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

// SubmissionService runs the respondent side of the questionnaire
type SubmissionService struct {
	submissions repository.SubmissionRepo
	responses   repository.ResponseRepo
	catalog     *catalog.Catalog
	publisher   event.Publisher
	broadcaster Broadcaster
	styles      StyleRefresher
	log         *logger.Logger
}

// NewSubmissionService creates a new submission service. broadcaster may be nil.
func NewSubmissionService(
	submissions repository.SubmissionRepo,
	responses repository.ResponseRepo,
	cat *catalog.Catalog,
	publisher event.Publisher,
	broadcaster Broadcaster,
	log *logger.Logger,
) *SubmissionService {
	if broadcaster == nil {
		broadcaster = nopBroadcaster{}
	}
	return &SubmissionService{
		submissions: submissions,
		responses:   responses,
		catalog:     cat,
		publisher:   publisher,
		broadcaster: broadcaster,
		styles:      nopStyleRefresher{},
		log:         log,
	}
}

// SetStyleRefresher sets the hook that keeps style stats current for complete submissions
func (s *SubmissionService) SetStyleRefresher(r StyleRefresher) {
	if r == nil {
		r = nopStyleRefresher{}
	}
	s.styles = r
}

// Questions returns the full catalog in serving order
func (s *SubmissionService) Questions() []model.Question {
	return s.catalog.All()
}

// Start opens a new submission
func (s *SubmissionService) Start(ctx context.Context, req model.StartRequest) (*model.Submission, error) {
	sub := &model.Submission{
		ID:        uuid.NewString(),
		UserName:  strings.TrimSpace(req.Name),
		UserEmail: strings.TrimSpace(req.Email),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	if err := s.publisher.PublishSubmissionStarted(ctx, sub.ID); err != nil {
		s.log.Warn("publish submission started failed", "submission_id", sub.ID, "error", err)
	}
	s.broadcaster.BroadcastToAdmins(MsgSubmissionStarted, map[string]interface{}{
		"submission_id":   sub.ID,
		"user_name":       sub.UserName,
		"submission_time": sub.SubmissionTime,
	})
	s.log.Info("submission started", "submission_id", sub.ID)
	return sub, nil
}

// SubmitResponse validates one answer against the catalog and stores it,
// replacing any earlier answer to the same question.
func (s *SubmissionService) SubmitResponse(ctx context.Context, req model.SubmitResponseRequest) error {
	if req.SubmissionID == "" || req.QuestionID == "" {
		return fmt.Errorf("%w: submission_id and question_id are required", scoring.ErrMalformedInput)
	}
	q, ok := s.catalog.Lookup(req.QuestionID)
	if !ok {
		return fmt.Errorf("%w: unknown question %s", scoring.ErrMalformedInput, req.QuestionID)
	}

	resp := &model.Response{SubmissionID: req.SubmissionID, QuestionID: req.QuestionID}
	if q.IsScale() {
		if req.NumericResponse == nil {
			return fmt.Errorf("%w: question %s needs numeric_response", scoring.ErrMalformedInput, q.ID)
		}
		scale := s.catalog.Scale
		if !scale.Contains(*req.NumericResponse) {
			return fmt.Errorf("%w: question %s answered %d, want %d-%d",
				scoring.ErrMalformedInput, q.ID, *req.NumericResponse, scale.Min, scale.Max)
		}
		resp.NumericResponse = req.NumericResponse
	} else {
		if req.TextResponse == nil {
			return fmt.Errorf("%w: question %s needs text_response", scoring.ErrMalformedInput, q.ID)
		}
		resp.TextResponse = req.TextResponse
	}

	sub, err := s.submissions.GetByID(ctx, req.SubmissionID)
	if err != nil {
		return err
	}
	if err := s.responses.Save(ctx, resp); err != nil {
		return fmt.Errorf("save response: %w", err)
	}
	if sub.IsComplete && q.IsScale() {
		s.styles.RefreshStyle(ctx, sub.ID)
	}
	return nil
}

// Complete marks a submission as finished
func (s *SubmissionService) Complete(ctx context.Context, submissionID string) error {
	if err := s.submissions.MarkComplete(ctx, submissionID); err != nil {
		return err
	}

	if err := s.publisher.PublishSubmissionCompleted(ctx, submissionID); err != nil {
		s.log.Warn("publish submission completed failed", "submission_id", submissionID, "error", err)
	}
	s.styles.RefreshStyle(ctx, submissionID)
	s.broadcaster.BroadcastToAdmins(MsgSubmissionCompleted, map[string]string{"submission_id": submissionID})
	s.log.Info("submission completed", "submission_id", submissionID)
	return nil
}
