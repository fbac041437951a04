package repository

import (
	"context"
	"fmt"

	"creativestyle/internal/model"
	"creativestyle/internal/scoring"
)

// ErrNotFound is returned when a submission id is unknown. It matches
// scoring.ErrDataUnavailable so the engine can propagate it unchanged.
var ErrNotFound = fmt.Errorf("%w: submission not found", scoring.ErrDataUnavailable)

// SubmissionRepo persists submission headers
type SubmissionRepo interface {
	Create(ctx context.Context, s *model.Submission) error
	GetByID(ctx context.Context, id string) (*model.Submission, error)
	List(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error)
	MarkComplete(ctx context.Context, id string) error
	Count(ctx context.Context) (total, completed int64, err error)
}

// ResponseRepo persists answers, one per (submission, question)
type ResponseRepo interface {
	Save(ctx context.Context, r *model.Response) error
	GetBySubmissionID(ctx context.Context, submissionID string) ([]*model.Response, error)
	GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error)
}

// Store bundles both repositories over one backend
type Store struct {
	Submissions SubmissionRepo
	Responses   ResponseRepo
	close       func(ctx context.Context) error
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func numericMap(rows []*model.Response) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		if r.NumericResponse != nil {
			out[r.QuestionID] = *r.NumericResponse
		}
	}
	return out
}
