package service

import (
	"context"
	"errors"

	"creativestyle/internal/cache"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

// AdminService backs the admin dashboard
type AdminService struct {
	submissions repository.SubmissionRepo
	responses   repository.ResponseRepo
	engine      *scoring.Engine
	stats       cache.StatsCache
	log         *logger.Logger
}

// NewAdminService creates a new admin service. stats may be nil, in which case
// style counts are recomputed from the store.
func NewAdminService(
	submissions repository.SubmissionRepo,
	responses repository.ResponseRepo,
	engine *scoring.Engine,
	stats cache.StatsCache,
	log *logger.Logger,
) *AdminService {
	return &AdminService{
		submissions: submissions,
		responses:   responses,
		engine:      engine,
		stats:       stats,
		log:         log,
	}
}

// ListSubmissions returns submissions newest first
func (s *AdminService) ListSubmissions(ctx context.Context, filter model.SubmissionFilter) ([]*model.Submission, error) {
	return s.submissions.List(ctx, filter)
}

// GetSubmission returns a submission with all of its responses
func (s *AdminService) GetSubmission(ctx context.Context, id string) (*model.SubmissionDetail, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.responses.GetBySubmissionID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.SubmissionDetail{Submission: *sub, Responses: make([]model.Response, 0, len(rows))}
	for _, r := range rows {
		detail.Responses = append(detail.Responses, *r)
	}
	return detail, nil
}

// Simulate runs arbitrary scores through the classifier and resolver
func (s *AdminService) Simulate(req model.SimulateRequest) *model.Result {
	return s.engine.Simulate(model.DimensionScore{
		LearningScore:    req.LearningScore,
		ApplicationScore: req.ApplicationScore,
	})
}

// Stats returns dashboard counters
func (s *AdminService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	total, completed, err := s.submissions.Count(ctx)
	if err != nil {
		return nil, err
	}

	var counts map[model.Style]int64
	if s.stats != nil {
		counts, err = s.stats.StyleCounts(ctx)
		if err != nil {
			s.log.Warn("style counts from cache failed, recomputing", "error", err)
			counts = nil
		}
	}
	if counts == nil {
		counts, err = s.recomputeStyleCounts(ctx)
		if err != nil {
			return nil, err
		}
	}

	return &model.DashboardStats{
		TotalSubmissions:     total,
		CompletedSubmissions: completed,
		StyleCounts:          counts,
	}, nil
}

func (s *AdminService) recomputeStyleCounts(ctx context.Context) (map[model.Style]int64, error) {
	done := true
	subs, err := s.submissions.List(ctx, model.SubmissionFilter{Complete: &done})
	if err != nil {
		return nil, err
	}

	counts := make(map[model.Style]int64, len(model.AllStyles))
	for _, st := range model.AllStyles {
		counts[st] = 0
	}
	for _, sub := range subs {
		result, err := s.engine.Evaluate(ctx, s.responses, sub.ID)
		if err != nil {
			if errors.Is(err, scoring.ErrMalformedInput) {
				s.log.Warn("skipping submission with malformed responses", "submission_id", sub.ID)
				continue
			}
			return nil, err
		}
		counts[model.Style(result.Labels.OverallStyle)]++
	}
	return counts, nil
}
