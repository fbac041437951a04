package service

import (
	"context"

	"creativestyle/internal/cache"
	"creativestyle/internal/event"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

// ResultService computes results for stored submissions
type ResultService struct {
	engine      *scoring.Engine
	submissions repository.SubmissionRepo
	source      scoring.ResponseSource
	stats       cache.StatsCache
	publisher   event.Publisher
	broadcaster Broadcaster
	log         *logger.Logger
}

// NewResultService creates a new result service. stats and broadcaster may be nil.
func NewResultService(
	engine *scoring.Engine,
	submissions repository.SubmissionRepo,
	source scoring.ResponseSource,
	stats cache.StatsCache,
	publisher event.Publisher,
	broadcaster Broadcaster,
	log *logger.Logger,
) *ResultService {
	if broadcaster == nil {
		broadcaster = nopBroadcaster{}
	}
	return &ResultService{
		engine:      engine,
		submissions: submissions,
		source:      source,
		stats:       stats,
		publisher:   publisher,
		broadcaster: broadcaster,
		log:         log,
	}
}

// GetResults evaluates a submission. Side effects (stats, events, feed) never fail the call.
func (s *ResultService) GetResults(ctx context.Context, submissionID string) (*model.Result, error) {
	result, err := s.engine.Evaluate(ctx, s.source, submissionID)
	if err != nil {
		return nil, err
	}

	s.recordStyle(ctx, submissionID, result)
	if err := s.publisher.PublishResultsGenerated(ctx, submissionID, result); err != nil {
		s.log.Warn("publish results failed", "submission_id", submissionID, "error", err)
	}
	s.broadcaster.BroadcastToAdmins(MsgResultsGenerated, map[string]interface{}{
		"submission_id": submissionID,
		"overall_style": result.Labels.OverallStyle,
	})
	return result, nil
}

// RefreshStyle re-evaluates a submission and updates its style counter.
// It does nothing without a stats cache or for incomplete submissions.
func (s *ResultService) RefreshStyle(ctx context.Context, submissionID string) {
	if s.stats == nil {
		return
	}
	result, err := s.engine.Evaluate(ctx, s.source, submissionID)
	if err != nil {
		s.log.Warn("style refresh skipped", "submission_id", submissionID, "error", err)
		return
	}
	s.recordStyle(ctx, submissionID, result)
}

// recordStyle counts only complete submissions, matching the store recompute in AdminService.
func (s *ResultService) recordStyle(ctx context.Context, submissionID string, result *model.Result) {
	if s.stats == nil {
		return
	}
	sub, err := s.submissions.GetByID(ctx, submissionID)
	if err != nil {
		s.log.Warn("load submission for stats failed", "submission_id", submissionID, "error", err)
		return
	}
	if !sub.IsComplete {
		return
	}
	if err := s.stats.RecordStyle(ctx, submissionID, model.Style(result.Labels.OverallStyle)); err != nil {
		s.log.Warn("record style stats failed", "submission_id", submissionID, "error", err)
	}
}
