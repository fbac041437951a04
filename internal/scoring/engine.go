package scoring

import (
	"context"
	"errors"
	"fmt"

	"creativestyle/internal/config"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
)

// ResponseSource returns the numeric answers stored for a submission.
type ResponseSource interface {
	GetNumericResponses(ctx context.Context, submissionID string) (map[string]int, error)
}

// Engine ties aggregation, classification and profile resolution together.
// All state is read-only after construction.
type Engine struct {
	questions []model.Question
	scale     config.Scale
	matrix    *PreferenceMatrix
	log       *logger.Logger
}

func NewEngine(questions []model.Question, scale config.Scale, matrix *PreferenceMatrix, log *logger.Logger) (*Engine, error) {
	if !scale.Valid() {
		return nil, fmt.Errorf("%w: invalid scale %d-%d center %d", ErrConfiguration, scale.Min, scale.Max, scale.Center)
	}
	if matrix == nil {
		return nil, fmt.Errorf("%w: nil preference matrix", ErrConfiguration)
	}
	if log == nil {
		log = logger.Nop()
	}
	qs := make([]model.Question, len(questions))
	copy(qs, questions)
	return &Engine{questions: qs, scale: scale, matrix: matrix, log: log}, nil
}

// Scale returns the response scale the engine validates against
func (e *Engine) Scale() config.Scale {
	return e.scale
}

// Score aggregates already-fetched responses
func (e *Engine) Score(responses map[string]int) (model.DimensionScore, error) {
	return Aggregate(responses, e.questions, e.scale)
}

// Evaluate reads a submission's answers and produces its full result.
func (e *Engine) Evaluate(ctx context.Context, src ResponseSource, submissionID string) (*model.Result, error) {
	responses, err := src.GetNumericResponses(ctx, submissionID)
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) || errors.Is(err, ErrMalformedInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	score, err := e.Score(responses)
	if err != nil {
		return nil, fmt.Errorf("submission %s: %w", submissionID, err)
	}

	c := Classify(score)
	result := &model.Result{
		Scores:          score,
		Labels:          c.Labels(),
		DetailedProfile: e.profile(c),
	}
	return result, nil
}

// Simulate builds a result for arbitrary scores using the display phrasing of the labels.
func (e *Engine) Simulate(score model.DimensionScore) *model.Result {
	c := Classify(score)
	return &model.Result{
		Scores:          score,
		Labels:          c.DisplayLabels(),
		DetailedProfile: e.profile(c),
	}
}

func (e *Engine) profile(c model.Classification) model.StyleProfile {
	p, err := e.matrix.Resolve(c)
	if err != nil {
		e.log.Warn("profile lookup missed", "style", c.OverallStyle, "error", err)
	}
	return p
}
