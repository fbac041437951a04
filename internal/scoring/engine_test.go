package scoring

import (
	"context"
	"errors"
	"sync"
	"testing"

	"creativestyle/internal/config"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
)

type fakeSource struct {
	responses map[string]map[string]int
	err       error
}

func (f *fakeSource) GetNumericResponses(_ context.Context, id string) (map[string]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.responses[id]
	if !ok {
		return nil, ErrDataUnavailable
	}
	return r, nil
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testQuestions(), config.DefaultScale(), testMatrix(t), logger.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestEngineEvaluate(t *testing.T) {
	e := newTestEngine(t)
	src := &fakeSource{responses: map[string]map[string]int{
		"sub-1": {"L1": 7, "A2": 1},
	}}

	res, err := e.Evaluate(context.Background(), src, "sub-1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Scores.LearningScore != 3 || res.Scores.ApplicationScore != 3 {
		t.Errorf("scores = %+v", res.Scores)
	}
	if res.Labels.OverallStyle != "intuitive" || res.Labels.LearningDirection != "Experience" {
		t.Errorf("labels = %+v", res.Labels)
	}
	if res.DetailedProfile.PreferenceDescription != "slight experience" {
		t.Errorf("profile = %+v", res.DetailedProfile)
	}
	if res.PlotURL != nil {
		t.Error("plot url should be nil")
	}
}

func TestEngineEvaluateErrors(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Evaluate(context.Background(), &fakeSource{}, "missing")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("unknown id: expected ErrDataUnavailable, got %v", err)
	}

	_, err = e.Evaluate(context.Background(), &fakeSource{err: errors.New("connection refused")}, "x")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("store failure: expected ErrDataUnavailable, got %v", err)
	}

	src := &fakeSource{responses: map[string]map[string]int{"bad": {"L1": 9}}}
	_, err = e.Evaluate(context.Background(), src, "bad")
	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("out of scale: expected ErrMalformedInput, got %v", err)
	}
}

func TestEngineMissingStyleIsAbsorbed(t *testing.T) {
	e := newTestEngine(t)
	src := &fakeSource{responses: map[string]map[string]int{"c": {"L1": 1, "A1": 6}}}

	res, err := e.Evaluate(context.Background(), src, "c")
	if err != nil {
		t.Fatalf("missing style should not fail: %v", err)
	}
	if res.Labels.OverallStyle != "conceptual" {
		t.Errorf("style = %s", res.Labels.OverallStyle)
	}
	if res.DetailedProfile.StyleDescription != "" || res.DetailedProfile.Strengths == nil {
		t.Errorf("expected empty profile, got %+v", res.DetailedProfile)
	}
}

func TestEngineSimulate(t *testing.T) {
	e := newTestEngine(t)
	res := e.Simulate(model.DimensionScore{LearningScore: -22, ApplicationScore: 5})
	if res.Labels.OverallStyle != "Conceptual Creative Style" {
		t.Errorf("overall style = %q", res.Labels.OverallStyle)
	}
	if res.Labels.LearningDirection != "to Learn Through Contemplation" {
		t.Errorf("learning direction = %q", res.Labels.LearningDirection)
	}
	if res.Labels.LearningStrength != "strong" || res.Labels.ApplicationStrength != "slight" {
		t.Errorf("strengths = %s / %s", res.Labels.LearningStrength, res.Labels.ApplicationStrength)
	}
}

func TestEngineConcurrentEvaluate(t *testing.T) {
	e := newTestEngine(t)
	src := &fakeSource{responses: map[string]map[string]int{"s": {"L1": 7, "L2": 1, "A1": 2}}}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := e.Evaluate(context.Background(), src, "s")
			if err != nil {
				t.Error(err)
				return
			}
			if res.Scores.LearningScore != 6 || res.Scores.ApplicationScore != -2 {
				t.Errorf("scores = %+v", res.Scores)
			}
		}()
	}
	wg.Wait()
}

func TestNewEngineRejectsBadScale(t *testing.T) {
	_, err := NewEngine(nil, config.Scale{Min: 5, Max: 1}, testMatrix(t), nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
