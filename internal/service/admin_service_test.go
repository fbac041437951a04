package service

import (
	"context"
	"errors"
	"testing"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
)

func seedStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	ctx := context.Background()
	store := newMemStore()
	subs := []struct {
		id       string
		complete bool
		l1, a1   int
	}{
		{"a", true, 7, 1},  // +3 / +3 intuitive
		{"b", true, 1, 7},  // -3 / -3 pragmatic
		{"c", true, 6, 2},  // +2 / +2 intuitive
		{"d", false, 1, 1}, // incomplete, not counted
	}
	for _, s := range subs {
		if err := store.Create(ctx, &model.Submission{ID: s.id, IsComplete: s.complete}); err != nil {
			t.Fatal(err)
		}
		_ = store.Save(ctx, &model.Response{SubmissionID: s.id, QuestionID: "L1", NumericResponse: intPtr(s.l1)})
		_ = store.Save(ctx, &model.Response{SubmissionID: s.id, QuestionID: "A1", NumericResponse: intPtr(s.a1)})
	}
	return store
}

func TestAdminStatsRecomputed(t *testing.T) {
	store := seedStore(t)
	svc := NewAdminService(store, store, testEngine(t), nil, logger.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalSubmissions != 4 || stats.CompletedSubmissions != 3 {
		t.Errorf("totals = %d/%d", stats.TotalSubmissions, stats.CompletedSubmissions)
	}
	if stats.StyleCounts[model.StyleIntuitive] != 2 || stats.StyleCounts[model.StylePragmatic] != 1 {
		t.Errorf("style counts = %v", stats.StyleCounts)
	}
	if _, ok := stats.StyleCounts[model.StyleConceptual]; !ok {
		t.Error("every style should be present in counts")
	}
}

func TestAdminStatsFromCache(t *testing.T) {
	store := seedStore(t)
	cached := &memStats{counts: map[model.Style]int64{model.StyleDeductive: 9}, styles: map[string]model.Style{}}
	svc := NewAdminService(store, store, testEngine(t), cached, logger.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.StyleCounts[model.StyleDeductive] != 9 {
		t.Errorf("expected cached counts, got %v", stats.StyleCounts)
	}
}

func TestAdminSubmissionDetail(t *testing.T) {
	store := seedStore(t)
	svc := NewAdminService(store, store, testEngine(t), nil, logger.Nop())

	detail, err := svc.GetSubmission(context.Background(), "a")
	if err != nil {
		t.Fatal(err)
	}
	if detail.ID != "a" || len(detail.Responses) != 2 {
		t.Errorf("detail = %+v", detail)
	}

	if _, err := svc.GetSubmission(context.Background(), "zzz"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	done := false
	list, err := svc.ListSubmissions(context.Background(), model.SubmissionFilter{Complete: &done})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ID != "d" {
		t.Errorf("incomplete list = %v", list)
	}
}

func TestAdminSimulate(t *testing.T) {
	svc := NewAdminService(newMemStore(), newMemStore(), testEngine(t), nil, logger.Nop())
	res := svc.Simulate(model.SimulateRequest{LearningScore: 0, ApplicationScore: 0})
	if res.Labels.OverallStyle != "Intuitive Creative Style" {
		t.Errorf("overall style = %q", res.Labels.OverallStyle)
	}
	if res.DetailedProfile.StyleDescription != "explorer" {
		t.Errorf("profile = %+v", res.DetailedProfile)
	}
	if res.PlotURL != nil {
		t.Error("plot url must be null")
	}
}
