package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"creativestyle/internal/model"
	"creativestyle/internal/scoring"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func intPtr(v int) *int { return &v }

func TestSQLiteSubmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	sub := &model.Submission{ID: "sub-1", UserName: "Ada", UserEmail: "ada@example.com"}
	if err := s.Submissions.Create(ctx, sub); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sub.SubmissionTime.IsZero() {
		t.Error("submission time should be set")
	}

	got, err := s.Submissions.GetByID(ctx, "sub-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.UserName != "Ada" || got.IsComplete {
		t.Errorf("got %+v", got)
	}

	if err := s.Submissions.MarkComplete(ctx, "sub-1"); err != nil {
		t.Fatalf("MarkComplete: %v", err)
	}
	total, completed, err := s.Submissions.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || completed != 1 {
		t.Errorf("counts = %d/%d, want 1/1", total, completed)
	}

	if _, err := s.Submissions.GetByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Submissions.MarkComplete(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteListFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		sub := &model.Submission{ID: id, SubmissionTime: base.Add(time.Duration(i) * 24 * time.Hour)}
		if err := s.Submissions.Create(ctx, sub); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Submissions.MarkComplete(ctx, "b"); err != nil {
		t.Fatal(err)
	}

	all, err := s.Submissions.List(ctx, model.SubmissionFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != "c" {
		t.Errorf("expected newest first, got %d items starting %v", len(all), all)
	}

	done := true
	completed, err := s.Submissions.List(ctx, model.SubmissionFilter{Complete: &done})
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 1 || completed[0].ID != "b" {
		t.Errorf("complete filter = %v", completed)
	}

	from := base.Add(12 * time.Hour)
	to := base.Add(36 * time.Hour)
	window, err := s.Submissions.List(ctx, model.SubmissionFilter{From: &from, To: &to})
	if err != nil {
		t.Fatal(err)
	}
	if len(window) != 1 || window[0].ID != "b" {
		t.Errorf("date filter = %v", window)
	}
}

func TestSQLiteResponsesUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.Submissions.Create(ctx, &model.Submission{ID: "sub"}); err != nil {
		t.Fatal(err)
	}
	text := "a mural"
	saves := []*model.Response{
		{SubmissionID: "sub", QuestionID: "L1", NumericResponse: intPtr(2)},
		{SubmissionID: "sub", QuestionID: "L1", NumericResponse: intPtr(6)},
		{SubmissionID: "sub", QuestionID: "A1", NumericResponse: intPtr(3)},
		{SubmissionID: "sub", QuestionID: "T1", TextResponse: &text},
	}
	for _, r := range saves {
		if err := s.Responses.Save(ctx, r); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	rows, err := s.Responses.GetBySubmissionID(ctx, "sub")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("expected 3 rows after upsert, got %d", len(rows))
	}

	nums, err := s.Responses.GetNumericResponses(ctx, "sub")
	if err != nil {
		t.Fatal(err)
	}
	if len(nums) != 2 || nums["L1"] != 6 || nums["A1"] != 3 {
		t.Errorf("numeric responses = %v", nums)
	}

	_, err = s.Responses.GetNumericResponses(ctx, "ghost")
	if !errors.Is(err, scoring.ErrDataUnavailable) {
		t.Errorf("unknown submission: expected ErrDataUnavailable, got %v", err)
	}
}

func TestSQLiteNonIntegerStoredValues(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	db := s.Responses.(*sqliteResponseRepo).db

	tests := []struct {
		name      string
		raw       interface{}
		want      int
		malformed bool
	}{
		{"integer", 5, 5, false},
		{"integral real", 6.0, 6, false},
		{"numeric text", "3", 3, false},
		{"fractional real", 4.5, 0, true},
		{"text", "abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := "sub-" + tt.name
			if err := s.Submissions.Create(ctx, &model.Submission{ID: id}); err != nil {
				t.Fatal(err)
			}
			if err := s.Responses.Save(ctx, &model.Response{SubmissionID: id, QuestionID: "L1", NumericResponse: intPtr(1)}); err != nil {
				t.Fatal(err)
			}
			err := db.Exec("UPDATE submission_responses SET numeric_response = ? WHERE submission_id = ?", tt.raw, id).Error
			if err != nil {
				t.Fatal(err)
			}

			nums, err := s.Responses.GetNumericResponses(ctx, id)
			if tt.malformed {
				if !errors.Is(err, scoring.ErrMalformedInput) {
					t.Fatalf("expected ErrMalformedInput, got %v", err)
				}
				if errors.Is(err, scoring.ErrDataUnavailable) {
					t.Errorf("malformed value reported as unavailable: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetNumericResponses: %v", err)
			}
			if nums["L1"] != tt.want {
				t.Errorf("L1 = %d, want %d", nums["L1"], tt.want)
			}
		})
	}
}
