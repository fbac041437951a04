package service

import (
	"context"
	"errors"
	"testing"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
	"creativestyle/internal/repository"
	"creativestyle/internal/scoring"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func newTestSubmissionService(t *testing.T) (*SubmissionService, *repository.MemoryStore, *recordingPublisher, *recordingBroadcaster) {
	t.Helper()
	store := newMemStore()
	pub := &recordingPublisher{}
	bc := &recordingBroadcaster{}
	return NewSubmissionService(store, store, testCatalog(t), pub, bc, logger.Nop()), store, pub, bc
}

func TestSubmissionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, store, pub, bc := newTestSubmissionService(t)

	sub, err := svc.Start(ctx, model.StartRequest{Name: " Ada ", Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sub.ID == "" || sub.UserName != "Ada" {
		t.Fatalf("submission = %+v", sub)
	}

	answers := []model.SubmitResponseRequest{
		{SubmissionID: sub.ID, QuestionID: "L1", NumericResponse: intPtr(2)},
		{SubmissionID: sub.ID, QuestionID: "L1", NumericResponse: intPtr(6)},
		{SubmissionID: sub.ID, QuestionID: "T1", TextResponse: strPtr("a mural")},
	}
	for _, a := range answers {
		if err := svc.SubmitResponse(ctx, a); err != nil {
			t.Fatalf("SubmitResponse(%s): %v", a.QuestionID, err)
		}
	}
	nums, err := store.GetNumericResponses(ctx, sub.ID)
	if err != nil {
		t.Fatal(err)
	}
	if nums["L1"] != 6 || len(nums) != 1 {
		t.Errorf("numeric responses = %v", nums)
	}

	if err := svc.Complete(ctx, sub.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, _ := store.GetByID(ctx, sub.ID)
	if !got.IsComplete {
		t.Error("submission should be complete")
	}

	if len(pub.events) != 2 || pub.events[0] != "submission.started" || pub.events[1] != "submission.completed" {
		t.Errorf("events = %v", pub.events)
	}
	if len(bc.messages) != 2 || bc.messages[1] != MsgSubmissionCompleted {
		t.Errorf("broadcasts = %v", bc.messages)
	}
}

func TestSubmitResponseValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestSubmissionService(t)
	sub, err := svc.Start(ctx, model.StartRequest{})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		req  model.SubmitResponseRequest
		want error
	}{
		{"missing ids", model.SubmitResponseRequest{}, scoring.ErrMalformedInput},
		{"unknown question", model.SubmitResponseRequest{SubmissionID: sub.ID, QuestionID: "Z9", NumericResponse: intPtr(3)}, scoring.ErrMalformedInput},
		{"below scale", model.SubmitResponseRequest{SubmissionID: sub.ID, QuestionID: "L1", NumericResponse: intPtr(0)}, scoring.ErrMalformedInput},
		{"above scale", model.SubmitResponseRequest{SubmissionID: sub.ID, QuestionID: "A1", NumericResponse: intPtr(8)}, scoring.ErrMalformedInput},
		{"scale without number", model.SubmitResponseRequest{SubmissionID: sub.ID, QuestionID: "L1", TextResponse: strPtr("7")}, scoring.ErrMalformedInput},
		{"text without text", model.SubmitResponseRequest{SubmissionID: sub.ID, QuestionID: "T1"}, scoring.ErrMalformedInput},
		{"unknown submission", model.SubmitResponseRequest{SubmissionID: "ghost", QuestionID: "L1", NumericResponse: intPtr(4)}, repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.SubmitResponse(ctx, tt.req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCompleteUnknown(t *testing.T) {
	svc, _, pub, _ := newTestSubmissionService(t)
	if err := svc.Complete(context.Background(), "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Errorf("no event expected, got %v", pub.events)
	}
}
