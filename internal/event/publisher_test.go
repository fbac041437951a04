package event

import (
	"context"
	"encoding/json"
	"testing"

	"creativestyle/internal/logger"
	"creativestyle/internal/model"
)

func TestDisabledPublisherIsNoop(t *testing.T) {
	p, err := NewEventPublisher("", "assessment.events", logger.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() {
		t.Fatal("publisher should be disabled")
	}

	ctx := context.Background()
	if err := p.PublishSubmissionStarted(ctx, "s1"); err != nil {
		t.Errorf("started: %v", err)
	}
	if err := p.PublishResultsGenerated(ctx, "s1", &model.Result{}); err != nil {
		t.Errorf("results: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestResultsEventPayload(t *testing.T) {
	res := &model.Result{
		Scores: model.DimensionScore{LearningScore: -3, ApplicationScore: 11},
		Labels: model.Labels{OverallStyle: "conceptual"},
	}
	e := NewResultsEvent("s9", res)
	if e.EventID == "" || e.Type != EventTypeResultsGenerated {
		t.Fatalf("event = %+v", e)
	}

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	if m["type"] != "results.generated" || m["overall_style"] != "conceptual" {
		t.Errorf("payload = %s", b)
	}
	if _, leaked := m["user_email"]; leaked {
		t.Error("event must not carry contact details")
	}
}
