package event

import (
	"time"

	"github.com/google/uuid"

	"creativestyle/internal/model"
)

type EventType string

const (
	EventTypeSubmissionStarted   EventType = "submission.started"
	EventTypeSubmissionCompleted EventType = "submission.completed"
	EventTypeResultsGenerated    EventType = "results.generated"
)

// SubmissionEvent marks a lifecycle change of a submission. Contact details are never included.
type SubmissionEvent struct {
	EventID      string    `json:"event_id"`
	Type         EventType `json:"type"`
	SubmissionID string    `json:"submission_id"`
	Timestamp    time.Time `json:"timestamp"`
}

// ResultsEvent is emitted when a result has been computed for a submission
type ResultsEvent struct {
	EventID      string               `json:"event_id"`
	Type         EventType            `json:"type"`
	SubmissionID string               `json:"submission_id"`
	Scores       model.DimensionScore `json:"scores"`
	OverallStyle string               `json:"overall_style"`
	Timestamp    time.Time            `json:"timestamp"`
}

func NewSubmissionEvent(t EventType, submissionID string) *SubmissionEvent {
	return &SubmissionEvent{
		EventID:      uuid.NewString(),
		Type:         t,
		SubmissionID: submissionID,
		Timestamp:    time.Now().UTC(),
	}
}

func NewResultsEvent(submissionID string, result *model.Result) *ResultsEvent {
	return &ResultsEvent{
		EventID:      uuid.NewString(),
		Type:         EventTypeResultsGenerated,
		SubmissionID: submissionID,
		Scores:       result.Scores,
		OverallStyle: result.Labels.OverallStyle,
		Timestamp:    time.Now().UTC(),
	}
}
