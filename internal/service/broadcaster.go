package service

import "context"

// Broadcaster pushes admin feed messages (implemented by the ws hub, avoids import cycle)
type Broadcaster interface {
	BroadcastToAdmins(msgType string, payload interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastToAdmins(string, interface{}) {}

// Feed message types
const (
	MsgSubmissionStarted   = "submission_started"
	MsgSubmissionCompleted = "submission_completed"
	MsgResultsGenerated    = "results_generated"
)

// StyleRefresher re-records a submission's style after its answers or status change
type StyleRefresher interface {
	RefreshStyle(ctx context.Context, submissionID string)
}

type nopStyleRefresher struct{}

func (nopStyleRefresher) RefreshStyle(context.Context, string) {}
