package model

import "time"

// Submission is one respondent's pass through the questionnaire
type Submission struct {
	ID             string    `json:"submission_id" bson:"_id"`
	UserName       string    `json:"user_name" bson:"userName"`
	UserEmail      string    `json:"user_email" bson:"userEmail"`
	SubmissionTime time.Time `json:"submission_time" bson:"submissionTime"`
	IsComplete     bool      `json:"is_complete" bson:"isComplete"`
}

// SubmissionDetail is a submission together with every stored response
type SubmissionDetail struct {
	Submission
	Responses []Response `json:"responses"`
}

// SubmissionFilter narrows the admin listing. Nil fields are ignored.
type SubmissionFilter struct {
	Complete *bool
	From     *time.Time
	To       *time.Time
}

// StartRequest is the body of POST /api/start
type StartRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardStats backs the admin dashboard
type DashboardStats struct {
	TotalSubmissions     int64           `json:"total_submissions"`
	CompletedSubmissions int64           `json:"completed_submissions"`
	StyleCounts          map[Style]int64 `json:"style_counts"`
}
