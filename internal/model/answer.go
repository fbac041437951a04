package model

import "time"

// Response is one stored answer of a submission. Exactly one of NumericResponse and
// TextResponse is set.
type Response struct {
	SubmissionID    string    `json:"submission_id" bson:"submissionId"`
	QuestionID      string    `json:"question_id" bson:"questionId"`
	NumericResponse *int      `json:"numeric_response" bson:"numericResponse,omitempty"`
	TextResponse    *string   `json:"text_response" bson:"textResponse,omitempty"`
	ResponseTime    time.Time `json:"response_time" bson:"responseTime"`
}

// SubmitResponseRequest is the body of POST /api/submit-response
type SubmitResponseRequest struct {
	SubmissionID    string  `json:"submission_id"`
	QuestionID      string  `json:"question_id"`
	NumericResponse *int    `json:"numeric_response"`
	TextResponse    *string `json:"text_response"`
}
