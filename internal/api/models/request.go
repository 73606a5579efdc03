package models

import "time"

// UserRequest is one question sent to the assistant together with its answer.
// UserID holds the token's identity claim and is not checked against users.
type UserRequest struct {
	ID        int64     `db:"id"`
	UserID    string    `db:"user_id"`
	Question  string    `db:"question"`
	Response  string    `db:"response"`
	Timestamp time.Time `db:"timestamp"`
}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse is the body returned by POST /ask.
type AskResponse struct {
	Response string `json:"response"`
}

// HistoryEntry is the public projection of a UserRequest.
type HistoryEntry struct {
	Question string `json:"question"`
	Response string `json:"response"`
}
