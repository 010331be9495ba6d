package entity

import "time"

type SessionStatus string

const (
	SessionInProgress    SessionStatus = "in_progress"
	SessionReadyToSubmit SessionStatus = "ready_to_submit"
	SessionManualEntry   SessionStatus = "manual_entry"
	SessionSubmitted     SessionStatus = "submitted"
)

// RegistrationSession is the server-side state of one voice registration
// wizard run. Answers holds the normalized values for the six mapped fields;
// the password is kept only as a bcrypt hash and the confirmation transcript
// is never stored.
type RegistrationSession struct {
	ID               string            `json:"id"`
	Language         string            `json:"language"`
	CurrentStep      int               `json:"current_step"`
	Status           SessionStatus     `json:"status"`
	Answers          map[string]string `json:"answers"`
	PasswordHash     string            `json:"-"`
	RetryCount       int               `json:"retry_count"`
	AttemptID        string            `json:"attempt_id,omitempty"`
	AttemptStep      int               `json:"attempt_step"`
	AttemptExpiresAt time.Time         `json:"attempt_expires_at"`
	CreatedAt        time.Time         `json:"created_at"`
	LastActivity     time.Time         `json:"last_activity"`
}

// RegistrationAttempt is one recognition window outcome, kept for auditing
// the wizard flow. ErrorCode is empty when the answer was accepted.
type RegistrationAttempt struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	Step       int       `json:"step"`
	Transcript string    `json:"transcript"`
	Normalized string    `json:"normalized"`
	Accepted   bool      `json:"accepted"`
	ErrorCode  string    `json:"error_code,omitempty"`
	AudioFile  string    `json:"audio_file,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
