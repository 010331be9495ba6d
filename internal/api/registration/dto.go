package registration

import (
	"time"
)

type StartSessionRequest struct {
	Language string `json:"language" validate:"required,min=2,max=10"`
}

type SessionResponse struct {
	ID           string            `json:"id"`
	Language     string            `json:"language"`
	CurrentStep  int               `json:"current_step"`
	Status       string            `json:"status"`
	Question     string            `json:"question,omitempty"`
	PromptAudio  string            `json:"prompt_audio,omitempty"`
	Answers      map[string]string `json:"answers"`
	RetryCount   int               `json:"retry_count"`
	AttemptID    string            `json:"attempt_id,omitempty"`
	AttemptStep  *int              `json:"attempt_step,omitempty"`
	AttemptEnds  *time.Time        `json:"attempt_expires_at,omitempty"`
	LastActivity time.Time         `json:"last_activity"`
}

type AttemptResponse struct {
	AttemptID   string    `json:"attempt_id"`
	Step        int       `json:"step"`
	Question    string    `json:"question"`
	PromptAudio string    `json:"prompt_audio,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AttemptResultResponse struct {
	AttemptID  string           `json:"attempt_id"`
	Step       int              `json:"step"`
	Transcript string           `json:"transcript"`
	Normalized string           `json:"normalized"`
	Accepted   bool             `json:"accepted"`
	Skipped    bool             `json:"skipped,omitempty"`
	Error      string           `json:"error,omitempty"`
	Session    *SessionResponse `json:"session"`
}

type AttemptRecord struct {
	AttemptID  string    `json:"attempt_id"`
	Step       int       `json:"step"`
	Transcript string    `json:"transcript,omitempty"`
	Normalized string    `json:"normalized,omitempty"`
	Accepted   bool      `json:"accepted"`
	ErrorCode  string    `json:"error_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ManualAnswerRequest struct {
	Step  int    `json:"step" validate:"min=0,max=6"`
	Value string `json:"value" validate:"required,max=200"`
}

type SubmitResponse struct {
	ArtisanID      string           `json:"artisan_id"`
	ClosingMessage string           `json:"closing_message"`
	ClosingAudio   string           `json:"closing_audio,omitempty"`
	Session        *SessionResponse `json:"session"`
}

type SessionEvent struct {
	Type      string           `json:"type"`
	SessionID string           `json:"session_id"`
	Step      int              `json:"step"`
	Message   string           `json:"message,omitempty"`
	Session   *SessionResponse `json:"session,omitempty"`
	At        time.Time        `json:"at"`
}

const (
	EventSessionStarted   = "session_started"
	EventAttemptOpened    = "attempt_opened"
	EventAnswerAccepted   = "answer_accepted"
	EventAnswerRejected   = "answer_rejected"
	EventAttemptExpired   = "attempt_expired"
	EventManualFallback   = "manual_entry_required"
	EventReadyToSubmit    = "ready_to_submit"
	EventSessionSubmitted = "session_submitted"
	EventSessionRestarted = "session_restarted"
)
