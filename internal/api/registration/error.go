package registration

import "ArtisanCraft/pkg/response"

var (
	ErrSessionNotFound        = response.NewError(404, "registration session not found")
	ErrUnsupportedLanguage    = response.NewError(400, "unsupported language")
	ErrSessionNotInProgress   = response.NewError(409, "registration session is not accepting answers")
	ErrNoActiveAttempt        = response.NewError(409, "no recognition attempt is open for this session")
	ErrStaleAttempt           = response.NewError(409, "recognition attempt has been superseded")
	ErrAttemptExpired         = response.NewError(408, "recognition attempt timed out waiting for speech")
	ErrInvalidAudioFile       = response.NewError(400, "invalid audio file")
	ErrUnsupportedFormat      = response.NewError(400, "unsupported audio format")
	ErrNoSpeechDetected       = response.NewError(422, "no speech detected in the audio")
	ErrTranscriptionFailed    = response.NewError(500, "failed to transcribe audio")
	ErrSpeechGenerationFailed = response.NewError(500, "failed to generate speech")
	ErrPasswordMismatch       = response.NewError(422, "password confirmation does not match")
	ErrNotReadyToSubmit       = response.NewError(409, "registration session is not ready to submit")
	ErrAlreadySubmitted       = response.NewError(409, "registration session has already been submitted")
	ErrManualEntryRequired    = response.NewError(409, "too many failed attempts, manual entry required")
	ErrSubmissionFailed       = response.NewError(502, "failed to provision artisan account")
)

// ErrValidation wraps a field validation failure in a 422 response error.
func ErrValidation(err error) error {
	return response.NewError(422, err.Error())
}
