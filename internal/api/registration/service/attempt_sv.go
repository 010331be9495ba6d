package registrationService

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"ArtisanCraft/internal/api/registration"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"
	"ArtisanCraft/pkg/wizard"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// attemptWindow is how long one recognition attempt stays open waiting for
// captured speech.
const attemptWindow = 15 * time.Second

const promptCacheTTL = 24 * time.Hour

// OpenAttempt synthesizes the prompt for the current step and only then opens
// a recognition window, so listening can never start before the question has
// been spoken. Opening a new attempt supersedes any attempt still open on the
// session.
func (s *registrationService) OpenAttempt(ctx context.Context, sessionID string) (registration.AttemptResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return registration.AttemptResponse{}, err
	}

	session, err := repo.Sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return registration.AttemptResponse{}, err
	}

	if session.Status == entity.SessionManualEntry {
		return registration.AttemptResponse{}, registration.ErrManualEntryRequired
	}
	if session.Status != entity.SessionInProgress {
		return registration.AttemptResponse{}, registration.ErrSessionNotInProgress
	}

	question, ok := wizard.QuestionForStep(session.Language, session.CurrentStep)
	if !ok {
		return registration.AttemptResponse{}, registration.ErrSessionNotInProgress
	}

	promptAudio := s.promptAudioURL(ctx, session.Language, session.CurrentStep, question)

	attemptID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate attempt ULID")
		return registration.AttemptResponse{}, err
	}

	expiresAt := time.Now().Add(attemptWindow)

	if session.AttemptID != "" {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"session_id":  sessionID,
			"superseded":  session.AttemptID,
			"new_attempt": attemptID,
		}).Debug("Superseding open recognition attempt")
	}

	session.AttemptID = attemptID
	session.AttemptStep = session.CurrentStep
	session.AttemptExpiresAt = expiresAt

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to open recognition attempt")
		return registration.AttemptResponse{}, err
	}

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventAttemptOpened,
		SessionID: sessionID,
		Step:      session.CurrentStep,
		Message:   question,
		Session:   &resp,
	})

	return registration.AttemptResponse{
		AttemptID:   attemptID,
		Step:        session.CurrentStep,
		Question:    question,
		PromptAudio: promptAudio,
		ExpiresAt:   expiresAt,
	}, nil
}

// SubmitAttempt closes a recognition window with captured audio. The step the
// answer applies to is the one captured when the attempt was opened, so a
// late result can never be attributed to the wrong question.
func (s *registrationService) SubmitAttempt(ctx context.Context, sessionID string, attemptID string, file *multipart.FileHeader) (registration.AttemptResultResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return registration.AttemptResultResponse{}, err
	}

	session, err := repo.Sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return registration.AttemptResultResponse{}, err
	}

	if session.AttemptID == "" {
		return registration.AttemptResultResponse{}, registration.ErrNoActiveAttempt
	}
	if session.AttemptID != attemptID {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"attempt_id": attemptID,
		}).Warn("Result for superseded recognition attempt discarded")
		return registration.AttemptResultResponse{}, registration.ErrStaleAttempt
	}

	step := session.AttemptStep

	if time.Now().After(session.AttemptExpiresAt) {
		s.closeAttempt(&session)
		if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
			return registration.AttemptResultResponse{}, err
		}
		s.recordAttempt(ctx, repo, attemptID, sessionID, step, "", "", false, "attempt_expired", "")

		resp := s.makeSessionResponse(session)
		s.broker.Publish(registration.SessionEvent{
			Type:      registration.EventAttemptExpired,
			SessionID: sessionID,
			Step:      step,
			Session:   &resp,
		})
		return registration.AttemptResultResponse{}, registration.ErrAttemptExpired
	}

	if err := s.utils.ValidateAudioFile(file); err != nil {
		return registration.AttemptResultResponse{}, registration.ErrInvalidAudioFile
	}

	data, err := readMultipartFile(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to read audio file")
		return registration.AttemptResultResponse{}, registration.ErrInvalidAudioFile
	}

	audioURL := s.archiveAttemptAudio(ctx, file)

	transcript, err := s.transcriber.TranscribeAudio(ctx, data, file.Filename, session.Language)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe attempt audio")
		s.recordAttempt(ctx, repo, attemptID, sessionID, step, "", "", false, "transcription_failed", audioURL)
		return registration.AttemptResultResponse{}, registration.ErrTranscriptionFailed
	}

	if transcript == "" {
		return s.rejectAnswer(ctx, repo, session, attemptID, step, "", "", "no_speech", registration.ErrNoSpeechDetected.Error(), audioURL)
	}

	if step == wizard.ConfirmationStep {
		return s.handleConfirmation(ctx, repo, session, attemptID, transcript, audioURL)
	}

	field, ok := wizard.FieldForStep(step)
	if !ok {
		return registration.AttemptResultResponse{}, registration.ErrNoActiveAttempt
	}

	skipped := wizard.IsSkip(transcript)
	normalized := ""
	if !skipped {
		normalized = wizard.Normalize(field, transcript)
	}

	if err := wizard.ValidateField(field, normalized); err != nil {
		return s.rejectAnswer(ctx, repo, session, attemptID, step, transcript, normalized, "validation_failed", err.Error(), audioURL)
	}

	return s.acceptAnswer(ctx, repo, session, attemptID, step, field, transcript, normalized, skipped, audioURL)
}

func (s *registrationService) handleConfirmation(ctx context.Context, repo repoClient, session entity.RegistrationSession, attemptID, transcript, audioURL string) (registration.AttemptResultResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.bcryptUtils.ComparePassword(session.PasswordHash, transcript); err != nil {
		return s.rejectAnswer(ctx, repo, session, attemptID, wizard.ConfirmationStep, "", "", "password_mismatch",
			registration.ErrPasswordMismatch.Error(), audioURL)
	}

	s.closeAttempt(&session)
	session.Status = entity.SessionReadyToSubmit
	session.RetryCount = 0

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark session ready to submit")
		return registration.AttemptResultResponse{}, err
	}

	// The confirmation transcript is never persisted.
	s.recordAttempt(ctx, repo, attemptID, session.ID, wizard.ConfirmationStep, "", "", true, "", audioURL)

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventReadyToSubmit,
		SessionID: session.ID,
		Step:      wizard.ConfirmationStep,
		Session:   &resp,
	})

	return registration.AttemptResultResponse{
		AttemptID: attemptID,
		Step:      wizard.ConfirmationStep,
		Accepted:  true,
		Session:   &resp,
	}, nil
}

func (s *registrationService) acceptAnswer(ctx context.Context, repo repoClient, session entity.RegistrationSession, attemptID string, step int, field, transcript, normalized string, skipped bool, audioURL string) (registration.AttemptResultResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if field == wizard.FieldPassword {
		hash, err := s.bcryptUtils.HashPassword(normalized)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to hash wizard password")
			return registration.AttemptResultResponse{}, err
		}
		session.PasswordHash = hash
	} else {
		session.Answers[field] = normalized
	}

	s.closeAttempt(&session)
	session.CurrentStep = step + 1
	session.RetryCount = 0

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store accepted answer")
		return registration.AttemptResultResponse{}, err
	}

	storedTranscript := transcript
	storedNormalized := normalized
	if field == wizard.FieldPassword {
		storedTranscript = ""
		storedNormalized = ""
	}
	s.recordAttempt(ctx, repo, attemptID, session.ID, step, storedTranscript, storedNormalized, true, "", audioURL)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"step":       step,
		"field":      field,
		"skipped":    skipped,
	}).Info("Wizard answer accepted")

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventAnswerAccepted,
		SessionID: session.ID,
		Step:      step,
		Session:   &resp,
	})

	return registration.AttemptResultResponse{
		AttemptID:  attemptID,
		Step:       step,
		Transcript: storedTranscript,
		Normalized: storedNormalized,
		Accepted:   true,
		Skipped:    skipped,
		Session:    &resp,
	}, nil
}

// rejectAnswer closes the attempt, bumps the retry counter and, once the
// bound is hit, parks the session in manual entry instead of re-prompting
// forever.
func (s *registrationService) rejectAnswer(ctx context.Context, repo repoClient, session entity.RegistrationSession, attemptID string, step int, transcript, normalized, errorCode, message, audioURL string) (registration.AttemptResultResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.closeAttempt(&session)
	session.RetryCount++

	eventType := registration.EventAnswerRejected
	if session.RetryCount >= s.maxRetries {
		session.Status = entity.SessionManualEntry
		eventType = registration.EventManualFallback
	}

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store rejected answer")
		return registration.AttemptResultResponse{}, err
	}

	s.recordAttempt(ctx, repo, attemptID, session.ID, step, transcript, normalized, false, errorCode, audioURL)

	s.log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"session_id":  session.ID,
		"step":        step,
		"error_code":  errorCode,
		"retry_count": session.RetryCount,
	}).Warn("Wizard answer rejected")

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      eventType,
		SessionID: session.ID,
		Step:      step,
		Message:   message,
		Session:   &resp,
	})

	return registration.AttemptResultResponse{
		AttemptID:  attemptID,
		Step:       step,
		Transcript: transcript,
		Normalized: normalized,
		Accepted:   false,
		Error:      message,
		Session:    &resp,
	}, nil
}

func (s *registrationService) closeAttempt(session *entity.RegistrationSession) {
	session.AttemptID = ""
	session.AttemptStep = 0
	session.AttemptExpiresAt = time.Time{}
}

func (s *registrationService) recordAttempt(ctx context.Context, repo repoClient, attemptID, sessionID string, step int, transcript, normalized string, accepted bool, errorCode, audioURL string) {
	attempt := entity.RegistrationAttempt{
		ID:         attemptID,
		SessionID:  sessionID,
		Step:       step,
		Transcript: transcript,
		Normalized: normalized,
		Accepted:   accepted,
		ErrorCode:  errorCode,
		AudioFile:  audioURL,
		CreatedAt:  time.Now(),
	}

	if err := repo.Attempts.CreateAttempt(ctx, attempt); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to record recognition attempt")
	}
}

// promptAudioURL returns cached prompt audio for a language and step,
// synthesizing and uploading it on a cache miss. Failure is not fatal: the
// attempt still opens with the text prompt only.
func (s *registrationService) promptAudioURL(ctx context.Context, language string, step int, question string) string {
	requestID := contextPkg.GetRequestID(ctx)

	if url, err := s.redisServer.GetPromptAudio(ctx, language, step); err == nil && url != "" {
		return url
	}

	data, err := s.synthesizer.GenerateAudio(ctx, question)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"language":   language,
			"step":       step,
			"error":      err.Error(),
		}).Warn("Failed to synthesize prompt audio")
		return ""
	}

	fileName := fmt.Sprintf("prompts/%s-step%d.mp3", language, step)
	url, err := s.s3Client.UploadFileFromBytes(data, fileName, "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload prompt audio")
		return ""
	}

	if err := s.redisServer.SetPromptAudio(ctx, language, step, url, promptCacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to cache prompt audio")
	}

	return url
}

func (s *registrationService) archiveAttemptAudio(ctx context.Context, file *multipart.FileHeader) string {
	url, err := s.s3Client.UploadFile(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to archive attempt audio")
		return ""
	}
	return url
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return data, nil
}
