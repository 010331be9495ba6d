package registrationService

import (
	"fmt"
	"time"

	"ArtisanCraft/internal/api/artisan"
	"ArtisanCraft/internal/api/registration"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"
	"ArtisanCraft/pkg/wizard"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// SubmitManualAnswer is the typed fallback once voice retries are exhausted.
// It accepts the answer for the session's current step, runs the same
// normalization and validation as the voice path, and puts the wizard back
// into voice mode.
func (s *registrationService) SubmitManualAnswer(ctx context.Context, sessionID string, req registration.ManualAnswerRequest) (registration.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return registration.SessionResponse{}, err
	}

	session, err := repo.Sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return registration.SessionResponse{}, err
	}

	if session.Status != entity.SessionManualEntry {
		return registration.SessionResponse{}, registration.ErrSessionNotInProgress
	}
	if req.Step != session.CurrentStep {
		return registration.SessionResponse{}, registration.ErrStaleAttempt
	}

	step := session.CurrentStep

	if step == wizard.ConfirmationStep {
		if err := s.bcryptUtils.ComparePassword(session.PasswordHash, req.Value); err != nil {
			return registration.SessionResponse{}, registration.ErrPasswordMismatch
		}

		session.Status = entity.SessionReadyToSubmit
		session.RetryCount = 0
	} else {
		field, ok := wizard.FieldForStep(step)
		if !ok {
			return registration.SessionResponse{}, registration.ErrSessionNotInProgress
		}

		normalized := wizard.Normalize(field, req.Value)
		if err := wizard.ValidateField(field, normalized); err != nil {
			return registration.SessionResponse{}, registration.ErrValidation(err)
		}

		if field == wizard.FieldPassword {
			hash, err := s.bcryptUtils.HashPassword(normalized)
			if err != nil {
				return registration.SessionResponse{}, err
			}
			session.PasswordHash = hash
		} else {
			session.Answers[field] = normalized
		}

		session.CurrentStep = step + 1
		session.Status = entity.SessionInProgress
		session.RetryCount = 0
	}

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store manual answer")
		return registration.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"step":       step,
	}).Info("Manual answer accepted")

	resp := s.makeSessionResponse(session)
	eventType := registration.EventAnswerAccepted
	if session.Status == entity.SessionReadyToSubmit {
		eventType = registration.EventReadyToSubmit
	}
	s.broker.Publish(registration.SessionEvent{
		Type:      eventType,
		SessionID: sessionID,
		Step:      step,
		Session:   &resp,
	})

	return resp, nil
}

// ConfirmAndSubmit provisions the artisan account from the collected answers.
// The payload never includes the confirmation transcript, and the password
// travels only as its bcrypt hash. A provisioning failure leaves the session
// ready to submit so the caller can retry without re-answering.
func (s *registrationService) ConfirmAndSubmit(ctx context.Context, sessionID string) (registration.SubmitResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return registration.SubmitResponse{}, err
	}

	session, err := repo.Sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return registration.SubmitResponse{}, err
	}

	if session.Status == entity.SessionSubmitted {
		return registration.SubmitResponse{}, registration.ErrAlreadySubmitted
	}
	if session.Status != entity.SessionReadyToSubmit {
		return registration.SubmitResponse{}, registration.ErrNotReadyToSubmit
	}

	input := artisan.ProvisionInput{
		Name:            session.Answers[wizard.FieldName],
		Location:        session.Answers[wizard.FieldLocation],
		Category:        session.Answers[wizard.FieldCategory],
		Phone:           session.Answers[wizard.FieldPhone],
		Email:           session.Answers[wizard.FieldEmail],
		PasswordHash:    session.PasswordHash,
		Language:        session.Language,
		VoiceRegistered: true,
	}

	provisioned, err := s.artisans.ProvisionPrehashed(ctx, input)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Error("Provisioning failed, session stays ready to submit")
		return registration.SubmitResponse{}, fmt.Errorf("%w: %v", registration.ErrSubmissionFailed, err)
	}

	session.Status = entity.SessionSubmitted
	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to mark session submitted")
		return registration.SubmitResponse{}, err
	}

	closingMessage := wizard.ClosingMessage(session.Language)
	closingAudio := s.closingAudioURL(ctx, session.Language, closingMessage)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"artisan_id": provisioned.ArtisanID,
	}).Info("Registration session submitted")

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventSessionSubmitted,
		SessionID: sessionID,
		Step:      session.CurrentStep,
		Message:   closingMessage,
		Session:   &resp,
	})

	return registration.SubmitResponse{
		ArtisanID:      provisioned.ArtisanID,
		ClosingMessage: closingMessage,
		ClosingAudio:   closingAudio,
		Session:        &resp,
	}, nil
}

func (s *registrationService) closingAudioURL(ctx context.Context, language, message string) string {
	requestID := contextPkg.GetRequestID(ctx)

	data, err := s.synthesizer.GenerateAudio(ctx, message)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to synthesize closing message")
		return ""
	}

	fileName := fmt.Sprintf("prompts/%s-closing-%d.mp3", language, time.Now().Unix())
	url, err := s.s3Client.UploadFileFromBytes(data, fileName, "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload closing audio")
		return ""
	}

	return url
}
