package registrationService

import (
	"time"

	"ArtisanCraft/internal/api/registration"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"
	"ArtisanCraft/pkg/wizard"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *registrationService) StartSession(ctx context.Context, req registration.StartSessionRequest) (registration.SessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !wizard.SupportedLanguage(req.Language) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"language":   req.Language,
		}).Warn("Unsupported wizard language")
		return registration.SessionResponse{}, registration.ErrUnsupportedLanguage
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return registration.SessionResponse{}, err
	}

	// Opportunistic purge of stale sessions, best effort.
	if err := repo.Sessions.CleanupOldSessions(ctx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to clean up old sessions")
	}

	sessionID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ULID")
		return registration.SessionResponse{}, err
	}

	now := time.Now()
	session := entity.RegistrationSession{
		ID:           sessionID,
		Language:     req.Language,
		CurrentStep:  0,
		Status:       entity.SessionInProgress,
		Answers:      make(map[string]string),
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := repo.Sessions.CreateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create registration session")
		return registration.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
		"language":   req.Language,
	}).Info("Registration session started")

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventSessionStarted,
		SessionID: sessionID,
		Step:      0,
		Session:   &resp,
	})

	return resp, nil
}

func (s *registrationService) GetSession(ctx context.Context, sessionID string) (registration.SessionResponse, error) {
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

	return s.makeSessionResponse(session), nil
}

// ListAttempts returns the recognition history of a session. Transcripts for
// the password steps are stored empty, so nothing sensitive can surface here.
func (s *registrationService) ListAttempts(ctx context.Context, sessionID string) ([]registration.AttemptRecord, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	if _, err := repo.Sessions.GetSessionByID(ctx, sessionID); err != nil {
		return nil, err
	}

	attempts, err := repo.Attempts.GetAttemptsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	records := make([]registration.AttemptRecord, 0, len(attempts))
	for _, attempt := range attempts {
		records = append(records, registration.AttemptRecord{
			AttemptID:  attempt.ID,
			Step:       attempt.Step,
			Transcript: attempt.Transcript,
			Normalized: attempt.Normalized,
			Accepted:   attempt.Accepted,
			ErrorCode:  attempt.ErrorCode,
			CreatedAt:  attempt.CreatedAt,
		})
	}

	return records, nil
}

// Restart clears all collected answers and returns the wizard to step zero.
// It is valid from every state, including after a submission.
func (s *registrationService) Restart(ctx context.Context, sessionID string) (registration.SessionResponse, error) {
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

	session.CurrentStep = 0
	session.Status = entity.SessionInProgress
	session.Answers = make(map[string]string)
	session.PasswordHash = ""
	session.RetryCount = 0
	session.AttemptID = ""
	session.AttemptStep = 0
	session.AttemptExpiresAt = time.Time{}

	if err := repo.Sessions.UpdateSession(ctx, session); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to restart registration session")
		return registration.SessionResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Info("Registration session restarted")

	resp := s.makeSessionResponse(session)
	s.broker.Publish(registration.SessionEvent{
		Type:      registration.EventSessionRestarted,
		SessionID: sessionID,
		Step:      0,
		Session:   &resp,
	})

	return resp, nil
}

func (s *registrationService) makeSessionResponse(session entity.RegistrationSession) registration.SessionResponse {
	resp := registration.SessionResponse{
		ID:           session.ID,
		Language:     session.Language,
		CurrentStep:  session.CurrentStep,
		Status:       string(session.Status),
		Answers:      session.Answers,
		RetryCount:   session.RetryCount,
		LastActivity: session.LastActivity,
	}

	if session.Status == entity.SessionInProgress || session.Status == entity.SessionManualEntry {
		if question, ok := wizard.QuestionForStep(session.Language, session.CurrentStep); ok {
			resp.Question = question
		}
	}

	if session.AttemptID != "" {
		resp.AttemptID = session.AttemptID
		step := session.AttemptStep
		resp.AttemptStep = &step
		expires := session.AttemptExpiresAt
		resp.AttemptEnds = &expires
	}

	return resp
}
