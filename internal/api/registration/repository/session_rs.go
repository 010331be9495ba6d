package registrationRepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ArtisanCraft/internal/api/registration"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SessionDB struct {
	ID               sql.NullString `db:"id"`
	Language         sql.NullString `db:"language"`
	CurrentStep      sql.NullInt64  `db:"current_step"`
	Status           sql.NullString `db:"status"`
	Answers          sql.NullString `db:"answers"`
	PasswordHash     sql.NullString `db:"password_hash"`
	RetryCount       sql.NullInt64  `db:"retry_count"`
	AttemptID        sql.NullString `db:"attempt_id"`
	AttemptStep      sql.NullInt64  `db:"attempt_step"`
	AttemptExpiresAt sql.NullTime   `db:"attempt_expires_at"`
	CreatedAt        time.Time      `db:"created_at"`
	LastActivity     time.Time      `db:"last_activity"`
}

func (r *sessionRepository) CreateSession(ctx context.Context, session entity.RegistrationSession) error {
	requestID := contextPkg.GetRequestID(ctx)

	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal session answers")
		return err
	}

	argsKV := map[string]interface{}{
		"id":                 session.ID,
		"language":           session.Language,
		"current_step":       session.CurrentStep,
		"status":             string(session.Status),
		"answers":            string(answersJSON),
		"password_hash":      session.PasswordHash,
		"retry_count":        session.RetryCount,
		"attempt_id":         session.AttemptID,
		"attempt_step":       session.AttemptStep,
		"attempt_expires_at": session.AttemptExpiresAt,
		"created_at":         session.CreatedAt,
		"last_activity":      session.LastActivity,
	}

	query, args, err := sqlx.Named(queryCreateSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSession")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating registration session")
		return err
	}

	return nil
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (entity.RegistrationSession, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var sessionDB SessionDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSessionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionByID named query preparation err")
		return entity.RegistrationSession{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&sessionDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"session_id": id,
			}).Debug("GetSessionByID session not found")
			return entity.RegistrationSession{}, registration.ErrSessionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSessionByID execution err")
		return entity.RegistrationSession{}, err
	}

	return r.makeRegistrationSession(sessionDB), nil
}

func (r *sessionRepository) UpdateSession(ctx context.Context, session entity.RegistrationSession) error {
	requestID := contextPkg.GetRequestID(ctx)

	answersJSON, err := json.Marshal(session.Answers)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal session answers")
		return err
	}

	argsKV := map[string]interface{}{
		"id":                 session.ID,
		"current_step":       session.CurrentStep,
		"status":             string(session.Status),
		"answers":            string(answersJSON),
		"password_hash":      session.PasswordHash,
		"retry_count":        session.RetryCount,
		"attempt_id":         session.AttemptID,
		"attempt_step":       session.AttemptStep,
		"attempt_expires_at": session.AttemptExpiresAt,
		"last_activity":      time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateSession, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSession named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSession execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateSession rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         session.ID,
		}).Warn("UpdateSession no rows affected")
		return registration.ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) CleanupOldSessions(ctx context.Context) error {
	requestID := contextPkg.GetRequestID(ctx)
	cutoffTime := time.Now().Add(-24 * time.Hour)

	argsKV := map[string]interface{}{
		"cutoff_time": cutoffTime,
	}

	query, args, err := sqlx.Named(queryDeleteOldSessions, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CleanupOldSessions named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CleanupOldSessions execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err == nil {
		r.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"rows_affected": rowsAffected,
		}).Info("Cleaned up stale registration sessions")
	}

	return err
}

func (r *sessionRepository) makeRegistrationSession(sessionDB SessionDB) entity.RegistrationSession {
	answers := make(map[string]string)
	if sessionDB.Answers.Valid && sessionDB.Answers.String != "" {
		if err := json.Unmarshal([]byte(sessionDB.Answers.String), &answers); err != nil {
			r.log.WithFields(logrus.Fields{
				"session_id": sessionDB.ID.String,
				"error":      err.Error(),
			}).Error("Failed to decode stored session answers")
		}
	}

	return entity.RegistrationSession{
		ID:               sessionDB.ID.String,
		Language:         sessionDB.Language.String,
		CurrentStep:      int(sessionDB.CurrentStep.Int64),
		Status:           entity.SessionStatus(sessionDB.Status.String),
		Answers:          answers,
		PasswordHash:     sessionDB.PasswordHash.String,
		RetryCount:       int(sessionDB.RetryCount.Int64),
		AttemptID:        sessionDB.AttemptID.String,
		AttemptStep:      int(sessionDB.AttemptStep.Int64),
		AttemptExpiresAt: sessionDB.AttemptExpiresAt.Time,
		CreatedAt:        sessionDB.CreatedAt,
		LastActivity:     sessionDB.LastActivity,
	}
}
