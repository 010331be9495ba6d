package registrationRepository

import (
	"context"
	"database/sql"
	"time"

	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type AttemptDB struct {
	ID         sql.NullString `db:"id"`
	SessionID  sql.NullString `db:"session_id"`
	Step       sql.NullInt64  `db:"step"`
	Transcript sql.NullString `db:"transcript"`
	Normalized sql.NullString `db:"normalized"`
	Accepted   sql.NullBool   `db:"accepted"`
	ErrorCode  sql.NullString `db:"error_code"`
	AudioFile  sql.NullString `db:"audio_file"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (r *attemptRepository) CreateAttempt(ctx context.Context, attempt entity.RegistrationAttempt) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         attempt.ID,
		"session_id": attempt.SessionID,
		"step":       attempt.Step,
		"transcript": attempt.Transcript,
		"normalized": attempt.Normalized,
		"accepted":   attempt.Accepted,
		"error_code": attempt.ErrorCode,
		"audio_file": attempt.AudioFile,
		"created_at": attempt.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateAttempt, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAttempt")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating recognition attempt")
		return err
	}

	return nil
}

func (r *attemptRepository) GetAttemptsBySessionID(ctx context.Context, sessionID string) ([]entity.RegistrationAttempt, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var attemptsDB []AttemptDB

	argsKV := map[string]interface{}{
		"session_id": sessionID,
	}

	query, args, err := sqlx.Named(queryGetAttemptsBySessionID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttemptsBySessionID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &attemptsDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAttemptsBySessionID execution err")
		return nil, err
	}

	attempts := make([]entity.RegistrationAttempt, 0, len(attemptsDB))
	for _, attemptDB := range attemptsDB {
		attempts = append(attempts, r.makeRegistrationAttempt(attemptDB))
	}

	return attempts, nil
}

func (r *attemptRepository) makeRegistrationAttempt(attemptDB AttemptDB) entity.RegistrationAttempt {
	return entity.RegistrationAttempt{
		ID:         attemptDB.ID.String,
		SessionID:  attemptDB.SessionID.String,
		Step:       int(attemptDB.Step.Int64),
		Transcript: attemptDB.Transcript.String,
		Normalized: attemptDB.Normalized.String,
		Accepted:   attemptDB.Accepted.Bool,
		ErrorCode:  attemptDB.ErrorCode.String,
		AudioFile:  attemptDB.AudioFile.String,
		CreatedAt:  attemptDB.CreatedAt,
	}
}
