package artisanRepository

import (
	"context"

	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func (r *userRepository) CreateUser(ctx context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"password":         user.Password,
		"role":             user.Role,
		"phone":            user.Phone,
		"is_verified":      user.IsVerified,
		"voice_registered": user.VoiceRegistered,
		"created_at":       user.CreatedAt,
		"updated_at":       user.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating provisioned user")
		return err
	}

	return nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryEmailExists, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EmailExists named query preparation err")
		return false, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("EmailExists execution err")
		return false, err
	}

	return count > 0, nil
}
