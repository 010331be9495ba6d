package authRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ArtisanCraft/internal/api/auth"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID              sql.NullString `db:"id"`
	Name            sql.NullString `db:"name"`
	Email           sql.NullString `db:"email"`
	Password        sql.NullString `db:"password"`
	Role            sql.NullString `db:"role"`
	Phone           sql.NullString `db:"phone"`
	IsVerified      sql.NullBool   `db:"is_verified"`
	VoiceRegistered sql.NullBool   `db:"voice_registered"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

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
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userDB UserDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetUserByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&userDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByID execution err")
		return entity.User{}, err
	}

	return r.makeUser(userDB), nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var userDB UserDB

	argsKV := map[string]interface{}{
		"email": email,
	}

	query, args, err := sqlx.Named(queryGetUserByEmail, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&userDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetUserByEmail execution err")
		return entity.User{}, err
	}

	return r.makeUser(userDB), nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user entity.User) error {
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
		"updated_at":       time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateUser execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) makeUser(userDB UserDB) entity.User {
	return entity.User{
		ID:              userDB.ID.String,
		Name:            userDB.Name.String,
		Email:           userDB.Email.String,
		Password:        userDB.Password.String,
		Role:            userDB.Role.String,
		Phone:           userDB.Phone.String,
		IsVerified:      userDB.IsVerified.Bool,
		VoiceRegistered: userDB.VoiceRegistered.Bool,
		CreatedAt:       userDB.CreatedAt,
		UpdatedAt:       userDB.UpdatedAt,
	}
}
