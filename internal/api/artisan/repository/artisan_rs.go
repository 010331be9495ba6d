package artisanRepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"ArtisanCraft/internal/api/artisan"
	"ArtisanCraft/internal/entity"
	contextPkg "ArtisanCraft/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ArtisanDB struct {
	ID                   sql.NullString  `db:"id"`
	UserID               sql.NullString  `db:"user_id"`
	BusinessName         sql.NullString  `db:"business_name"`
	Description          sql.NullString  `db:"description"`
	Specialties          sql.NullString  `db:"specialties"`
	Experience           sql.NullInt64   `db:"experience"`
	RegionState          sql.NullString  `db:"region_state"`
	RegionCity           sql.NullString  `db:"region_city"`
	CulturalBackground   sql.NullString  `db:"cultural_background"`
	Website              sql.NullString  `db:"website"`
	Instagram            sql.NullString  `db:"instagram"`
	Facebook             sql.NullString  `db:"facebook"`
	IsVerified           sql.NullBool    `db:"is_verified"`
	RatingAverage        sql.NullFloat64 `db:"rating_average"`
	RatingCount          sql.NullInt64   `db:"rating_count"`
	TotalSales           sql.NullInt64   `db:"total_sales"`
	VoiceRegistered      sql.NullBool    `db:"voice_registered"`
	RegistrationLanguage sql.NullString  `db:"registration_language"`
	JoinedAt             time.Time       `db:"joined_at"`
	CreatedAt            time.Time       `db:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at"`
}

func (r *artisanRepository) CreateArtisan(ctx context.Context, a entity.Artisan) error {
	requestID := contextPkg.GetRequestID(ctx)

	specialtiesJSON, err := json.Marshal(a.Specialties)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal artisan specialties")
		return err
	}

	argsKV := map[string]interface{}{
		"id":                    a.ID,
		"user_id":               a.UserID,
		"business_name":         a.BusinessName,
		"description":           a.Description,
		"specialties":           string(specialtiesJSON),
		"experience":            a.Experience,
		"region_state":          a.RegionState,
		"region_city":           a.RegionCity,
		"cultural_background":   a.CulturalBackground,
		"website":               a.Website,
		"instagram":             a.Instagram,
		"facebook":              a.Facebook,
		"is_verified":           a.IsVerified,
		"rating_average":        a.RatingAverage,
		"rating_count":          a.RatingCount,
		"total_sales":           a.TotalSales,
		"voice_registered":      a.VoiceRegistered,
		"registration_language": a.RegistrationLanguage,
		"joined_at":             a.JoinedAt,
		"created_at":            a.CreatedAt,
		"updated_at":            a.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateArtisan, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateArtisan")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating artisan")
		return err
	}

	return nil
}

func (r *artisanRepository) GetArtisanByID(ctx context.Context, id string) (entity.Artisan, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var artisanDB ArtisanDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetArtisanByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisanByID named query preparation err")
		return entity.Artisan{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&artisanDB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Artisan{}, artisan.ErrArtisanNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisanByID execution err")
		return entity.Artisan{}, err
	}

	return r.makeArtisan(artisanDB), nil
}

func (r *artisanRepository) GetArtisans(ctx context.Context, specialty string, limit, offset int) ([]entity.Artisan, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var artisansDB []ArtisanDB

	argsKV := map[string]interface{}{
		"specialty": specialty,
		"limit":     limit,
		"offset":    offset,
	}

	query, args, err := sqlx.Named(queryGetArtisans, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisans named query preparation err")
		return nil, 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &artisansDB, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisans execution err")
		return nil, 0, err
	}

	countQuery, countArgs, err := sqlx.Named(queryCountArtisans, map[string]interface{}{
		"specialty": specialty,
	})
	if err != nil {
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	var total int
	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetArtisans count err")
		return nil, 0, err
	}

	artisans := make([]entity.Artisan, 0, len(artisansDB))
	for _, artisanDB := range artisansDB {
		artisans = append(artisans, r.makeArtisan(artisanDB))
	}

	return artisans, total, nil
}

func (r *artisanRepository) makeArtisan(artisanDB ArtisanDB) entity.Artisan {
	var specialties []string
	if artisanDB.Specialties.Valid && artisanDB.Specialties.String != "" {
		json.Unmarshal([]byte(artisanDB.Specialties.String), &specialties)
	}

	return entity.Artisan{
		ID:                   artisanDB.ID.String,
		UserID:               artisanDB.UserID.String,
		BusinessName:         artisanDB.BusinessName.String,
		Description:          artisanDB.Description.String,
		Specialties:          specialties,
		Experience:           int(artisanDB.Experience.Int64),
		RegionState:          artisanDB.RegionState.String,
		RegionCity:           artisanDB.RegionCity.String,
		CulturalBackground:   artisanDB.CulturalBackground.String,
		Website:              artisanDB.Website.String,
		Instagram:            artisanDB.Instagram.String,
		Facebook:             artisanDB.Facebook.String,
		IsVerified:           artisanDB.IsVerified.Bool,
		RatingAverage:        artisanDB.RatingAverage.Float64,
		RatingCount:          int(artisanDB.RatingCount.Int64),
		TotalSales:           int(artisanDB.TotalSales.Int64),
		VoiceRegistered:      artisanDB.VoiceRegistered.Bool,
		RegistrationLanguage: artisanDB.RegistrationLanguage.String,
		JoinedAt:             artisanDB.JoinedAt,
		CreatedAt:            artisanDB.CreatedAt,
		UpdatedAt:            artisanDB.UpdatedAt,
	}
}
