package profileRepository

import (
	"Dermalens/internal/api/profile"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type SkinProfileDB struct {
	ID               sql.NullString `db:"id"`
	UserID           sql.NullString `db:"user_id"`
	SkinType         sql.NullString `db:"skin_type"`
	SkinTone         sql.NullString `db:"skin_tone"`
	AcneSeverity     sql.NullString `db:"acne_severity"`
	PoreSize         sql.NullString `db:"pore_size"`
	SensitivityLevel sql.NullString `db:"sensitivity_level"`
	PrimaryConcerns  pq.StringArray `db:"primary_concerns"`
	Conditions       pq.StringArray `db:"pre_existing_conditions"`
	Allergies        pq.StringArray `db:"allergies"`
	DietType         sql.NullString `db:"diet_type"`
	WaterIntake      sql.NullString `db:"water_intake"`
	SleepHours       sql.NullString `db:"sleep_hours"`
	SunExposure      sql.NullString `db:"sun_exposure"`
	RoutineFrequency sql.NullString `db:"routine_frequency"`
	RoutineType      sql.NullString `db:"routine_type"`
	SkinGoals        pq.StringArray `db:"skin_goals"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

func (r *skinProfileRepository) UpsertSkinProfile(c context.Context, p entity.SkinProfile) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":                      p.ID,
		"user_id":                 p.UserID,
		"skin_type":               p.SkinType,
		"skin_tone":               p.SkinTone,
		"acne_severity":           p.AcneSeverity,
		"pore_size":               p.PoreSize,
		"sensitivity_level":       p.SensitivityLevel,
		"primary_concerns":        p.PrimaryConcerns,
		"pre_existing_conditions": p.Conditions,
		"allergies":               p.Allergies,
		"diet_type":               p.DietType,
		"water_intake":            p.WaterIntake,
		"sleep_hours":             p.SleepHours,
		"sun_exposure":            p.SunExposure,
		"routine_frequency":       p.RoutineFrequency,
		"routine_type":            p.RoutineType,
		"skin_goals":              p.SkinGoals,
		"created_at":              time.Now(),
		"updated_at":              time.Now(),
	}

	query, args, err := sqlx.Named(queryUpsertSkinProfile, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertSkinProfile named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when upserting skin profile")
		return err
	}

	return nil
}

func (r *skinProfileRepository) GetSkinProfileByUserID(c context.Context, userID string) (entity.SkinProfile, error) {
	requestID := contextPkg.GetRequestID(c)
	var row SkinProfileDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSkinProfileByUserID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSkinProfileByUserID named query preparation err")
		return entity.SkinProfile{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.SkinProfile{}, profile.ErrSkinProfileNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSkinProfileByUserID execution err")
		return entity.SkinProfile{}, err
	}

	return makeSkinProfile(row), nil
}

func makeSkinProfile(row SkinProfileDB) entity.SkinProfile {
	return entity.SkinProfile{
		ID:               row.ID.String,
		UserID:           row.UserID.String,
		SkinType:         row.SkinType.String,
		SkinTone:         row.SkinTone.String,
		AcneSeverity:     row.AcneSeverity.String,
		PoreSize:         row.PoreSize.String,
		SensitivityLevel: row.SensitivityLevel.String,
		PrimaryConcerns:  row.PrimaryConcerns,
		Conditions:       row.Conditions,
		Allergies:        row.Allergies,
		DietType:         row.DietType.String,
		WaterIntake:      row.WaterIntake.String,
		SleepHours:       row.SleepHours.String,
		SunExposure:      row.SunExposure.String,
		RoutineFrequency: row.RoutineFrequency.String,
		RoutineType:      row.RoutineType.String,
		SkinGoals:        row.SkinGoals,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
