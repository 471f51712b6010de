package entity

import (
	"time"

	"github.com/lib/pq"
)

// SkinProfile is the user's self-declared skin questionnaire. It is read-only
// input to the recommendation stage; absence of a profile means no exclusions.
type SkinProfile struct {
	ID               string         `db:"id"`
	UserID           string         `db:"user_id"`
	SkinType         string         `db:"skin_type"`
	SkinTone         string         `db:"skin_tone"`
	AcneSeverity     string         `db:"acne_severity"`
	PoreSize         string         `db:"pore_size"`
	SensitivityLevel string         `db:"sensitivity_level"`
	PrimaryConcerns  pq.StringArray `db:"primary_concerns"`
	Conditions       pq.StringArray `db:"pre_existing_conditions"`
	Allergies        pq.StringArray `db:"allergies"`
	DietType         string         `db:"diet_type"`
	WaterIntake      string         `db:"water_intake"`
	SleepHours       string         `db:"sleep_hours"`
	SunExposure      string         `db:"sun_exposure"`
	RoutineFrequency string         `db:"routine_frequency"`
	RoutineType      string         `db:"routine_type"`
	SkinGoals        pq.StringArray `db:"skin_goals"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// UserImage is the metadata row for one face image stored in object storage.
type UserImage struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	StoragePath string    `db:"storage_path"`
	Bucket      string    `db:"bucket"`
	CreatedAt   time.Time `db:"created_at"`
}
