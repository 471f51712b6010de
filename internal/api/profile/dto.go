package profile

import "time"

type SkinProfileRequest struct {
	SkinType         string   `json:"skin_type" validate:"omitempty,oneof=normal dry oily combination sensitive"`
	SkinTone         string   `json:"skin_tone" validate:"omitempty,oneof=fair light medium tan dark deep"`
	AcneSeverity     string   `json:"acne_severity" validate:"omitempty,oneof=none mild moderate severe"`
	PoreSize         string   `json:"pore_size" validate:"omitempty,oneof=small medium large"`
	SensitivityLevel string   `json:"sensitivity_level" validate:"omitempty,oneof=low moderate high"`
	PrimaryConcerns  []string `json:"primary_concerns"`
	Conditions       []string `json:"pre_existing_conditions"`
	Allergies        []string `json:"allergies"`
	DietType         string   `json:"diet_type" validate:"omitempty,oneof=omnivore vegetarian vegan pescatarian"`
	WaterIntake      string   `json:"water_intake" validate:"omitempty,oneof=low moderate high"`
	SleepHours       string   `json:"sleep_hours"`
	SunExposure      string   `json:"sun_exposure" validate:"omitempty,oneof=minimal moderate high"`
	RoutineFrequency string   `json:"routine_frequency" validate:"omitempty,oneof=daily alternating_days weekly"`
	RoutineType      string   `json:"routine_type" validate:"omitempty,oneof=minimal standard extensive"`
	SkinGoals        []string `json:"skin_goals"`
}

type SkinProfileResponse struct {
	ID               string    `json:"id"`
	SkinType         string    `json:"skin_type,omitempty"`
	SkinTone         string    `json:"skin_tone,omitempty"`
	AcneSeverity     string    `json:"acne_severity,omitempty"`
	PoreSize         string    `json:"pore_size,omitempty"`
	SensitivityLevel string    `json:"sensitivity_level,omitempty"`
	PrimaryConcerns  []string  `json:"primary_concerns,omitempty"`
	Conditions       []string  `json:"pre_existing_conditions,omitempty"`
	Allergies        []string  `json:"allergies,omitempty"`
	DietType         string    `json:"diet_type,omitempty"`
	WaterIntake      string    `json:"water_intake,omitempty"`
	SleepHours       string    `json:"sleep_hours,omitempty"`
	SunExposure      string    `json:"sun_exposure,omitempty"`
	RoutineFrequency string    `json:"routine_frequency,omitempty"`
	RoutineType      string    `json:"routine_type,omitempty"`
	SkinGoals        []string  `json:"skin_goals,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=255"`
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Username        string    `json:"username,omitempty"`
	ProfilePhotoURL string    `json:"profile_photo_url,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UserImageResponse struct {
	ID          string    `json:"id"`
	StoragePath string    `json:"storage_path"`
	Bucket      string    `json:"bucket"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
