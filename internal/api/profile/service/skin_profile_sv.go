package profileService

import (
	"Dermalens/internal/api/profile"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *profileService) UpsertSkinProfile(ctx context.Context, user entity.UserLoginData, req profile.SkinProfileRequest) (profile.SkinProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.SkinProfileResponse{}, err
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return profile.SkinProfileResponse{}, err
	}

	skinProfile := entity.SkinProfile{
		ID:               ULID,
		UserID:           user.ID,
		SkinType:         req.SkinType,
		SkinTone:         req.SkinTone,
		AcneSeverity:     req.AcneSeverity,
		PoreSize:         req.PoreSize,
		SensitivityLevel: req.SensitivityLevel,
		PrimaryConcerns:  req.PrimaryConcerns,
		Conditions:       req.Conditions,
		Allergies:        req.Allergies,
		DietType:         req.DietType,
		WaterIntake:      req.WaterIntake,
		SleepHours:       req.SleepHours,
		SunExposure:      req.SunExposure,
		RoutineFrequency: req.RoutineFrequency,
		RoutineType:      req.RoutineType,
		SkinGoals:        req.SkinGoals,
	}

	if err := repo.SkinProfile.UpsertSkinProfile(ctx, skinProfile); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upsert skin profile")
		return profile.SkinProfileResponse{}, err
	}

	saved, err := repo.SkinProfile.GetSkinProfileByUserID(ctx, user.ID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load skin profile after upsert")
		return profile.SkinProfileResponse{}, err
	}

	return makeSkinProfileResponse(saved), nil
}

func (s *profileService) GetSkinProfile(ctx context.Context, userID string) (profile.SkinProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.SkinProfileResponse{}, err
	}

	skinProfile, err := repo.SkinProfile.GetSkinProfileByUserID(ctx, userID)
	if err != nil {
		return profile.SkinProfileResponse{}, err
	}

	return makeSkinProfileResponse(skinProfile), nil
}

// GetSkinProfileEntity returns nil without error when the user has not filled
// the questionnaire, so downstream stages can treat the profile as optional.
func (s *profileService) GetSkinProfileEntity(ctx context.Context, userID string) (*entity.SkinProfile, error) {
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	skinProfile, err := repo.SkinProfile.GetSkinProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrSkinProfileNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &skinProfile, nil
}

func makeSkinProfileResponse(p entity.SkinProfile) profile.SkinProfileResponse {
	return profile.SkinProfileResponse{
		ID:               p.ID,
		SkinType:         p.SkinType,
		SkinTone:         p.SkinTone,
		AcneSeverity:     p.AcneSeverity,
		PoreSize:         p.PoreSize,
		SensitivityLevel: p.SensitivityLevel,
		PrimaryConcerns:  p.PrimaryConcerns,
		Conditions:       p.Conditions,
		Allergies:        p.Allergies,
		DietType:         p.DietType,
		WaterIntake:      p.WaterIntake,
		SleepHours:       p.SleepHours,
		SunExposure:      p.SunExposure,
		RoutineFrequency: p.RoutineFrequency,
		RoutineType:      p.RoutineType,
		SkinGoals:        p.SkinGoals,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
