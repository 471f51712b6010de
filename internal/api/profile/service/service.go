package profileService

import (
	"Dermalens/internal/api/profile"
	profileRepository "Dermalens/internal/api/profile/repository"
	"Dermalens/internal/entity"
	"Dermalens/pkg/s3"
	"Dermalens/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type ProfileService interface {
	UpsertSkinProfile(c context.Context, user entity.UserLoginData, req profile.SkinProfileRequest) (profile.SkinProfileResponse, error)
	GetSkinProfile(c context.Context, userID string) (profile.SkinProfileResponse, error)
	GetSkinProfileEntity(c context.Context, userID string) (*entity.SkinProfile, error)
	UploadImage(c context.Context, user entity.UserLoginData, file *multipart.FileHeader) (profile.UserImageResponse, error)
	GetImages(c context.Context, userID string) ([]profile.UserImageResponse, error)
	GetLatestImageData(c context.Context, userID string) ([]byte, error)
	DeleteImage(c context.Context, user entity.UserLoginData, imageID string) error
}

type profileService struct {
	log         *logrus.Logger
	profileRepo profileRepository.Repository
	s3Client    s3.ItfS3
	utils       utils.IUtils
}

func NewProfileService(log *logrus.Logger,
	profileRepo profileRepository.Repository,
	s3Client s3.ItfS3,
	utilsPkg utils.IUtils,
) ProfileService {
	return &profileService{
		log:         log,
		profileRepo: profileRepo,
		s3Client:    s3Client,
		utils:       utilsPkg,
	}
}
