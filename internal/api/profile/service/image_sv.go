package profileService

import (
	"Dermalens/internal/api/profile"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *profileService) UploadImage(ctx context.Context, user entity.UserLoginData, file *multipart.FileHeader) (profile.UserImageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return profile.UserImageResponse{}, err
	}

	if err := s.utils.ValidateImageFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected image upload")
		return profile.UserImageResponse{}, profile.ErrInvalidImageFile
	}

	location, err := s.s3Client.UploadFile(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload image to S3")
		return profile.UserImageResponse{}, profile.ErrFailedToUploadImage
	}

	ULID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return profile.UserImageResponse{}, err
	}

	img := entity.UserImage{
		ID:          ULID,
		UserID:      user.ID,
		StoragePath: location,
		Bucket:      s.s3Client.BucketName(),
	}

	if err := repo.Image.CreateImage(ctx, img); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store image metadata")
		return profile.UserImageResponse{}, err
	}

	return profile.UserImageResponse{
		ID:          img.ID,
		StoragePath: img.StoragePath,
		Bucket:      img.Bucket,
		CreatedAt:   time.Now(),
	}, nil
}

func (s *profileService) GetImages(ctx context.Context, userID string) ([]profile.UserImageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	images, err := repo.Image.GetImagesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]profile.UserImageResponse, 0, len(images))
	for _, img := range images {
		presigned, err := s.s3Client.PresignUrl(img.StoragePath)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"image_id":   img.ID,
				"error":      err.Error(),
			}).Warn("Failed to presign image URL")
			presigned = ""
		}

		responses = append(responses, profile.UserImageResponse{
			ID:          img.ID,
			StoragePath: img.StoragePath,
			Bucket:      img.Bucket,
			URL:         presigned,
			CreatedAt:   img.CreatedAt,
		})
	}

	return responses, nil
}

// GetLatestImageData fetches the raw bytes of the most recent stored image.
// Returns profile.ErrImageNotFound when the user never uploaded one.
func (s *profileService) GetLatestImageData(ctx context.Context, userID string) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	img, err := repo.Image.GetLatestImageByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data, err := s.s3Client.DownloadFile(img.StoragePath)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_id":   img.ID,
			"error":      err.Error(),
		}).Error("Failed to download image from S3")
		return nil, err
	}

	return data, nil
}

func (s *profileService) DeleteImage(ctx context.Context, user entity.UserLoginData, imageID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	repo, err := s.profileRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	img, err := repo.Image.GetImageByID(ctx, imageID)
	if err != nil {
		return err
	}

	if img.UserID != user.ID {
		return profile.ErrImageNotOwned
	}

	if err := s.s3Client.DeleteFile(img.StoragePath); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"image_id":   img.ID,
			"error":      err.Error(),
		}).Warn("Failed to delete image object from S3")
	}

	if err := repo.Image.DeleteImage(ctx, imageID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete image metadata")
		return err
	}

	return nil
}
