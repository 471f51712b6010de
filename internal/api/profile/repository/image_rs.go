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
	"github.com/sirupsen/logrus"
)

type UserImageDB struct {
	ID          sql.NullString `db:"id"`
	UserID      sql.NullString `db:"user_id"`
	StoragePath sql.NullString `db:"storage_path"`
	Bucket      sql.NullString `db:"bucket"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (r *imageRepository) CreateImage(c context.Context, img entity.UserImage) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":           img.ID,
		"user_id":      img.UserID,
		"storage_path": img.StoragePath,
		"bucket":       img.Bucket,
		"created_at":   time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateImage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateImage named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user image")
		return err
	}

	return nil
}

func (r *imageRepository) GetImageByID(c context.Context, id string) (entity.UserImage, error) {
	requestID := contextPkg.GetRequestID(c)
	var row UserImageDB

	query, args, err := sqlx.Named(queryGetImageByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImageByID named query preparation err")
		return entity.UserImage{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.UserImage{}, profile.ErrImageNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImageByID execution err")
		return entity.UserImage{}, err
	}

	return makeUserImage(row), nil
}

func (r *imageRepository) GetImagesByUserID(c context.Context, userID string) ([]entity.UserImage, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []UserImageDB

	query, args, err := sqlx.Named(queryGetImagesByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImagesByUserID named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetImagesByUserID execution err")
		return nil, err
	}

	images := make([]entity.UserImage, 0, len(rows))
	for _, row := range rows {
		images = append(images, makeUserImage(row))
	}

	return images, nil
}

func (r *imageRepository) GetLatestImageByUserID(c context.Context, userID string) (entity.UserImage, error) {
	requestID := contextPkg.GetRequestID(c)
	var row UserImageDB

	query, args, err := sqlx.Named(queryGetLatestImageByUserID, map[string]interface{}{"user_id": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestImageByUserID named query preparation err")
		return entity.UserImage{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.UserImage{}, profile.ErrImageNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLatestImageByUserID execution err")
		return entity.UserImage{}, err
	}

	return makeUserImage(row), nil
}

func (r *imageRepository) DeleteImage(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteImage, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteImage named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteImage execution err")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return profile.ErrImageNotFound
	}

	return nil
}

func makeUserImage(row UserImageDB) entity.UserImage {
	return entity.UserImage{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		StoragePath: row.StoragePath.String,
		Bucket:      row.Bucket.String,
		CreatedAt:   row.CreatedAt,
	}
}
