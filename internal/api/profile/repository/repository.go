package profileRepository

import (
	"Dermalens/internal/entity"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		SkinProfile: &skinProfileRepository{q: sqlExecutor, log: r.log},
		Image:       &imageRepository{q: sqlExecutor, log: r.log},
		Commit:      commitFunc,
		Rollback:    rollbackFunc,
	}, nil
}

type Client struct {
	SkinProfile interface {
		UpsertSkinProfile(c context.Context, profile entity.SkinProfile) error
		GetSkinProfileByUserID(c context.Context, userID string) (entity.SkinProfile, error)
	}

	Image interface {
		CreateImage(c context.Context, img entity.UserImage) error
		GetImageByID(c context.Context, id string) (entity.UserImage, error)
		GetImagesByUserID(c context.Context, userID string) ([]entity.UserImage, error)
		GetLatestImageByUserID(c context.Context, userID string) (entity.UserImage, error)
		DeleteImage(c context.Context, id string) error
	}

	Commit   func() error
	Rollback func() error
}

type skinProfileRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type imageRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
