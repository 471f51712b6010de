package authRepository

import (
	"Dermalens/internal/api/auth"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserDB struct {
	ID              sql.NullString `db:"id"`
	Email           sql.NullString `db:"email"`
	Username        sql.NullString `db:"username"`
	Password        sql.NullString `db:"password"`
	ProfilePhotoURL sql.NullString `db:"profile_photo_url"`
	IsVerified      sql.NullBool   `db:"is_verified"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       sql.NullTime   `db:"updated_at"`
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"username":   user.Username,
		"password":   user.Password,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CreateUser named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return err
	}

	return nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	return r.getOne(c, queryGetByID, map[string]interface{}{"id": id}, "GetByID")
}

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	return r.getOne(c, queryGetByEmail, map[string]interface{}{"email": email}, "GetByEmail")
}

func (r *userRepository) GetByUsername(c context.Context, username string) (entity.User, error) {
	return r.getOne(c, queryGetByUsername, map[string]interface{}{"username": username}, "GetByUsername")
}

func (r *userRepository) getOne(c context.Context, namedQuery string, argsKV map[string]interface{}, op string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)
	var row UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"op":         op,
			"error":      err.Error(),
		}).Error("User named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"op":         op,
			"error":      err.Error(),
		}).Error("User query execution err")
		return entity.User{}, err
	}

	return makeUser(row), nil
}

func (r *userRepository) UpdateUser(c context.Context, user entity.User) error {
	argsKV := map[string]interface{}{
		"id":          user.ID,
		"username":    user.Username,
		"is_verified": user.IsVerified,
		"updated_at":  time.Now(),
	}
	return r.exec(c, queryUpdateUser, argsKV, "UpdateUser")
}

func (r *userRepository) UpdatePassword(c context.Context, email string, hashedPassword string) error {
	argsKV := map[string]interface{}{
		"email":      email,
		"password":   hashedPassword,
		"updated_at": time.Now(),
	}
	return r.exec(c, queryUpdateUserPassword, argsKV, "UpdatePassword")
}

func (r *userRepository) UpdateVerifiedStatus(c context.Context, id string, verified bool) error {
	argsKV := map[string]interface{}{
		"id":          id,
		"is_verified": verified,
		"updated_at":  time.Now(),
	}
	return r.exec(c, queryUpdateVerifiedStatus, argsKV, "UpdateVerifiedStatus")
}

func (r *userRepository) UpdateProfilePhoto(c context.Context, id string, photoURL string) error {
	argsKV := map[string]interface{}{
		"id":                id,
		"profile_photo_url": photoURL,
		"updated_at":        time.Now(),
	}
	return r.exec(c, queryUpdateProfilePhoto, argsKV, "UpdateProfilePhoto")
}

func (r *userRepository) DeleteUser(c context.Context, id string) error {
	return r.exec(c, queryDeleteUser, map[string]interface{}{"id": id}, "DeleteUser")
}

func (r *userRepository) exec(c context.Context, namedQuery string, argsKV map[string]interface{}, op string) error {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"op":         op,
			"error":      err.Error(),
		}).Error("User named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"op":         op,
			"error":      err.Error(),
		}).Error("User query execution err")
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

func makeUser(row UserDB) entity.User {
	return entity.User{
		ID:              row.ID.String,
		Email:           row.Email.String,
		Username:        row.Username.String,
		Password:        row.Password.String,
		ProfilePhotoURL: row.ProfilePhotoURL.String,
		IsVerified:      row.IsVerified.Bool,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
