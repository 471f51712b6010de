package auth

import (
	"Dermalens/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrUsernameAlreadyExists  = response.NewError(http.StatusConflict, "username already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrUserWithEmailNotFound  = response.NewError(http.StatusNotFound, "user with email not found")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
	ErrorTokenExpired         = response.NewError(http.StatusBadRequest, "token expired or not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrInvalidFileType        = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUploadFile     = response.NewError(http.StatusInternalServerError, "failed to upload file")
)
