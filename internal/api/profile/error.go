package profile

import (
	"Dermalens/pkg/response"
	"net/http"
)

var (
	ErrSkinProfileNotFound = response.NewError(http.StatusNotFound, "skin profile not found")
	ErrImageNotFound       = response.NewError(http.StatusNotFound, "image not found")
	ErrImageNotOwned       = response.NewError(http.StatusForbidden, "image does not belong to user")
	ErrInvalidImageFile    = response.NewError(http.StatusBadRequest, "invalid image file")
	ErrFailedToUploadImage = response.NewError(http.StatusInternalServerError, "failed to upload image")
)
