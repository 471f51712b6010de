package analysis

import (
	"Dermalens/pkg/response"
	"net/http"
)

var (
	ErrEmptyUpload      = response.NewError(http.StatusBadRequest, "uploaded media is empty")
	ErrUnsupportedMedia = response.NewError(http.StatusBadRequest, "unsupported media type")
	ErrCorruptMedia     = response.NewError(http.StatusBadRequest, "media could not be decoded")
	ErrNoFrames         = response.NewError(http.StatusBadRequest, "no frames could be extracted")
	ErrNoFaceDetected   = response.NewError(http.StatusUnprocessableEntity, "no face detected in the submitted media")
	ErrInferenceFailed  = response.NewError(http.StatusInternalServerError, "skin condition inference failed")
	ErrNoStoredImage    = response.NewError(http.StatusNotFound, "no stored image found for analysis")
)
