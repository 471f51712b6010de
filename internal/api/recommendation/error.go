package recommendation

import (
	"Dermalens/pkg/response"
	"net/http"
)

var (
	ErrUnknownCondition = response.NewError(http.StatusBadRequest, "unknown skin condition label")
	ErrNoConditions     = response.NewError(http.StatusBadRequest, "no conditions provided")
)
