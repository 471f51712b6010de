package recommendationHandler

import (
	recommendationService "Dermalens/internal/api/recommendation/service"
	"Dermalens/internal/entity"
	"Dermalens/internal/middleware"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// ProfileReader supplies the optional skin profile used for allergy filtering.
type ProfileReader interface {
	GetSkinProfileEntity(c context.Context, userID string) (*entity.SkinProfile, error)
}

type RecommendationHandler struct {
	log                   *logrus.Logger
	validator             *validator.Validate
	middleware            middleware.Middleware
	recommendationService recommendationService.IRecommendationService
	profiles              ProfileReader
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs recommendationService.IRecommendationService,
	profiles ProfileReader,
) *RecommendationHandler {
	return &RecommendationHandler{
		log:                   log,
		validator:             validate,
		middleware:            middleware,
		recommendationService: rs,
		profiles:              profiles,
	}
}

func (h *RecommendationHandler) Start(srv fiber.Router) {
	recommendations := srv.Group("/recommendations")
	recommendations.Post("/products", h.middleware.NewOptionalTokenMiddleware, h.HandleRecommendProducts)
	recommendations.Post("/routine", h.middleware.NewOptionalTokenMiddleware, h.HandleComposeRoutine)
}
