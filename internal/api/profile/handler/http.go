package profileHandler

import (
	profileService "Dermalens/internal/api/profile/service"
	"Dermalens/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	log            *logrus.Logger
	profileService profileService.ProfileService
	validator      *validator.Validate
	middleware     middleware.Middleware
}

func New(
	log *logrus.Logger,
	ps profileService.ProfileService,
	validate *validator.Validate,
	middleware middleware.Middleware,
) *ProfileHandler {
	return &ProfileHandler{
		log:            log,
		profileService: ps,
		validator:      validate,
		middleware:     middleware,
	}
}

func (h *ProfileHandler) Start(srv fiber.Router) {
	profiles := srv.Group("/profiles")
	profiles.Put("/me/skin", h.middleware.NewTokenMiddleware, h.HandleUpsertSkinProfile)
	profiles.Get("/me/skin", h.middleware.NewTokenMiddleware, h.HandleGetSkinProfile)
	profiles.Post("/me/images", h.middleware.NewTokenMiddleware, h.HandleUploadImage)
	profiles.Get("/me/images", h.middleware.NewTokenMiddleware, h.HandleGetImages)
	profiles.Delete("/me/images/:id", h.middleware.NewTokenMiddleware, h.HandleDeleteImage)
}
