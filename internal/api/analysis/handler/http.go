package analysisHandler

import (
	analysisService "Dermalens/internal/api/analysis/service"
	"Dermalens/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.ISkinAnalysisService
	profiles        analysisService.ProfileReader
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as analysisService.ISkinAnalysisService,
	profiles analysisService.ProfileReader,
) *AnalysisHandler {
	return &AnalysisHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		analysisService: as,
		profiles:        profiles,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	analysisGroup := srv.Group("/analysis", h.middleware.NewRateLimiter)
	analysisGroup.Post("/skin", h.middleware.NewOptionalTokenMiddleware, h.HandleAnalyzeSkin)
	analysisGroup.Post("/comprehensive", h.middleware.NewTokenMiddleware, h.HandleComprehensiveAnalysis)
	analysisGroup.Use("/live", wsMiddleware)
	analysisGroup.Get("/live", websocket.New(h.handleLiveWebSocket))
}
