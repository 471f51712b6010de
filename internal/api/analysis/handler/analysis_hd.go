package analysisHandler

import (
	"Dermalens/internal/api/analysis"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"Dermalens/pkg/handlerUtil"
	jwtPkg "Dermalens/pkg/jwt"
	"Dermalens/pkg/log"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *AnalysisHandler) HandleAnalyzeSkin(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 60*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing skin analysis request")

	file, err := ctx.FormFile("media")
	if err != nil {
		return errHandler.Handle(ctx, requestID, analysis.ErrEmptyUpload, ctx.Path(), "get_form_file")
	}

	src, err := file.Open()
	if err != nil {
		return errHandler.Handle(ctx, requestID, analysis.ErrCorruptMedia, ctx.Path(), "open_form_file")
	}
	defer src.Close()

	media, err := io.ReadAll(src)
	if err != nil {
		return errHandler.Handle(ctx, requestID, analysis.ErrCorruptMedia, ctx.Path(), "read_form_file")
	}

	var skinProfile *entity.SkinProfile
	if userData, err := jwtPkg.GetUserLoginData(ctx); err == nil {
		skinProfile, err = h.profiles.GetSkinProfileEntity(c, userData.ID)
		if err != nil {
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to load skin profile for analysis")
			skinProfile = nil
		}
	}

	res, err := h.analysisService.AnalyzeSkin(c, media, file.Header.Get("Content-Type"), skinProfile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_skin")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *AnalysisHandler) HandleComprehensiveAnalysis(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 90*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing comprehensive analysis request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	res, err := h.analysisService.ComprehensiveAnalysis(c, userData)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "comprehensive_analysis")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}
