package recommendationHandler

import (
	"Dermalens/internal/api/recommendation"
	"Dermalens/internal/entity"
	contextPkg "Dermalens/pkg/context"
	"Dermalens/pkg/handlerUtil"
	jwtPkg "Dermalens/pkg/jwt"
	"Dermalens/pkg/log"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *RecommendationHandler) HandleRecommendProducts(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing product recommendation request")

	var req recommendation.ProductSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	conditions, err := parseConditions(req.Conditions)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_conditions")
	}

	skinProfile := h.optionalProfile(c, ctx, requestID)

	products, err := h.recommendationService.ResolveProducts(c, conditions, skinProfile)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_products")
	}

	source := entity.ProductSourceCatalog
	if len(products) > 0 {
		source = products[0].Source
	}

	res := recommendation.ProductSearchResponse{
		Products:   products,
		Conditions: req.Conditions,
		Source:     source,
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *RecommendationHandler) HandleComposeRoutine(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req recommendation.RoutineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	conditions, err := parseConditions(req.Conditions)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_conditions")
	}

	products := req.Products
	if len(products) == 0 {
		skinProfile := h.optionalProfile(c, ctx, requestID)

		products, err = h.recommendationService.ResolveProducts(c, conditions, skinProfile)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "resolve_products")
		}
	}

	routine := h.recommendationService.ComposeRoutine(products)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, recommendation.RoutineResponse{Routine: routine})
	}
}

func (h *RecommendationHandler) optionalProfile(c context.Context, ctx *fiber.Ctx, requestID string) *entity.SkinProfile {
	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return nil
	}

	skinProfile, err := h.profiles.GetSkinProfileEntity(c, userData.ID)
	if err != nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to load skin profile for recommendations")
		return nil
	}

	return skinProfile
}

func parseConditions(labels []string) ([]entity.Condition, error) {
	if len(labels) == 0 {
		return nil, recommendation.ErrNoConditions
	}

	conditions := make([]entity.Condition, 0, len(labels))
	for _, label := range labels {
		condition := entity.Condition(label)
		if !entity.IsValidCondition(condition) {
			return nil, recommendation.ErrUnknownCondition
		}
		conditions = append(conditions, condition)
	}

	return conditions, nil
}
