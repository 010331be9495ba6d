package artisanHandler

import (
	"time"

	"ArtisanCraft/internal/api/artisan"
	contextPkg "ArtisanCraft/pkg/context"
	"ArtisanCraft/pkg/handlerUtil"
	"ArtisanCraft/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ArtisanHandler) ProvisionVoiceArtisan(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req artisan.VoiceRegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"language":   req.Language,
	}).Debug("Provisioning voice artisan")

	response, err := h.artisanService.ProvisionVoiceArtisan(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "provision_voice_artisan")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, response)
	}
}

func (h *ArtisanHandler) GetArtisan(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	artisanID := ctx.Params("artisan_id")

	response, err := h.artisanService.GetArtisanByID(c, artisanID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_artisan")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *ArtisanHandler) ListArtisans(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query := artisan.ListArtisansQuery{
		Page:      ctx.QueryInt("page", 1),
		Limit:     ctx.QueryInt("limit", 20),
		Specialty: ctx.Query("specialty"),
	}

	response, err := h.artisanService.ListArtisans(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "list_artisans")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
