// FILE: internal/controller/feature_controller.go
package controller

import (
	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/pkg/serverutils"
	"feature-prefs-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	GetCatalog(ctx *fiber.Ctx) error
	GetUserPreferences(ctx *fiber.Ctx) error
	ToggleFeature(ctx *fiber.Ctx) error
	SaveSurveyResults(ctx *fiber.Ctx) error
	GetSurveyStatus(ctx *fiber.Ctx) error
}

type featureController struct {
	service service.IFeatureService
}

func NewFeatureController(service service.IFeatureService) IFeatureController {
	return &featureController{service: service}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/features")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/groups", c.GetCatalog)
	h.Get("/user-preferences", c.GetUserPreferences)
	h.Post("/toggle", c.ToggleFeature)
	h.Post("/survey-results", c.SaveSurveyResults)
	h.Get("/survey-status", c.GetSurveyStatus)
}

func (c *featureController) GetCatalog(ctx *fiber.Ctx) error {
	res, err := c.service.GetCatalog(ctx.Context())
	if err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature catalog", res))
}

func (c *featureController) GetUserPreferences(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.service.GetUserFeaturePreferences(ctx.Context(), userId)
	if err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User feature preferences", res))
}

func (c *featureController) ToggleFeature(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.ToggleFeatureRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.ToggleFeature(ctx.Context(), userId, &req)
	if err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature toggled", res))
}

func (c *featureController) SaveSurveyResults(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	var req dto.SaveSurveyResultsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveSurveyResults(ctx.Context(), userId, &req)
	if err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey results saved", res))
}

func (c *featureController) GetSurveyStatus(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(uint)

	res, err := c.service.GetSurveyStatus(ctx.Context(), userId)
	if err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Survey status", res))
}
