// FILE: internal/controller/auth_controller.go
package controller

import (
	"feature-prefs-be/internal/dto"
	"feature-prefs-be/internal/pkg/serverutils"
	"feature-prefs-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	ipAddress := ctx.IP()
	userAgent := ctx.Get("User-Agent")

	res, err := c.service.Login(ctx.Context(), &req, ipAddress, userAgent)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Logout(ctx.Context(), req.RefreshToken); err != nil {
		code := serverutils.StatusForError(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
