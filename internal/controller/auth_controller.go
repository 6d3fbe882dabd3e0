package controller

import (
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/entity"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/serverutils"
	"dept-tracker-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	ListUsers(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	auth        fiber.Handler
}

func NewAuthController(authService service.IAuthService, auth fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		auth:        auth,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("login", c.Login)
	// Account creation is an admin action; the department has no self signup.
	h.Post("register", c.auth, serverutils.RequireRole(entity.UserRoleAdmin), c.Register)
	h.Get("users", c.auth, c.ListUsers)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *authController) ListUsers(ctx *fiber.Ctx) error {
	res, err := c.authService.ListUsers(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list users", res))
}
