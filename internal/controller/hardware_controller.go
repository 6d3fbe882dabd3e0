package controller

import (
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/serverutils"
	"dept-tracker-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHardwareController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type hardwareController struct {
	hardwareService service.IHardwareService
	auth            fiber.Handler
}

func NewHardwareController(hardwareService service.IHardwareService, auth fiber.Handler) IHardwareController {
	return &hardwareController{
		hardwareService: hardwareService,
		auth:            auth,
	}
}

func (c *hardwareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hardware")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *hardwareController) List(ctx *fiber.Ctx) error {
	res, err := c.hardwareService.List(ctx.Context(), service.HardwareListOptions{
		Status:     ctx.Query("status", ""),
		DeviceType: ctx.Query("device_type", ""),
		Limit:      ctx.QueryInt("limit", 0),
		Offset:     ctx.QueryInt("offset", 0),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list service records", res))
}

func (c *hardwareController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	var req dto.CreateServiceRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.hardwareService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create service record", res))
}

func (c *hardwareController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.hardwareService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show service record", res))
}

func (c *hardwareController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateServiceRecordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.hardwareService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update service record", res))
}

func (c *hardwareController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.hardwareService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete service record", nil))
}
