package controller

import (
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/serverutils"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITaskController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type taskController struct {
	taskService service.ITaskService
	auth        fiber.Handler
}

func NewTaskController(taskService service.ITaskService, auth fiber.Handler) ITaskController {
	return &taskController{
		taskService: taskService,
		auth:        auth,
	}
}

func (c *taskController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tasks")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *taskController) List(ctx *fiber.Ctx) error {
	filter := contract.TaskFilter{
		Status:     ctx.Query("status", ""),
		Priority:   ctx.Query("priority", ""),
		AssignedTo: int64(ctx.QueryInt("assigned_to", 0)),
	}

	res, err := c.taskService.List(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tasks", res))
}

func (c *taskController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	var req dto.CreateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create task", res))
}

func (c *taskController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.taskService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show task", res))
}

func (c *taskController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update task", res))
}

func (c *taskController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.taskService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete task", nil))
}
