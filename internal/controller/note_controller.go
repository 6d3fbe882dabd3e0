package controller

import (
	"fmt"
	"path/filepath"
	"time"

	"dept-tracker-be/internal/config"
	"dept-tracker-be/internal/dto"
	"dept-tracker-be/internal/pkg/apperrors"
	"dept-tracker-be/internal/pkg/serverutils"
	"dept-tracker-be/internal/repository/contract"
	"dept-tracker-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	UploadAttachment(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	uploads     config.UploadConfig
	auth        fiber.Handler
}

func NewNoteController(noteService service.INoteService, uploads config.UploadConfig, auth fiber.Handler) INoteController {
	return &noteController{
		noteService: noteService,
		uploads:     uploads,
		auth:        auth,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Use(c.auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/attachments", c.UploadAttachment)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	filter := contract.NoteFilter{
		Category:   ctx.Query("category", ""),
		ActiveOnly: ctx.QueryBool("active_only", false),
		Query:      ctx.Query("q", ""),
	}

	res, err := c.noteService.List(ctx.Context(), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperrors.NewValidation("malformed request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete note", nil))
}

func (c *noteController) UploadAttachment(ctx *fiber.Ctx) error {
	userId := ctx.Locals("user_id").(int64)

	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return apperrors.NewValidation("missing multipart field %q", "file")
	}
	if c.uploads.MaxSizeBytes > 0 && file.Size > int64(c.uploads.MaxSizeBytes) {
		return apperrors.NewValidation("file exceeds maximum size of %d bytes", c.uploads.MaxSizeBytes)
	}

	storedName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))
	if err := ctx.SaveFile(file, filepath.Join(c.uploads.Dir, storedName)); err != nil {
		return apperrors.NewInternal(err)
	}

	att := dto.AttachmentResponse{
		Url:        "/uploads/" + storedName,
		Name:       file.Filename,
		Type:       file.Header.Get("Content-Type"),
		Size:       file.Size,
		UploadedBy: userId,
		UploadedAt: time.Now(),
	}

	res, err := c.noteService.AddAttachment(ctx.Context(), userId, id, &att)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload attachment", res))
}
