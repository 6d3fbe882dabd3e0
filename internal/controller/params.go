package controller

import (
	"strconv"

	"dept-tracker-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

func parseIdParam(ctx *fiber.Ctx) (int64, error) {
	raw := ctx.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidation("invalid id %q", raw)
	}
	return id, nil
}
