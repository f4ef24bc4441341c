package controller

import (
	"roadmap-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// idParam reads the positive integer ":id" path parameter. Anything else is a 404, as for an unmatched route.
func idParam(ctx *fiber.Ctx, what string) (uint, error) {
	id, err := ctx.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, apperror.NotFound(what)
	}
	return uint(id), nil
}
