package handlers_fiber

import (
	"errors"
	"net/http"

	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const (
	codeInvalidArgument = "INVALID_ARGUMENT"
	codeInternal        = "INTERNAL"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := codeInternal
	msg := "internal error"

	if errors.Is(err, entities.ErrInvalidArgument) {
		status = http.StatusBadRequest
		code = codeInvalidArgument
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: dto.ErrorBody{Code: code, Message: msg}}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(codeInvalidArgument, "invalid body"))
}
