package handlers_fiber

import (
	"net/http"

	"productboard-gitlab-relay/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// GetDeliveries lists recent relay attempts from the journal.
func (h *Handler) GetDeliveries(c *fiber.Ctx) error {
	res, err := h.uc.Deliveries(c.Context(), c.QueryInt("limit", 0))
	if err != nil {
		h.log.Errorw("failed to list deliveries", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.Deliveries{Deliveries: res})
}
