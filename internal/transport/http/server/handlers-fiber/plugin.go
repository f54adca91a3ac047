package handlers_fiber

import (
	"net/http"

	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

const rootMessage = "This server hosts the Productboard <> GitLab integration"

// GetRoot is the liveness page.
func (h *Handler) GetRoot(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).SendString(rootMessage)
}

// GetValidation echoes validationToken, as Productboard expects when a
// plugin or webhook subscription is registered.
func (h *Handler) GetValidation(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)
	return c.Status(http.StatusOK).SendString(c.Query("validationToken"))
}

// PostPlugin answers a plugin button event with the connection state to show.
func (h *Handler) PostPlugin(c *fiber.Ctx) error {
	var body dto.PluginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Warnw("failed to parse plugin body", "error", err.Error())
		return invalidBody(c)
	}

	conn, err := h.uc.HandlePluginEvent(c.Context(), mapper.FromPluginRequest(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToConnectionEnvelope(conn))
}
