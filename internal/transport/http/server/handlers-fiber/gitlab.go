package handlers_fiber

import (
	"errors"
	"net/http"

	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"
	"productboard-gitlab-relay/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostGitLabWebhook syncs an issue state change onto its feature. GitLab
// always gets a bare 200; payloads that cannot be relayed are only logged.
func (h *Handler) PostGitLabWebhook(c *fiber.Ctx) error {
	// GitLab hooks are JSON whatever Content-Type a proxy leaves on them.
	var body dto.IssueWebhook
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil {
		h.log.Warnw("failed to parse gitlab body", "error", err.Error())
		return c.SendStatus(http.StatusOK)
	}

	err := h.uc.SyncIssueStatus(c.Context(), mapper.FromIssueWebhook(body))
	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		h.log.Warnw("gitlab event not relayed", "error", err.Error())
	case err != nil:
		h.log.Debugw("status sync ended with error", "error", err.Error())
	}
	return c.SendStatus(http.StatusOK)
}
