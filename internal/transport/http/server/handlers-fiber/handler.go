// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"productboard-gitlab-relay/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the Productboard plugin and GitLab webhook endpoints.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// RegisterHandlers mounts every route on r.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/", h.GetRoot)
	r.Get("/plugin", h.GetValidation)
	r.Get("/productboard-webhook", h.GetValidation)
	r.Post("/plugin", h.PostPlugin)
	r.Post("/gitlab-webhook", h.PostGitLabWebhook)
	r.Get("/deliveries", h.GetDeliveries)
}
