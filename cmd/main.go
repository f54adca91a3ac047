// Package main wires the HTTP server for the Productboard <> GitLab relay.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/gateway"
	"productboard-gitlab-relay/internal/repository"
	"productboard-gitlab-relay/internal/transport/http/middleware"
	"productboard-gitlab-relay/internal/transport/http/server/handlers-fiber"
	"productboard-gitlab-relay/internal/usecase"
	"productboard-gitlab-relay/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Journal.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}

	gw := gateway.New(log, cfg)
	uc := usecase.New(log, ctx, gw, repo, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(serv, h)

	go func() {
		log.Infow("gitlab integration listening", "addr", cfg.ServerAddr(), "journal", cfg.Journal.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}

	// Running pushes still journal, so the pool stays open unless they all finished.
	if err := uc.Wait(shutdownCtx); err != nil {
		log.Warnw("background pushes still running at exit, journal left open", "error", err)
		return
	}
	if err := repo.OnStop(context.Background()); err != nil {
		log.Warnw("repository stop error", "error", err)
	}
}
