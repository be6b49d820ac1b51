package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"talent-pool/internal/config"
	"talent-pool/internal/delivery/http/handler"
	"talent-pool/internal/delivery/http/middleware"
	"talent-pool/internal/delivery/http/routes"
	v1 "talent-pool/internal/delivery/http/routes/v1"
	"talent-pool/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap connects to the database, applies migrations and wires the HTTP
// app. The returned cleanup closes the pool.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := c.Migrate(ctx); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *zap.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	auth := newAuthMiddleware(c.Config.JWT, c.Logger)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB, c.Stats),
		v1.Handlers{
			Candidates: handler.NewCandidateHandler(c.CandidateUC, c.PopulateUC, auth),
			Skills:     handler.NewSkillHandler(c.SkillUC, auth),
			Reports:    handler.NewReportHandler(c.ReportUC),
		},
	)
	registry.Register(app)
}

func newAuthMiddleware(cfg config.JWTConfig, logger *zap.Logger) *middleware.AuthMiddleware {
	if strings.TrimSpace(cfg.AccessSecret) == "" {
		logger.Warn("JWT_ACCESS_SECRET not set, role checks disabled")
		return nil
	}
	return middleware.NewAuthMiddleware(jwt.NewHMACService(cfg.AccessSecret, cfg.AccessExpiresIn))
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
