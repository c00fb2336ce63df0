package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/pkg/jwt"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Query       *reconcile.QueryUseCase
	ServiceName string
	GeneratedAt time.Time
	JWTSecret   string // vacío = /api sin autenticación
	Log         *logger.Logger
}

// Router registra las rutas de la API de revisión.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"service":      deps.ServiceName,
			"generated_at": deps.GeneratedAt,
		})
	})

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin, jwt.RoleReviewer))
	}

	h := NewReviewHandler(deps.Query, deps.Log)
	api.Get("/summary", h.Summary)
	api.Get("/customers", h.ListCustomers)
	api.Get("/customers/:id", h.GetCustomer)
	api.Get("/contracts", h.ListContracts)
}
