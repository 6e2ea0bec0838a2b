package routes

import (
	"log"

	"hireboard/internal/config"
	"hireboard/internal/database"
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"
	v1 "hireboard/internal/delivery/http/routes/v1"
	"hireboard/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

// Register wires the whole HTTP surface: global middleware, the health
// endpoint, and the /api routes.
func Register(app *fiber.App, cfg config.Config, db database.DB, redis *cache.Redis, logger *log.Logger) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(logger)
	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(errMw.Middleware())
	app.Use(accessMw.Middleware())

	handler.NewHealthHandler(db).RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api, cfg, db, redis)
}
