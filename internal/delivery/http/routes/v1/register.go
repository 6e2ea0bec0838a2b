package v1

import (
	"hireboard/internal/config"
	"hireboard/internal/database"
	"hireboard/internal/delivery/http/handler"
	"hireboard/internal/delivery/http/middleware"
	"hireboard/internal/infrastructure/cache"
	"hireboard/internal/infrastructure/persistence/postgres"
	"hireboard/internal/pkg/jwt"
	"hireboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	appRepo := postgres.NewApplicationRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, redis)
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo)

	authGroup := r.Group("/auth")
	handler.NewAuthHandler(authUC).RegisterRoutes(authGroup)

	profileGroup := authGroup.Group("", authMw.Middleware())
	handler.NewUserHandler(userUC).RegisterRoutes(profileGroup)

	jobsGroup := r.Group("/jobs")
	handler.NewJobHandler(jobUC).RegisterRoutes(jobsGroup, authMw.Middleware())

	applicationsGroup := r.Group("/applications", authMw.Middleware())
	handler.NewApplicationHandler(applicationUC).RegisterRoutes(applicationsGroup)
}
