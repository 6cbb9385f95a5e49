// Package http wires the HTTP surface: middleware stack, handlers and
// routes.
package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUsecases "mediticket/internal/application/auth/usecases"
	ticketUsecases "mediticket/internal/application/ticket/usecases"
	userUsecases "mediticket/internal/application/user/usecases"
	"mediticket/internal/infrastructure/auth"
	"mediticket/internal/infrastructure/config"
	"mediticket/internal/infrastructure/email"
	"mediticket/internal/infrastructure/ratelimit"
	"mediticket/internal/infrastructure/repository"
	"mediticket/internal/infrastructure/storage"
	authhandlers "mediticket/internal/interfaces/http/handlers/auth"
	tickethandlers "mediticket/internal/interfaces/http/handlers/ticket"
	userhandlers "mediticket/internal/interfaces/http/handlers/user"
	"mediticket/internal/interfaces/http/middleware"
	"mediticket/internal/interfaces/http/routes"
	"mediticket/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine
}

// NewRouter builds the engine with the full middleware stack and every
// route group wired to its use cases.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	ticketRepo := repository.NewTicketRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	fileStore, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.Staff.Username,
		cfg.Auth.JWT.AccessExpHours,
	)
	credentialStore := auth.NewStaticCredentialStore(
		cfg.Auth.Staff.Username,
		cfg.Auth.Staff.Password,
	)
	notifier := email.NewSMTPNotificationService(cfg.Email)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	rateLimiter := ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute)

	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.Audit(auditRepo, log))
	engine.Use(middleware.RateLimit(rateLimiter))

	authHandler := authhandlers.NewAuthHandler(
		authUsecases.NewLoginUseCase(credentialStore, jwtService, log),
	)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, notifier, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewAnswerTicketUseCase(ticketRepo, log),
		ticketUsecases.NewUploadAttachmentUseCase(ticketRepo, fileStore, log),
		ticketUsecases.NewDownloadAttachmentUseCase(ticketRepo, log),
		ticketUsecases.NewMarkReadUseCase(ticketRepo, log),
		ticketUsecases.NewAnnotateTicketUseCase(ticketRepo, log),
		ticketUsecases.NewExportTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewDashboardUseCase(ticketRepo, log),
	)

	userHandler := userhandlers.NewUserHandler(
		userUsecases.NewRegisterUserUseCase(userRepo, log),
		userUsecases.NewGetUserUseCase(userRepo, log),
		userUsecases.NewListUsersUseCase(userRepo, log),
		userUsecases.NewUpdateUserUseCase(userRepo, log),
		userUsecases.NewDeleteUserUseCase(userRepo, log),
	)

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupTicketRoutes(engine, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMiddleware,
	})
	routes.SetupUserRoutes(engine, &routes.UserRouteConfig{
		UserHandler:    userHandler,
		AuthMiddleware: authMiddleware,
	})

	return &Router{engine: engine}, nil
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
