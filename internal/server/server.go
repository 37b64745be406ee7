package server

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pixbank/internal/config"
	"pixbank/internal/database"
	"pixbank/internal/handlers"
	"pixbank/internal/middleware"
	"pixbank/internal/repositories"
	"pixbank/internal/services"
)

// Server is the HTTP face of the banking store.
type Server struct {
	echo *echo.Echo
	cfg  *config.Config
}

// New wires the store's routes: the auth pair, the user lookup/patch the
// transfer workflow depends on, and the transaction collection.
func New(cfg *config.Config, db *database.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(echomiddleware.CORS())

	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)

	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	tokenService := services.NewTokenService(&cfg.JWT)

	authHandler := handlers.NewAuthHandler(accountRepo, passwordService, tokenService)
	userHandler := handlers.NewUserHandler(accountRepo)
	transactionHandler := handlers.NewTransactionHandler(transactionRepo)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	authed := e.Group("", middleware.RequireAuth(tokenService))
	authed.GET("/users/:id", userHandler.GetUser, middleware.RequireSelf())
	authed.PATCH("/users/:id", userHandler.UpdateUser, middleware.RequireSelf())
	authed.POST("/transactions", transactionHandler.CreateTransaction)
	authed.GET("/transactions", transactionHandler.ListTransactions)

	return &Server{echo: e, cfg: cfg}
}

// Echo exposes the underlying router, for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start blocks serving requests until Shutdown or a listener error.
func (s *Server) Start() error {
	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout
	return s.echo.Start(s.cfg.Server.Host + ":" + s.cfg.Server.Port)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
