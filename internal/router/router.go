package router

import (
	"github.com/anonto42/localflow/internal/auth"
	"github.com/anonto42/localflow/internal/handlers"
	"github.com/anonto42/localflow/internal/identity"
	"github.com/anonto42/localflow/internal/join"
	"github.com/anonto42/localflow/internal/maintenance"
	"github.com/anonto42/localflow/internal/middleware"
	"github.com/anonto42/localflow/internal/profile"
	"github.com/anonto42/localflow/internal/repositories"
	"github.com/anonto42/localflow/internal/search"
	"github.com/anonto42/localflow/internal/theme"
	"github.com/anonto42/localflow/internal/validators"
	"github.com/anonto42/localflow/pkg/config"
	"github.com/anonto42/localflow/pkg/logger"
	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Config    *config.Config
	DB        *gorm.DB
	Provider  identity.Provider
	Codec     *search.StateCodec
	Validator *validators.CustomValidator
	Metrics   *metrics.Collector
	Log       *logrus.Logger
}

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, d Deps) {
	e.Use(eMiddleware.RecoverWithConfig(eMiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			d.Log.WithError(err).WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"uri":        c.Request().RequestURI,
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"stack":      string(stack),
			}).Error("panic recovered")
			return err
		},
	}))
	e.Use(eMiddleware.RequestIDWithConfig(eMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(eMiddleware.CORSWithConfig(d.Config.CORSConfig()))
	e.Use(eMiddleware.Secure())
	e.Use(middleware.Session(d.Provider, d.Config.Session.CookieName, d.Log))
	e.Use(logger.RequestLogger(d.Log, middleware.ProfileIDKey))
	if d.Metrics != nil {
		e.Use(d.Metrics.Middleware())
	}
	e.Use(theme.Provider{Secure: d.Config.Session.CookieSecure}.Middleware())
	e.Use(middleware.SearchContext(d.Codec))
	d.Log.Debug("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, d Deps) error {
	var rec metrics.Recorder = metrics.Nop{}
	if d.Metrics != nil {
		rec = d.Metrics
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	e.GET("/health", handlers.HealthCheck(sqlDB))

	// --- Initialize Repositories ---
	profileRepo := repositories.NewPostgresProfileRepository(d.DB)
	notificationRepo := repositories.NewPostgresNotificationRepository(d.DB)
	boardRepo := repositories.NewPostgresBoardRepository(d.DB)
	likeRepo := repositories.NewPostgresLikeRepository(d.DB)
	bookmarkRepo := repositories.NewPostgresBookmarkRepository(d.DB)

	shell := handlers.NewShell(profileRepo, notificationRepo, d.Log)
	session := handlers.SessionCookie{Name: d.Config.Session.CookieName, Secure: d.Config.Session.CookieSecure}

	// --- Session-protected group ---
	my := e.Group("/my", middleware.RequireSession)

	pageHandler := handlers.NewPageHandler(shell, theme.Provider{Secure: d.Config.Session.CookieSecure})
	pageHandler.RegisterPageRoutes(e, my)

	// --- Authentication ---
	authGroup := e.Group("/auth")
	authService := auth.NewService(d.Provider, d.Validator, profileRepo, rec, d.Log)
	authHandler := handlers.NewAuthHandler(authService, shell, session)
	authHandler.RegisterAuthRoutes(authGroup, d.Config.LoginRateLimiter())

	joinService := join.NewService(d.Provider, profileRepo, join.LogDispatcher{Log: d.Log}, d.Validator, d.Log)
	joinHandler := handlers.NewJoinHandler(joinService, shell)
	joinHandler.RegisterJoinRoutes(authGroup)
	d.Log.Debug("Auth routes configured.")

	// --- Selection and search ---
	boardHandler := handlers.NewBoardHandler(boardRepo, likeRepo, bookmarkRepo, d.Codec, shell, d.Config.Session.CookieSecure, d.Log)
	boardHandler.RegisterBoardRoutes(e)

	boardGroup := e.Group("/board", middleware.RequireSession)
	likeHandler := handlers.NewLikeHandler(boardRepo, likeRepo, bookmarkRepo, rec, d.Log)
	likeHandler.RegisterLikeRoutes(boardGroup)
	savedBoardHandler := handlers.NewSavedBoardHandler(boardRepo, likeRepo, bookmarkRepo, rec, d.Log)
	savedBoardHandler.RegisterSavedBoardRoutes(boardGroup)
	d.Log.Debug("Board routes configured.")

	// --- Profile ---
	profileService := profile.NewService(profileRepo, rec, d.Log)
	userHandler := handlers.NewUserHandler(profileService, profile.NewParser(d.Validator), shell)
	userHandler.RegisterProfileRoutes(my)

	// --- Notifications ---
	purger := maintenance.NewPurger(notificationRepo, rec, d.Log)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo, purger, d.Config.MaintenanceToken, shell)
	notificationHandler.RegisterMaintenanceRoutes(e)
	notificationHandler.RegisterNotificationRoutes(my)

	d.Log.Info("All routes configured.")
	return nil
}
