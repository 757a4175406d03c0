package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mastersolis/site-gateway/docs"
	"github.com/mastersolis/site-gateway/internal/api/handler"
	"github.com/mastersolis/site-gateway/internal/api/middleware"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

const loginPath = "/admin/login"

// Dependencies carries everything the router wires into handlers. Redis,
// Mongo and JournalReader are optional; routes and probes that need them are
// skipped when they are nil.
type Dependencies struct {
	API           ports.SiteAPI
	Sessions      ports.SessionStore
	Journal       ports.SubmissionJournal
	JournalReader handler.JournalReader
	Backend       handler.BackendPinger
	Redis         *redis.Client
	Mongo         *mongo.Database
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("site_gateway"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.API, loginPath)
	contentHandler := handler.NewContentHandler(deps.API)
	formsHandler := handler.NewFormsHandler(deps.API, deps.Journal, deps.Log)
	adminHandler := handler.NewAdminHandler(deps.API, deps.JournalReader)

	// --- Public site routes ---
	e.GET("/services", contentHandler.Services)
	e.GET("/projects", contentHandler.Projects)
	e.GET("/blog", contentHandler.Posts)
	e.GET("/blog/:id", contentHandler.Post)
	e.GET("/careers", contentHandler.Jobs)
	e.POST("/apply", formsHandler.Apply)
	e.POST("/contact", formsHandler.Contact)

	// --- Admin routes ---
	// Login stays outside the guarded group; everything else requires an
	// active session and bounces to the login view otherwise.
	e.POST(loginPath, authHandler.Login)

	admin := e.Group("/admin", middleware.RequireSession(deps.Sessions, loginPath))
	admin.GET("", adminHandler.Index)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/posts", adminHandler.Posts)
	admin.GET("/jobs", adminHandler.Jobs)
	admin.POST("/jobs", adminHandler.CreateJob)
	admin.GET("/applications", adminHandler.Applications)
	admin.GET("/messages", adminHandler.Messages)
	admin.POST("/pages/:name", adminHandler.UpdatePage)
	admin.POST("/logout", authHandler.Logout)
	if deps.JournalReader != nil {
		admin.GET("/journal", adminHandler.Journal)
	}

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Backend, deps.Redis, deps.Mongo)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
