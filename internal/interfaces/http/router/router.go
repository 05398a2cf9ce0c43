package router

import (
	"github.com/facturation/backend/internal/infrastructure/auth"
	"github.com/facturation/backend/internal/infrastructure/config"
	"github.com/facturation/backend/internal/infrastructure/logger"
	"github.com/facturation/backend/internal/interfaces/http/handler"
	"github.com/facturation/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	System   *handler.SystemHandler
	Client   *handler.ClientHandler
	Quote    *handler.QuoteHandler
	Invoice  *handler.InvoiceHandler
	Payment  *handler.PaymentHandler
	Settings *handler.SettingsHandler
}

// Options holds router construction options
type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Handlers   Handlers
}

// New builds the gin engine with middleware and all API routes registered
func New(opts Options) *gin.Engine {
	if opts.Config != nil && opts.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if opts.Config != nil && len(opts.Config.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(opts.Config.HTTP.TrustedProxies)
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(opts.Logger))
	engine.Use(logger.Recovery(opts.Logger))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(corsConfig(opts.Config)))
	if opts.Config != nil && opts.Config.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(opts.Config.HTTP.MaxBodySize))
	}

	if opts.Handlers.System != nil {
		engine.GET("/health", opts.Handlers.System.Health)
	}

	api := engine.Group("/api/v1")
	if opts.JWTService != nil {
		api.Use(middleware.JWTAuth(middleware.JWTConfig{
			Service:   opts.JWTService,
			SkipPaths: []string{"/health", "/api/v1/health"},
		}))
	}

	if opts.Handlers.System != nil {
		api.GET("/health", opts.Handlers.System.Health)
	}

	if h := opts.Handlers.Client; h != nil {
		clients := api.Group("/clients")
		{
			clients.POST("", h.Create)
			clients.GET("", h.List)
			clients.GET("/:id", h.Get)
			clients.PUT("/:id", h.Update)
			clients.DELETE("/:id", h.Delete)
		}
	}

	if h := opts.Handlers.Quote; h != nil {
		quotes := api.Group("/devis")
		{
			quotes.POST("", h.Create)
			quotes.GET("", h.List)
			quotes.GET("/:id", h.Get)
			quotes.PATCH("/:id/statut", h.UpdateStatus)
			quotes.POST("/:id/convert", h.Convert)
			quotes.POST("/:id/acomptes", h.CreateDeposit)
			quotes.GET("/:id/acomptes", h.ListDeposits)
		}
	}

	if h := opts.Handlers.Invoice; h != nil {
		invoices := api.Group("/factures")
		{
			invoices.GET("", h.List)
			invoices.GET("/:id", h.Get)
			invoices.POST("/:id/payer", h.MarkPaid)
		}
	}

	if h := opts.Handlers.Payment; h != nil {
		payments := api.Group("/paiements")
		{
			payments.POST("", h.Create)
			payments.GET("", h.List)
			payments.GET("/:id", h.Get)
		}
	}

	if h := opts.Handlers.Settings; h != nil {
		settings := api.Group("/parametres")
		{
			settings.GET("", h.Get)
			settings.PUT("", h.Update)
		}
	}

	return engine
}

// corsConfig builds the CORS configuration from application config,
// falling back to the restrictive defaults when nothing is set.
func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if cfg == nil {
		return corsCfg
	}
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	return corsCfg
}
