// Package app assembles services, handlers and middleware into the HTTP
// router.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"buildconnect/internal/cache"
	"buildconnect/internal/config"
	"buildconnect/internal/middleware"
	"buildconnect/internal/modules/admin"
	"buildconnect/internal/modules/auth"
	"buildconnect/internal/modules/booking"
	"buildconnect/internal/modules/catalog"
	"buildconnect/internal/modules/review"
	"buildconnect/internal/modules/vendors"
	jwtsvc "buildconnect/internal/pkg/jwt"
	"buildconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	BootstrapAdminEmail    = "admin@buildconnect.com"
	BootstrapAdminPassword = "admin123"
)

type App struct {
	Router *gin.Engine

	Auth    *auth.Service
	Vendors *vendors.Service
	Booking *booking.Service
	Review  *review.Service
	Catalog *catalog.Service
	Admin   *admin.Service

	stores Stores
	log    *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger, stores Stores, c cache.Cache) *App {
	tokens := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	a := &App{stores: stores, log: log}
	a.Auth = auth.NewService(stores.Users, tokens, log)
	a.Vendors = vendors.NewService(stores.Vendors, stores.Users, stores.Reviews, stores.Tx, c, cfg.CacheTTL, log)
	a.Booking = booking.NewService(stores.Bookings, a.Vendors, log)
	a.Review = review.NewService(stores.Reviews, stores.Bookings, a.Vendors, stores.Tx, log)
	a.Catalog = catalog.NewService(stores.Categories, log)
	a.Admin = admin.NewService(stores.Users, stores.Bookings, stores.Vendors, a.Vendors)

	a.Router = a.routes(cfg)
	return a
}

func (a *App) routes(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.ErrorLogger(a.log))
	r.Use(middleware.RequestLogger(a.log))
	r.Use(middleware.CORS(cfg.AllowedOrigins()))

	r.GET("/healthz", a.health)

	authHandler := auth.NewHandler(a.Auth)
	vendorHandler := vendors.NewHandler(a.Vendors)
	bookingHandler := booking.NewHandler(a.Booking)
	reviewHandler := review.NewHandler(a.Review)
	catalogHandler := catalog.NewHandler(a.Catalog)
	adminHandler := admin.NewHandler(a.Admin)

	limiter := middleware.NewRateLimiter(cfg.AuthRatePerMin, a.log)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterPublicRoutes(api, limiter.Middleware())
		catalogHandler.RegisterRoutes(api)
		vendorHandler.RegisterPublicRoutes(api)
		reviewHandler.RegisterPublicRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.JWTAuth(a.Auth))
		{
			vendorOnly := protected.Group("")
			vendorOnly.Use(middleware.VendorOnly())

			adminOnly := protected.Group("/admin")
			adminOnly.Use(middleware.AdminOnly())

			authHandler.RegisterProtectedRoutes(protected)
			vendorHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected, vendorOnly, adminOnly)
			adminHandler.RegisterVendorRoutes(vendorOnly)
			adminHandler.RegisterRoutes(adminOnly)
		}
	}
	return r
}

func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := a.stores.Ping(ctx); err != nil {
		a.log.Warn("health check failed", zap.Error(err))
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Store is unreachable")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}

// Seed loads the default categories and the bootstrap admin. Safe to rerun.
func (a *App) Seed(ctx context.Context) error {
	if err := a.Catalog.Seed(ctx); err != nil {
		return err
	}
	created, err := a.Auth.EnsureAdmin(ctx, BootstrapAdminEmail, BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if created {
		a.log.Info("bootstrap admin created", zap.String("email", BootstrapAdminEmail))
	}
	return nil
}
