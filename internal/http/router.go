// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, panic recovery, metrics,
// compression, CORS, security headers, flash notices, and rate limiting.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/spencergreen21/cafeWebsite/docs" // registers the OpenAPI document
	"github.com/spencergreen21/cafeWebsite/internal/config"
	"github.com/spencergreen21/cafeWebsite/internal/domain"
	"github.com/spencergreen21/cafeWebsite/internal/http/flash"
	"github.com/spencergreen21/cafeWebsite/internal/http/handlers"
	"github.com/spencergreen21/cafeWebsite/internal/http/middleware"
	"github.com/spencergreen21/cafeWebsite/internal/repo"
	"github.com/spencergreen21/cafeWebsite/internal/services"
	"github.com/spencergreen21/cafeWebsite/internal/views"
)

// maxBodyBytes caps request bodies; the forms are a few hundred bytes.
const maxBodyBytes = 1 << 20

// cafeRepoShim adapts the repository free functions to the services.CafeRepo
// interface expected by the CafeService.
type cafeRepoShim struct{}

// ListCafes proxies repo.ListCafes.
func (cafeRepoShim) ListCafes(ctx context.Context, db *gorm.DB, f domain.CafeFilter) ([]domain.Cafe, error) {
	return repo.ListCafes(ctx, db, f)
}

// CountCafes proxies repo.CountCafes.
func (cafeRepoShim) CountCafes(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountCafes(ctx, db)
}

// GetCafe proxies repo.GetCafe.
func (cafeRepoShim) GetCafe(ctx context.Context, db *gorm.DB, id uint) (*domain.Cafe, error) {
	return repo.GetCafe(ctx, db, id)
}

// CreateCafe proxies repo.CreateCafe.
func (cafeRepoShim) CreateCafe(ctx context.Context, db *gorm.DB, c *domain.Cafe) error {
	return repo.CreateCafe(ctx, db, c)
}

// UpdateCafePrice proxies repo.UpdateCafePrice.
func (cafeRepoShim) UpdateCafePrice(ctx context.Context, db *gorm.DB, id uint, price *string) error {
	return repo.UpdateCafePrice(ctx, db, id, price)
}

// DeleteCafe proxies repo.DeleteCafe.
func (cafeRepoShim) DeleteCafe(ctx context.Context, db *gorm.DB, id uint) error {
	return repo.DeleteCafe(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with credential/PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics (and /metrics, mounted before compression)
//  7. Gzip (optional)
//  8. CORS (only when an allowlist is configured) and security headers
//  9. Flash notices
//
// The POST routes additionally pass through the per-IP rate limiter.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(views.Templates())

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{
		MaskHeaders: []string{"X-API-Key"},
	}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit
	r.Use(limitBody(maxBodyBytes))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Compressed responses
	if cfg.GzipEnabled {
		r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	}

	// 8) CORS only for configured origins; the pages themselves are same-origin.
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:            cfg.Security.EnableHSTS,
		HSTSMaxAge:            cfg.Security.HSTSMaxAge,
		EnablePolicy:          true,
		ContentSecurityPolicy: middleware.DefaultCSP,
	}))

	// 9) Flash notices signed with the secret key
	codec := flash.NewCodec(cfg.SecretKey, flash.DefaultTTL)
	codec.Secure = cfg.Security.EnableHSTS
	r.Use(flash.Middleware(codec))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.MsgRouteNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.MsgMethodNotAllowed)
	})

	// API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	cafeSvc := services.NewCafeService(db, cafeRepoShim{})
	h := handlers.New(cafeSvc, handlers.Options{APIKey: cfg.APIKey})

	// Token-bucket limiter per client IP, guarding the key-checked routes
	limit := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByIP()).Handler()

	r.GET("/health", h.Health)

	r.GET("/", h.ListCafes)
	r.GET("/add", h.AddCafeForm)
	r.POST("/add", limit, h.AddCafe)
	r.GET("/update-price/:id", h.UpdatePriceForm)
	r.POST("/update-price/:id", limit, h.UpdatePrice)
	r.GET("/delete-cafe/:id", h.DeleteCafeForm)
	r.POST("/delete-cafe/:id", limit, h.DeleteCafe)
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
