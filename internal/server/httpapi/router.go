// Package httpapi serves the HTTP side of the backend: browser-reachable
// Connect RPC routes plus liveness, readiness and Prometheus metrics.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/domunity/backend/internal/server/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Pinger reports whether a dependency is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RPCRoutes mounts RPC endpoints on the router.
type RPCRoutes interface {
	RegisterConnectRoutes(r gin.IRoutes)
}

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string
	DB             Pinger
	Gatherer       prometheus.Gatherer
	Metrics        *metrics.Metrics
	RPC            RPCRoutes
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(cfg.ServiceName))
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.GinMiddleware())
	}
	r.Use(CORSMiddleware(cfg.AllowedOrigins))

	h := &healthHandler{db: cfg.DB}
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if cfg.RPC != nil {
		cfg.RPC.RegisterConnectRoutes(r)
	}

	if cfg.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	return r
}

type healthHandler struct {
	db Pinger
}

func (h *healthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz is ready only while the database answers a ping.
func (h *healthHandler) Readyz(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "database": "unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "database": "connected"})
}

// CORSMiddleware echoes allow-listed origins and answers preflight requests.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Authorization,Content-Type,Accept-Language,Connect-Protocol-Version,Connect-Timeout-Ms")
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
