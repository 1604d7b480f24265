// Package server exposes the landing page, the script API and the contact form over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/repify/repify/contact"
	"github.com/repify/repify/logger"
	"github.com/repify/repify/page"
	"github.com/repify/repify/script"
)

// Generator writes scripts for topics
type Generator interface {
	Generate(ctx context.Context, topic string) script.Result
}

// LeadForwarder delivers contact form leads
type LeadForwarder interface {
	Forward(ctx context.Context, lead contact.Lead) (string, error)
}

// DefaultForwardDeadline bounds the delivery of one lead, retries included
const DefaultForwardDeadline = 30 * time.Second

// Deps is everything the router needs. RateLimiter may be nil. A nil
// IPExtractor uses the peer address and ignores forwarding headers.
type Deps struct {
	Generator       Generator
	Forwarder       LeadForwarder
	Copy            page.Copy
	RateLimiter     *RateLimiter
	IPExtractor     echo.IPExtractor
	ForwardDeadline time.Duration
	Now             func() time.Time
}

// NewIPExtractor reads the client IP from X-Forwarded-For only when the
// request comes through one of the trusted proxy ranges.
func NewIPExtractor(trustedProxies []string) (echo.IPExtractor, error) {
	if len(trustedProxies) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trustedProxies {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy range %q: %w", cidr, err)
		}
		opts = append(opts, echo.TrustIPRange(ipNet))
	}
	return echo.ExtractIPFromXFFHeader(opts...), nil
}

// New builds the echo router
func New(deps Deps) *echo.Echo {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.IPExtractor == nil {
		deps.IPExtractor = echo.ExtractIPDirect()
	}
	if deps.ForwardDeadline <= 0 {
		deps.ForwardDeadline = DefaultForwardDeadline
	}
	h := &handlers{deps: deps}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = deps.IPExtractor

	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())

	e.GET("/", h.landing)
	e.GET("/healthz", h.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.POST("/contact", h.contact, middleware.BodyLimit("16K"))

	api := e.Group("/api", middleware.BodyLimit("16K"))
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	api.POST("/scripts", h.generateScript)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		LogMethod:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error == nil {
				logger.Sugar().Infow("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				logger.Sugar().Errorw("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	})
}
