package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"auth-service/cmd/api/di"
	ginrouter "auth-service/internal/adapter/gin/router"
)

// SetupHTTPServer creates the HTTP server around the Gin router.
func SetupHTTPServer(c *di.Container, addr string, l *zap.Logger) *http.Server {
	router := ginrouter.SetupRouter(c.AuthHandler, c.UserHandler, c.TokenSvc, c.RateLimiter, l)

	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
