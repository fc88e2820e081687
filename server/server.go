package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"journeo/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Config holds the HTTP settings.
type Config struct {
	Addr           string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Server is the HTTP front-end over the chat service.
type Server struct {
	engine *gin.Engine
	cfg    Config
	log    *zap.Logger
}

// New builds the router. m may be nil, in which case /metrics serves the
// default registry.
func New(cfg Config, service ChatService, m *metrics.Metrics, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(corsMiddleware())

	router.GET("/healthz", healthHandler)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	h := NewChatHandler(service, log)
	api := router.Group("/api")
	api.Use(rateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, log))
	{
		api.GET("/greeting", h.GreetingHandler)
		api.POST("/chat", h.PostChatHandler)
		api.GET("/sessions/:id/messages", h.GetMessagesHandler)
		api.DELETE("/sessions/:id", h.DeleteSessionHandler)
	}

	return &Server{engine: router, cfg: cfg, log: log}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
