package gin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	ginlib "github.com/gin-gonic/gin"

	"ccw_query/internal/config"
	"ccw_query/pkg/logger"
)

type Server struct {
	engine *ginlib.Engine
	srv    *http.Server
}

// NewEngine returns an engine with panic recovery and request logging.
func NewEngine(log logger.Logger) *ginlib.Engine {
	if log == nil {
		log = logger.NewNop()
	}
	r := ginlib.New()
	r.Use(ginlib.Recovery(), requestLogger(log))
	return r
}

func requestLogger(log logger.Logger) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("took", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Warn("[HTTP] request failed", fields...)
			return
		}
		log.Info("[HTTP] request", fields...)
	}
}

func NewServer(cfg config.ServerConfig, engine *ginlib.Engine) *Server {
	return &Server{
		engine: engine,
		srv: &http.Server{
			Addr:              cfg.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run blocks until the server stops. A stop caused by Shutdown is not an
// error.
func (s *Server) Run() error {
	if s.engine == nil {
		return fmt.Errorf("gin engine is nil")
	}
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
