/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/bitcalc/core/calc"
	"github.com/google/bitcalc/core/query"
	"github.com/google/bitcalc/core/rendering"
	"github.com/google/bitcalc/core/views"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// GracefulShutdownTimeout bounds how long in-flight requests may take once shutdown starts
const GracefulShutdownTimeout = 10 * time.Second

// Server serves the evaluation page, the JSON API and metrics
type Server struct {
	Echo *echo.Echo

	cfg      *Config
	renderer *rendering.PageRenderer
	logger   *zap.Logger
	metrics  *metrics
}

// EvalResponse is the JSON body of /api/eval
type EvalResponse struct {
	Status     int         `json:"status"`
	StatusName string      `json:"status_name"`
	Lines      []calc.Line `json:"lines"`
}

// NewServer creates a server with its routes and middlewares registered
func NewServer(cfg *Config, logger *zap.Logger) (*Server, error) {
	renderer, err := rendering.NewPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:     e,
		cfg:      cfg,
		renderer: renderer,
		logger:   logger,
		metrics:  newMetrics(),
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s, nil
}

func (s *Server) setupMiddlewares() {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogLatency:   true,
		LogURI:       true,
		LogError:     true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				s.logger.Error("request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			s.logger.Info("request", fields...)
			return nil
		},
	}))
	s.Echo.Use(middleware.Recover())
}

func (s *Server) setupRoutes() {
	s.Echo.GET("/", s.handlePage)
	s.Echo.GET("/api/eval", s.handleEval)
	s.Echo.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	s.Echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
}

// handlePage renders the HTML page for the expressions in the URL
func (s *Server) handlePage(c echo.Context) error {
	q := query.NewQuery(c.Request().URL)
	vm := views.BuildPageViewModel(s.cfg.AppName, q)
	s.metrics.observe("page", len(q.Expressions), vm.Status)

	// Render into a buffer so a template error can still produce a clean 500
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, vm); err != nil {
		s.logger.Error("template rendering error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "rendering failed")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// handleEval runs the expressions in the URL like a command line invocation
func (s *Server) handleEval(c echo.Context) error {
	q := query.NewQuery(c.Request().URL)

	transcript := &calc.Transcript{}
	status := calc.Run(s.cfg.AppName, q.Expressions, transcript)
	s.metrics.observe("api", len(q.Expressions), status)

	code := http.StatusOK
	if status.Failed() {
		code = http.StatusUnprocessableEntity
	}
	return c.JSON(code, EvalResponse{
		Status:     int(status),
		StatusName: status.String(),
		Lines:      transcript.Lines,
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.cfg.Addr()))
		if err := s.Echo.Start(s.cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
