// Package http implements the HTTP delivery surface on echo.
package http

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"agrisense/config"
	"agrisense/internal/delivery"
	custommiddleware "agrisense/internal/delivery/http/middleware"
	"agrisense/internal/delivery/http/router"
	"agrisense/internal/delivery/http/validator"
	deliverymiddleware "agrisense/internal/delivery/middleware"
	"agrisense/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// HTTPParams carries everything NewServer needs from the fx graph.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	RouterParams    router.RouterParams
	ErrorMiddleware *custommiddleware.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer assembles the echo instance, registers all routes and hooks
// graceful shutdown into the fx lifecycle. It is provided into the
// "deliveries" group so main can serve every transport uniformly.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e := buildEcho(params)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func buildEcho(params HTTPParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	// Request ID runs after recovery/CORS so even panicking requests get a
	// traceable response.
	e.Use(slogecho.New(params.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(deliverymiddleware.NewRequestIDMiddleware(params.Logger).Process)

	if limit := params.Config.HTTP.MaxRequestBodySize; limit != "" {
		e.Use(middleware.BodyLimit(limit))
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e
}

// Serve blocks on the listener until Shutdown is called or the listener
// fails.
func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
