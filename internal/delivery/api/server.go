package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"bloodlink/config"
	"bloodlink/internal/delivery"
	apimiddleware "bloodlink/internal/delivery/api/middleware"
	"bloodlink/internal/delivery/api/router"
	"bloodlink/internal/delivery/api/validator"
	deliverycontext "bloodlink/internal/delivery/context"
	"bloodlink/internal/delivery/middleware"
	"bloodlink/internal/domain/lifecycle"
	"bloodlink/internal/errors"
	"bloodlink/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const defaultBodyLimit = "1M"

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics `optional:"true"`
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := newEcho(params.Cfg, params.Logger, params.Metrics, params.RouterParams)
	if err != nil {
		return nil, err
	}

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// newEcho assembles the middleware chain and the routes.
func newEcho(cfg *config.Config, logger *slog.Logger, m *metrics.Metrics, routerParams router.RouterParams) (*echo.Echo, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. Metrics middleware
	metricsMiddleware := middleware.NewMetricsMiddleware(m)
	echoServer.Use(metricsMiddleware.Handle)

	// 5. CORS middleware
	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORS.AllowOrigins
	}
	corsConfig.AllowHeaders = []string{
		echo.HeaderOrigin,
		echo.HeaderContentType,
		echo.HeaderAccept,
		echo.HeaderAuthorization,
		deliverycontext.HeaderXRequestID,
	}
	corsConfig.ExposeHeaders = []string{deliverycontext.HeaderXRequestID}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))

	// 6. Request body size limit
	bodyLimit := cfg.HTTP.MaxRequestBodySize
	if bodyLimit == "" {
		bodyLimit = defaultBodyLimit
	}
	echoServer.Use(echomiddleware.BodyLimit(bodyLimit))

	// Set up centralized error handler
	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	routerParams.Metrics = m
	r := router.NewRouter(routerParams)
	if err := r.RegisterRoutes(echoServer); err != nil {
		return nil, err
	}

	return echoServer, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
