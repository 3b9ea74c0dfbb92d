package http

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/pantrystack/pantry-tracker/internal/config"
	"github.com/pantrystack/pantry-tracker/internal/http/metric"
	"github.com/pantrystack/pantry-tracker/internal/http/middleware"
	"github.com/pantrystack/pantry-tracker/internal/http/swagger"
	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/internal/storage/db"
	"github.com/pantrystack/pantry-tracker/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	validate     validator.Validator
	productSvc   service.ProductService
	containerSvc service.ContainerService
	codeSvc      service.CodeService
	health       db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	validate validator.Validator,
	productSvc service.ProductService,
	containerSvc service.ContainerService,
	codeSvc service.CodeService,
	health db.HealthChecker,
) *Service {
	return &Service{
		cfg:          cfg,
		logger:       log.With(slog.String("service", "http")),
		metrics:      metric.New(),
		validate:     validate,
		productSvc:   productSvc,
		containerSvc: containerSvc,
		codeSvc:      codeSvc,
		health:       health,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	products := newProductHandler(s.logger, s.validate, s.productSvc)
	containers := newContainerHandler(s.logger, s.validate, s.containerSvc, s.codeSvc)
	health := newHealthHandler(s.logger, s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.list)
			r.Post("/", products.create)
			r.Get("/{id}", products.get)
			r.Patch("/{id}", products.update)
			r.Delete("/{id}", products.delete)
		})

		r.Route("/containers", func(r chi.Router) {
			r.Get("/", containers.list)
			r.Post("/", containers.create)
			r.Get("/{id}", containers.get)
			r.Patch("/{id}", containers.update)
			r.Delete("/{id}", containers.delete)
			r.Get("/{id}/qrcode", containers.qrcode)
		})
	})

	r.Get("/healthz", health.healthz)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}
