package http

import (
	"context"
	"encoding/json"
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

	"github.com/kasirpos/kasirpos/internal/config"
	"github.com/kasirpos/kasirpos/internal/http/apierr"
	"github.com/kasirpos/kasirpos/internal/http/metric"
	"github.com/kasirpos/kasirpos/internal/http/middleware"
	"github.com/kasirpos/kasirpos/internal/http/swagger"
	"github.com/kasirpos/kasirpos/internal/service"
	"github.com/kasirpos/kasirpos/internal/storage/kv"
	"github.com/kasirpos/kasirpos/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg      config.HTTP
	storeCfg config.Store
	logger   *slog.Logger
	metrics  *metric.Metrics
	store    kv.Store

	catalogSvc  service.CatalogService
	checkoutSvc service.CheckoutService
	reportSvc   service.ReportService
	sessionSvc  service.SessionService
	validator   validator.Validator
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	storeCfg config.Store,
	log *slog.Logger,
	v validator.Validator,
	store kv.Store,
	catalogSvc service.CatalogService,
	checkoutSvc service.CheckoutService,
	reportSvc service.ReportService,
	sessionSvc service.SessionService,
) *Service {
	return &Service{
		cfg:         cfg,
		storeCfg:    storeCfg,
		logger:      log.With(slog.String("service", "http")),
		metrics:     metric.New(),
		store:       store,
		catalogSvc:  catalogSvc,
		checkoutSvc: checkoutSvc,
		reportSvc:   reportSvc,
		sessionSvc:  sessionSvc,
		validator:   v,
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
	catalog := newCatalogHandler(s, s.catalogSvc)
	checkout := newCheckoutHandler(s, s.checkoutSvc)
	report := newReportHandler(s, s.reportSvc, s.storeCfg)
	session := newSessionHandler(s, s.sessionSvc)

	r.Route("/api", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Post("/login", session.login)
			r.Get("/", session.current)
			r.Delete("/", session.logout)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalog.listProducts)
			r.Post("/", catalog.createProduct)
			r.Patch("/{productID}", catalog.updateProduct)
			r.Delete("/{productID}", catalog.deleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", catalog.listCategories)
			r.Post("/", catalog.createCategory)
		})

		r.Post("/checkout", checkout.checkout)

		r.Get("/transactions", report.listTransactions)
		r.Get("/transactions/{transactionID}/receipt", report.receipt)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/sales", report.salesReport)
			r.Get("/sales/export", report.salesExport)
			r.Get("/products", report.productReport)
			r.Get("/products/export", report.productExport)
		})
	})

	r.Get("/healthz", s.healthz)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

func (s *Service) healthz(w http.ResponseWriter, r *http.Request) {
	if checker, ok := s.store.(kv.HealthChecker); ok {
		if healthy, err := checker.IsHealthy(r.Context()); !healthy {
			s.writeError(w, r, fmt.Errorf("store unhealthy: %w", err))
			return
		}
	}

	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Service) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

func (s *Service) writeBlob(w http.ResponseWriter, _ *http.Request, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(body)
}
