package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/business-service/internal/api"
	"github.com/vladislavdragonenkov/business-service/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/business-service/internal/health"
	"github.com/vladislavdragonenkov/business-service/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/business-service/internal/metrics"
	"github.com/vladislavdragonenkov/business-service/internal/service"
	"github.com/vladislavdragonenkov/business-service/internal/storage/memory"
	mongostore "github.com/vladislavdragonenkov/business-service/internal/storage/mongo"
	"github.com/vladislavdragonenkov/business-service/internal/storage/postgres"
	"github.com/vladislavdragonenkov/business-service/internal/version"
)

// Run собирает зависимости и держит приложение до отмены контекста.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	healthHandler := healthcheck.NewHandler(version.String())

	var (
		productRepo domain.ProductRepository
		orderRepo   domain.OrderRepository
	)

	switch cfg.StorageDriver {
	case StorageDriverMemory:
		logger.Warn("используется in-memory хранилище, данные не переживут рестарт")
		productRepo = memory.NewProductRepository()
		orderRepo = memory.NewOrderRepository()
	default:
		pgStore, err := postgres.Open(ctx, cfg.PostgresDSN(), cfg.PostgresMaxConns)
		if err != nil {
			return err
		}
		defer func() { _ = pgStore.Close() }()

		if err := pgStore.EnsureSchema(ctx); err != nil {
			return err
		}
		logger.Info("схема PostgreSQL готова")

		mongoStore, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoStore.Close(closeCtx)
		}()

		healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
			return pgStore.Ping(context.Background())
		}))
		healthHandler.RegisterChecker("mongodb", healthcheck.NewSimpleChecker("mongodb", func() error {
			return mongoStore.Ping(context.Background())
		}))

		orderRepo = postgres.NewOrderRepository(pgStore)
		productRepo = mongostore.NewProductRepository(mongoStore)
	}

	// Kafka опционален: без брокеров сервис работает, просто не публикует события.
	var events domain.OrderEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.WithError(err).Warn("не удалось создать kafka producer, продолжаем без публикации событий")
		} else {
			events = producer
			logger.WithField("brokers", cfg.KafkaBrokers).Info("kafka producer инициализирован")
			defer func() {
				if err := producer.Close(); err != nil {
					logger.WithError(err).Warn("не удалось закрыть kafka producer")
				}
			}()
		}
	}

	serviceLogger := logger.WithField("layer", "service")
	productSvc := service.NewProductService(productRepo, serviceLogger)
	orderSvc := service.NewOrderService(orderRepo, events, serviceLogger)

	httpLogger := logger.WithField("layer", "http")
	mux := api.NewRouter(
		api.NewProductHandler(productSvc, httpLogger),
		api.NewOrderHandler(orderSvc, httpLogger),
		healthHandler,
		metrics.NewHTTPMetrics(),
	)

	apiSrv := &http.Server{Addr: cfg.ServerAddr(), Handler: mux}
	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("API сервер слушает %s", cfg.ServerAddr())
		errCh <- apiSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP серверы")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
