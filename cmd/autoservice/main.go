package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tansu/autoservice/internal/config"
	customerrepo "github.com/tansu/autoservice/internal/customer/repository"
	employeerepo "github.com/tansu/autoservice/internal/employee/repository"
	inventoryrepo "github.com/tansu/autoservice/internal/inventory/repository"
	jobrepo "github.com/tansu/autoservice/internal/job/repository"
	orderrepo "github.com/tansu/autoservice/internal/order/repository"
	supplierrepo "github.com/tansu/autoservice/internal/supplier/repository"
	userrepo "github.com/tansu/autoservice/internal/user/repository"
	usercommand "github.com/tansu/autoservice/internal/user/usecase/command"
	"github.com/tansu/autoservice/pkg/database"
	"github.com/tansu/autoservice/pkg/logger"
	"github.com/tansu/autoservice/pkg/tracing"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("autoservice", true)
		logger.Error(ctx).Err(err).Msg("failed to load configuration")
		os.Exit(1)
	}

	logger.Init("autoservice", cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	tp, err := tracing.InitTracer("autoservice", cfg.JaegerEndpoint)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("failed to initialize tracer")
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
			logger.Warn(shutdownCtx).Err(err).Msg("tracer shutdown failed")
		}
	}()

	manager, err := database.Open(cfg.DatabaseConfig())
	if err != nil {
		logger.Error(ctx).Err(err).Msg("failed to open database pool")
		os.Exit(1)
	}
	defer func() {
		if err := manager.Close(); err != nil {
			logger.Warn(ctx).Err(err).Msg("pool close failed")
		}
	}()

	if err := migrate(manager); err != nil {
		logger.Error(ctx).Err(err).Msg("migrations failed")
		os.Exit(1)
	}

	if err := bootstrapAdmin(manager); err != nil {
		logger.Error(ctx).Err(err).Msg("admin bootstrap failed")
		os.Exit(1)
	}

	prometheus.MustRegister(database.NewStatsCollector(manager.SQLDB(), cfg.DBName))

	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		checkCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if !manager.HealthCheck(checkCtx) {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: router,
	}
	// A server failure funnels into the same shutdown path as a signal so
	// the deferred pool and tracer teardown always run.
	serverErr := make(chan error, 1)
	go func() {
		logger.Info(ctx).Str("addr", srv.Addr).Msg("ops endpoint listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info(ctx).Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error(ctx).Err(err).Msg("ops endpoint failed, shutting down")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn(shutdownCtx).Err(err).Msg("ops endpoint shutdown failed")
	}
}

// migrate creates the schema. Referenced tables migrate before the tables
// that carry foreign keys to them.
func migrate(m *database.Manager) error {
	db := m.DB()
	steps := []func() error{
		customerrepo.NewGormCustomerRepository(db).AutoMigrate,
		employeerepo.NewGormEmployeeRepository(db).AutoMigrate,
		supplierrepo.NewGormSupplierRepository(db).AutoMigrate,
		userrepo.NewGormUserRepository(db).AutoMigrate,
		orderrepo.NewGormOrderRepository(db).AutoMigrate,
		jobrepo.NewGormJobRepository(db).AutoMigrate,
		inventoryrepo.NewGormItemRepository(db).AutoMigrate,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// bootstrapAdmin seeds the first admin account on an empty user table.
// Credentials come from the environment so a fresh deployment is never
// left without a login.
func bootstrapAdmin(m *database.Manager) error {
	repo := userrepo.NewGormUserRepository(m.DB())
	handler := usercommand.NewBootstrapAdminHandler(repo)

	created, err := handler.Handle(usercommand.BootstrapAdminCommand{
		Username: envOr("ADMIN_USERNAME", "admin"),
		Email:    envOr("ADMIN_EMAIL", "admin@localhost"),
		Password: envOr("ADMIN_PASSWORD", "ChangeMe123"),
		FullName: envOr("ADMIN_FULL_NAME", "Administrator"),
	})
	if err != nil {
		return err
	}
	if created {
		logger.Info(context.Background()).Msg("initial admin account created")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
