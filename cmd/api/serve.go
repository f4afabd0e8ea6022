package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/baharkarakas/accounts-backend/internal/api"
	"github.com/baharkarakas/accounts-backend/internal/api/handlers"
	"github.com/baharkarakas/accounts-backend/internal/audit"
	"github.com/baharkarakas/accounts-backend/internal/auth"
	"github.com/baharkarakas/accounts-backend/internal/config"
	"github.com/baharkarakas/accounts-backend/internal/db"
	"github.com/baharkarakas/accounts-backend/internal/logger"
	"github.com/baharkarakas/accounts-backend/internal/metrics"
	"github.com/baharkarakas/accounts-backend/internal/repository"
	"github.com/baharkarakas/accounts-backend/internal/repository/memory"
	"github.com/baharkarakas/accounts-backend/internal/repository/postgres"
	"github.com/baharkarakas/accounts-backend/internal/services"
	"github.com/baharkarakas/accounts-backend/internal/worker"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Env)
			slog.SetDefault(log)
			return serve(cmd.Context(), cfg, log)
		},
	}
}

// stores is the repository set the services run against.
type stores struct {
	accounts repository.Accounts
	profiles repository.Profiles
	events   repository.AuditEvents
	close    func()
}

func openStores(ctx context.Context, cfg config.Config, log *slog.Logger) (stores, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		r := memory.NewRepositories()
		return stores{accounts: r.Accounts, profiles: r.Profiles, events: r.AuditEvents, close: func() {}}, nil
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return stores{}, fmt.Errorf("db connect: %w", err)
	}
	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return stores{}, fmt.Errorf("migrations: %w", err)
		}
	}
	r := postgres.NewRepositories(pool)
	return stores{accounts: r.Accounts, profiles: r.Profiles, events: r.AuditEvents, close: pool.Close}, nil
}

func serve(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close()

	metrics.Init()

	var auditOpts []audit.Option
	var wp *worker.Pool
	if cfg.AuditAsync {
		wp = worker.NewPool(cfg.AuditWorkers, cfg.AuditQueueSize)
		auditOpts = append(auditOpts, audit.WithPool(wp))
	}
	auditLog := audit.NewLogger(st.events, log, auditOpts...)

	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)

	r := api.NewRouter(api.RouterDeps{
		Env:      cfg.Env,
		RateRPS:  cfg.RateRPS,
		Tokens:   tokens,
		Accounts: handlers.NewAccountHandler(services.NewUserService(st.accounts, hasher, auditLog)),
		Users: handlers.NewUserHandler(
			services.NewPasswordService(st.accounts, hasher, auditLog),
			services.NewProfileService(st.accounts, st.profiles, auditLog),
			services.NewSettingsService(st.accounts, st.profiles, auditLog),
			services.NewSecurityLogService(st.events),
		),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.Store, "audit_async", cfg.AuditAsync)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
	// drain queued audit writes before the store closes
	if wp != nil {
		wp.Stop()
	}
	return nil
}
