package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	_ "cargofunds/api/swagger" // swagger docs
	"cargofunds/internal/config"
	"cargofunds/internal/database"
	"cargofunds/internal/handler"
	"cargofunds/internal/logger"
	"cargofunds/internal/metrics"
	"cargofunds/internal/middleware"
	"cargofunds/internal/repository"
	"cargofunds/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}

			db, err := database.NewConnection(cfg.Database)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return err
			}
			logrus.Info("Database migrated successfully.")
			return nil
		},
	}
}

// bootstrap loads configuration and configures logging. It returns the log writer for the access log.
func bootstrap() (*config.Config, io.Writer, error) {
	config.LoadEnvFile("configs/.env")

	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}
	out, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, out, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logOut, err := bootstrap()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logrus.WithError(err).Error("Database connection failed")
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	logrus.WithField("driver", cfg.Database.Driver).Info("Connected to database successfully.")

	m := metrics.New(prometheus.DefaultRegisterer)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	transporterRepo := repository.NewTransporterRepository(db)
	txnRepo := repository.NewTransactionRepository(db)

	secret := []byte(cfg.Auth.Secret)
	services := handler.Services{
		Users:    service.NewUserService(userRepo, secret, cfg.Auth.TokenTTL),
		Requests: service.NewRequestService(requestRepo, driverRepo, transporterRepo, userRepo, txManager, service.WithMetrics(m)),
		Teams:    service.NewTeamService(driverRepo, transporterRepo, requestRepo, txManager, service.WithMetrics(m)),
		Funds:    service.NewFundsService(txnRepo, requestRepo, txManager, service.WithMetrics(m)),
	}

	router := handler.NewRouter(handler.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   logOut,
		Gatherer:    prometheus.DefaultGatherer,
	}, middleware.NewAuthenticator(secret), services)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Port).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
		logrus.Info("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
