package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"org-access-control/internal/config"
	"org-access-control/internal/db"
	"org-access-control/internal/db/migrate"
	healthhandler "org-access-control/internal/health/handler"
	"org-access-control/internal/logger"
	"org-access-control/internal/security"
	"org-access-control/internal/server"
	"org-access-control/internal/server/interceptors"
	"org-access-control/internal/telemetry"
	oteltelemetry "org-access-control/internal/telemetry/otel"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		return err
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	providers, err := oteltelemetry.NewProviders(ctx, oteltelemetry.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.OTELServiceName,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	providers.SetGlobal()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = providers.Shutdown(shutdownCtx)
	}()
	metrics, err := telemetry.NewMetrics(providers.MeterProvider.Meter(telemetry.MeterName))
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	if cfg.AutoMigrate {
		if err := migrate.Run(cfg.DatabaseURL, migrate.Up); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("migrations applied")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer conn.Close()

	authn, err := authenticator(cfg, log)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	deps := server.PostgresDeps(conn, metrics)
	go deps.Health.Run(ctx, healthhandler.ProbeInterval)
	s := server.New(server.Options{Authenticator: authn, Logger: log, Telemetry: true}, deps)

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.GRPCAddr).Info("gRPC server listening")
		serveErr <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("serve: %w", err)
		}
	}

	log.Info("shutting down gRPC server...")
	gracefulStop(s, shutdownTimeout)
	log.Info("gRPC server stopped")
	return nil
}

func authenticator(cfg *config.Config, log *logger.Logger) (grpc.UnaryServerInterceptor, error) {
	if cfg.AuthDisabled {
		log.Warn("AUTH_DISABLED: trusting x-user-id metadata; never use this outside development")
		return interceptors.HeaderIdentityUnary(server.PublicMethods()), nil
	}
	pub, err := security.ParsePublicKey(cfg.JWTPublicKey)
	if err != nil {
		return nil, err
	}
	verifier, err := security.NewVerifier(pub, cfg.JWTIssuer, cfg.JWTAudience)
	if err != nil {
		return nil, err
	}
	return interceptors.AuthUnary(verifier, server.PublicMethods()), nil
}

// gracefulStop drains in-flight RPCs, forcing a stop after timeout.
func gracefulStop(s *grpc.Server, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
		s.Stop()
	}
}
