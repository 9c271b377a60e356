package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	scoundrelv1alpha1 "github.com/KirkDiggler/rpg-scoundrel/internal/api/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/config"
	"github.com/KirkDiggler/rpg-scoundrel/internal/handlers/scoundrel/v1alpha1"
	"github.com/KirkDiggler/rpg-scoundrel/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-scoundrel/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-scoundrel/internal/redis"
	"github.com/KirkDiggler/rpg-scoundrel/internal/repositories/games"
	"github.com/KirkDiggler/rpg-scoundrel/internal/telemetry"
)

const (
	shutdownTimeout = 30 * time.Second
	sweepInterval   = time.Minute
)

var serverViper = config.New()

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the scoundrel gRPC server.

Settings come from flags, SCOUNDREL_* environment variables (SCOUNDREL_REDIS_ADDR,
SCOUNDREL_LOG_LEVEL, ...) or a --config file, in that order of precedence.`,
	RunE: runServer,
}

func init() {
	if err := config.BindFlags(serverViper, serverCmd.Flags()); err != nil {
		panic(err)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serverViper)
	if err != nil {
		return err
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint, telemetry.ServiceName)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Failed to flush traces", "error", err)
		}
	}()

	srv, closeStore, err := buildServer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.Port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// buildServer wires the game store, orchestrator and handler into a gRPC
// server. The returned func releases the store.
func buildServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*grpc.Server, func(), error) {
	clk := clock.New()

	gameRepo, closeStore, err := newGameRepository(ctx, cfg, clk)
	if err != nil {
		return nil, nil, err
	}

	gameService, err := game.NewOrchestrator(&game.Config{
		GameRepo:    gameRepo,
		IDGenerator: idgen.NewUUID("game"),
		DiceRoller:  dice.DefaultRoller,
		Clock:       clk,
		SessionTTL:  cfg.SessionTTL,
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("failed to create game service: %w", err)
	}

	gameHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		GameService: gameService,
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("failed to create game handler: %w", err)
	}

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(recoverPanic)),
		),
	)

	scoundrelv1alpha1.RegisterGameServiceServer(srv, gameHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(scoundrelv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	return srv, closeStore, nil
}

// newGameRepository picks redis when an address is configured and the
// in-memory store otherwise
func newGameRepository(ctx context.Context, cfg *config.Config, clk clock.Clock) (games.Repository, func(), error) {
	if cfg.RedisAddr == "" {
		repo := games.NewInMemory(clk)
		sweepCtx, stopSweep := context.WithCancel(ctx)
		go sweepExpired(sweepCtx, repo, sweepInterval)

		slog.Info("Using in-memory game store", "session_ttl", cfg.SessionTTL)
		return repo, stopSweep, nil
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		MaxRetries: 3,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.RedisAddr, err)
	}

	repo, err := games.NewRedis(&games.RedisConfig{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		closeClient()
		return nil, nil, fmt.Errorf("failed to create game repository: %w", err)
	}

	slog.Info("Using redis game store", "addr", cfg.RedisAddr, "session_ttl", cfg.SessionTTL)
	return repo, closeClient, nil
}

func sweepExpired(ctx context.Context, repo *games.InMemoryRepository, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := repo.Sweep(); removed > 0 {
				slog.Info("Expired games removed", "count", removed)
			}
		}
	}
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// interceptorLogger adapts slog to the go-grpc-middleware logger; their
// level values line up.
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in handler", "panic", p)
	return status.Error(codes.Internal, "internal error")
}
