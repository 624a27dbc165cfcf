package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "github.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/async"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/export"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/ingest"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/pipeline"
	repo "github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
	svc "github.com/FadhilAufa5/kfa-validation-sub001/internal/server"
)

func main() {
	// Structured logger with message + variables but no time/level noise.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	stagingRepo := repo.NewStagingRepository(entc, logger)
	sourceRepo := repo.NewSourceRepository(pool, logger)
	runsRepo := repo.NewRunRepository(entc, logger)
	resultsRepo := repo.NewResultsRepository(entc, logger)

	resolver := mapping.NewResolver(cfg.Pipeline.DefaultTolerance, logger)
	if cfg.Pipeline.MappingFile != "" {
		if err := resolver.LoadMappingFile(cfg.Pipeline.MappingFile); err != nil {
			logger.Error("failed to load mapping file", "path", cfg.Pipeline.MappingFile, "error", err)
			os.Exit(1)
		}
	}

	reader := ingest.NewReader(logger)
	mapper := pipeline.NewMapper(reader, stagingRepo, logger)
	classifier := pipeline.NewClassifier(stagingRepo, logger)
	persister := pipeline.NewPersister(resultsRepo, logger)
	processor := pipeline.NewProcessor(resolver, mapper, stagingRepo, sourceRepo, classifier, persister, logger)

	queue := async.NewValidatorQueue(processor, runsRepo, logger,
		async.WithWorkers(cfg.Validator.Workers),
		async.WithQueueSize(cfg.Validator.QueueSize),
		async.WithJobTimeout(cfg.Validator.JobTimeout),
		async.WithMaxAttempts(cfg.Validator.MaxAttempts),
		async.WithRetryDelay(cfg.Validator.RetryDelay),
	)

	exporter := export.NewService(entc, runsRepo, logger)

	validationService := svc.NewValidationService(processor, queue, runsRepo, resultsRepo, exporter, logger)
	v1.RegisterValidationServiceServer(grpcServer, validationService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("validationd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
