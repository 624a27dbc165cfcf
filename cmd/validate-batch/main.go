package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/export"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/ingest"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/pipeline"
	repo "github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "dry run against an in-memory SQLite database: map the file and print stats, skip source comparison")
		file      = flag.String("file", "", "uploaded document to validate (required)")
		docType   = flag.String("type", "", "document type: purchase or sales (required)")
		category  = flag.String("category", "regular", "document category: regular or retur")
		userID    = flag.String("user", "cli", "user id recorded on the run")
		headerRow = flag.Int("header-row", 1, "1-based header row in the uploaded file")
		out       = flag.String("out", "", "output XLSX report path (optional, defaults next to the input file)")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	if *docType == "" {
		printError("Error: --type is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
		*out = filepath.Join(filepath.Dir(*file), base+"-report.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if !*inmem {
		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	}

	dbResult, err := repo.InitDatabase(ctx, cfg.Database, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	entc := dbResult.Client

	stagingRepo := repo.NewStagingRepository(entc, logger)
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

	req := pipeline.Request{
		Path:             *file,
		Filename:         filepath.Base(*file),
		DocumentType:     *docType,
		DocumentCategory: *category,
		UserID:           *userID,
		HeaderRow:        *headerRow,
	}

	if *inmem {
		// mapping-only dry run: no source tables exist in the fresh database
		resolved, err := resolver.Resolve(req.DocumentType, req.DocumentCategory)
		if err != nil {
			logger.Error("failed to resolve document config", "error", err)
			os.Exit(1)
		}
		stats, err := mapper.Map(ctx, req, resolved)
		if err != nil {
			logger.Error("mapping failed", "file", *file, "error", err)
			os.Exit(1)
		}
		sums, err := stagingRepo.AggregateByConnector(ctx, req.Scope())
		if err != nil {
			logger.Error("aggregation failed", "error", err)
			os.Exit(1)
		}
		logger.Info("dry run complete",
			"file", *file,
			"accepted", stats.Accepted,
			"skipped", stats.Skipped,
			"failed", stats.Failed,
			"connector_groups", len(sums))
		return
	}

	sourceRepo := repo.NewSourceRepository(dbResult.Pool, logger)
	classifier := pipeline.NewClassifier(stagingRepo, logger)
	persister := pipeline.NewPersister(resultsRepo, logger)
	processor := pipeline.NewProcessor(resolver, mapper, stagingRepo, sourceRepo, classifier, persister, logger)

	run, stats, err := processor.Run(ctx, req)
	if err != nil {
		logger.Error("validation failed", "file", *file, "error", err)
		os.Exit(1)
	}

	logger.Info("validation complete",
		"run_id", run.ID,
		"score", run.Score,
		"total", run.TotalRecords,
		"matched", run.MatchedRecords,
		"mismatched", run.MismatchedRecords,
		"accepted", stats.Accepted,
		"skipped", stats.Skipped,
		"failed", stats.Failed)

	exportService := export.NewService(entc, runsRepo, logger)
	_, xlsxBytes, err := exportService.ExportRunXLSX(ctx, run.ID)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}
	logger.Info("report written", "output", *out)
}
