package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/entity"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/mapping"
	"github.com/FadhilAufa5/kfa-validation-sub001/internal/repository"
)

// Processor drives one full reconciliation: map the upload into staging, load
// and aggregate both sides, compare, classify rows, persist. Stages run
// strictly in order; the first failure aborts the rest and propagates to the
// caller (sync path) or the async wrapper.
type Processor struct {
	Resolver   *mapping.Resolver
	Mapper     *Mapper
	Staging    repository.StagingRepository
	Source     repository.SourceRepository
	Classifier *Classifier
	Persister  *Persister
	Logger     *slog.Logger
}

func NewProcessor(
	resolver *mapping.Resolver,
	mapper *Mapper,
	staging repository.StagingRepository,
	source repository.SourceRepository,
	classifier *Classifier,
	persister *Persister,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Resolver:   resolver,
		Mapper:     mapper,
		Staging:    staging,
		Source:     source,
		Classifier: classifier,
		Persister:  persister,
		Logger:     logger,
	}
}

// Run executes the pipeline end to end and returns the persisted run.
func (p *Processor) Run(ctx context.Context, req Request) (*entity.ValidationRun, entity.MappingStats, error) {
	rc := &runContext{req: req, TimingsMS: make(map[string]int64)}
	start := time.Now()

	stages := []struct {
		name string
		fn   func(context.Context, *runContext) error
	}{
		{"resolve_config", p.resolveConfig},
		{"map_upload", p.mapUpload},
		{"load_source", p.loadSource},
		{"aggregate_source", p.aggregateSource},
		{"aggregate_uploaded", p.aggregateUploaded},
		{"compare", p.compare},
		{"classify", p.classify},
		{"persist", p.persist},
	}
	for _, stage := range stages {
		stageStart := time.Now()
		if err := stage.fn(ctx, rc); err != nil {
			p.Logger.Error("pipeline.stage.failed",
				"stage", stage.name,
				"filename", req.Filename,
				"elapsed_ms", time.Since(stageStart).Milliseconds(),
				"err", err,
			)
			return nil, rc.Mapping, err
		}
		rc.TimingsMS[stage.name] = time.Since(stageStart).Milliseconds()
		p.Logger.Info("pipeline.stage.ok", "stage", stage.name, "filename", req.Filename,
			"elapsed_ms", rc.TimingsMS[stage.name])
	}

	p.Logger.Info("pipeline.run.ok",
		"filename", req.Filename,
		"run_id", rc.Run.ID,
		"score", rc.Run.Score,
		"total", rc.Run.TotalRecords,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rc.Run, rc.Mapping, nil
}

func (p *Processor) resolveConfig(_ context.Context, rc *runContext) error {
	cfg, err := p.Resolver.Resolve(rc.req.DocumentType, rc.req.DocumentCategory)
	if err != nil {
		return err
	}
	rc.Config = cfg
	return nil
}

func (p *Processor) mapUpload(ctx context.Context, rc *runContext) error {
	stats, err := p.Mapper.Map(ctx, rc.req, rc.Config)
	if err != nil {
		return err
	}
	rc.Mapping = stats
	return nil
}

func (p *Processor) loadSource(ctx context.Context, rc *runContext) error {
	n, err := p.Source.Count(ctx, rc.Config.SourceTable)
	if err != nil {
		return err
	}
	if n == 0 {
		return common.NewAppError("NO_SOURCE_DATA", rc.Config.SourceTable, common.ErrNoSourceData)
	}
	return nil
}

func (p *Processor) aggregateSource(ctx context.Context, rc *runContext) error {
	m, err := p.Source.AggregateByConnector(ctx, rc.Config.SourceTable, rc.Config.SourceConnector, rc.Config.SourceSum)
	if err != nil {
		return err
	}
	rc.SourceMap = m
	return nil
}

func (p *Processor) aggregateUploaded(ctx context.Context, rc *runContext) error {
	m, err := p.Staging.AggregateByConnector(ctx, rc.req.Scope())
	if err != nil {
		return err
	}
	if len(m) == 0 {
		return common.NewAppError("NO_MAPPED_DATA", rc.req.Filename, common.ErrNoMappedData)
	}
	rc.UploadedMap = m
	return nil
}

func (p *Processor) compare(_ context.Context, rc *runContext) error {
	rc.Groups = Compare(rc.UploadedMap, rc.SourceMap, rc.Config.Tolerance)
	return nil
}

func (p *Processor) classify(ctx context.Context, rc *runContext) error {
	invalidRows, matchedRows, err := p.Classifier.Classify(ctx, rc.req.Scope(), rc.Groups)
	if err != nil {
		return err
	}
	rc.InvalidRows = invalidRows
	rc.MatchedRows = matchedRows
	return nil
}

func (p *Processor) persist(ctx context.Context, rc *runContext) error {
	run, err := p.Persister.Persist(ctx, rc)
	if err != nil {
		return err
	}
	rc.Run = run
	return nil
}
