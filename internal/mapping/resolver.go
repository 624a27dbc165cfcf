package mapping

import (
	"fmt"
	"log/slog"

	"github.com/FadhilAufa5/kfa-validation-sub001/internal/common"
)

// ResolvedConfig is a DocumentConfig with the tolerance fallback applied and
// the column pairs pulled apart for downstream stages.
type ResolvedConfig struct {
	DocumentType      string
	DocumentCategory  string
	SourceTable       string
	UploadedConnector string
	SourceConnector   string
	UploadedSum       string
	SourceSum         string
	Tolerance         float64
	Metadata          MetaPairs
}

// Resolver answers document type + category lookups against an injected
// mapping table. It holds no ambient state; construct once at startup.
type Resolver struct {
	configs          map[configKey]DocumentConfig
	defaultTolerance float64
	logger           *slog.Logger
}

func NewResolver(defaultTolerance float64, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	configs := make(map[configKey]DocumentConfig, len(builtinConfigs))
	for k, v := range builtinConfigs {
		configs[k] = v
	}
	return &Resolver{configs: configs, defaultTolerance: defaultTolerance, logger: logger}
}

// Replace swaps the full mapping table, used after loading a mapping file.
func (r *Resolver) Replace(configs map[configKey]DocumentConfig) {
	r.configs = configs
	r.logger.Info("mapping.table.replaced", "entries", len(configs))
}

// Resolve returns the configuration for a document type + category pair.
// Both connector column names must be configured explicitly; a partial pair
// means the mapping entry is unusable.
func (r *Resolver) Resolve(docType, category string) (ResolvedConfig, error) {
	cfg, ok := r.configs[configKey{docType, category}]
	if !ok {
		return ResolvedConfig{}, common.NewAppError("INVALID_DOCUMENT_TYPE",
			fmt.Sprintf("document type %q category %q", docType, category),
			common.ErrInvalidDocumentType)
	}
	if len(cfg.ConnectorColumns) < 2 || cfg.ConnectorColumns[0] == "" || cfg.ConnectorColumns[1] == "" {
		return ResolvedConfig{}, common.NewAppError("INVALID_DOCUMENT_TYPE",
			fmt.Sprintf("connector columns incomplete for %q/%q", docType, category),
			common.ErrInvalidDocumentType)
	}
	if len(cfg.SumColumns) < 2 || cfg.SumColumns[0] == "" || cfg.SumColumns[1] == "" {
		return ResolvedConfig{}, common.NewAppError("INVALID_DOCUMENT_TYPE",
			fmt.Sprintf("sum columns incomplete for %q/%q", docType, category),
			common.ErrInvalidDocumentType)
	}

	tolerance := r.defaultTolerance
	if cfg.Tolerance != nil {
		tolerance = *cfg.Tolerance
	}

	return ResolvedConfig{
		DocumentType:      docType,
		DocumentCategory:  category,
		SourceTable:       cfg.SourceTable,
		UploadedConnector: cfg.ConnectorColumns[0],
		SourceConnector:   cfg.ConnectorColumns[1],
		UploadedSum:       cfg.SumColumns[0],
		SourceSum:         cfg.SumColumns[1],
		Tolerance:         tolerance,
		Metadata:          cfg.MetadataColumns,
	}, nil
}
