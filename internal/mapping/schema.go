package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// buildMappingJSONSchema returns the JSON-Schema (draft 2020-12 subset) for a
// mapping override file, as a generic map.
func buildMappingJSONSchema() map[string]any {
	toleranceProp := map[string]any{"type": "number", "minimum": 0.0}
	columnPair := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string", "minLength": 1},
		"minItems": 2,
		"maxItems": 2,
	}
	entry := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"document_type":     map[string]any{"type": "string", "minLength": 1},
			"document_category": map[string]any{"type": "string", "minLength": 1},
			"source_table":      map[string]any{"type": "string", "minLength": 1},
			"connector_columns": columnPair,
			"sum_columns":       columnPair,
			"tolerance":         toleranceProp,
			"metadata_columns":  map[string]any{"type": "object"},
		},
		"required": []string{"document_type", "document_category", "source_table", "connector_columns", "sum_columns"},
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"mappings": map[string]any{"type": "array", "items": entry, "minItems": 1},
		},
		"required": []string{"mappings"},
	}
}

// validateAgainstSchema validates "data" against "schemaMap".
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

type mappingFile struct {
	Mappings []mappingFileEntry `json:"mappings"`
}

type mappingFileEntry struct {
	DocumentType     string `json:"document_type"`
	DocumentCategory string `json:"document_category"`
	DocumentConfig
}

// LoadMappingFile reads a JSON mapping table, validates it against the schema
// above, and installs it on the resolver, replacing the built-ins.
func (r *Resolver) LoadMappingFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read mapping file: %w", err)
	}
	if err := validateAgainstSchema(buildMappingJSONSchema(), data); err != nil {
		return fmt.Errorf("mapping file %s: %w", path, err)
	}
	var mf mappingFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return fmt.Errorf("decode mapping file: %w", err)
	}
	configs := make(map[configKey]DocumentConfig, len(mf.Mappings))
	for _, m := range mf.Mappings {
		configs[configKey{m.DocumentType, m.DocumentCategory}] = m.DocumentConfig
	}
	r.Replace(configs)
	return nil
}
