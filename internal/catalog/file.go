package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-job-matcher/internal/schemas"
	"github.com/jonathan/cv-job-matcher/internal/types"
)

// catalogSchemaPath is the repo-relative location of the catalog schema.
const catalogSchemaPath = "schemas/job_catalog.schema.json"

// FileSource loads a job catalog from a local JSON file.
type FileSource struct {
	Path string
	// SchemaPath overrides the default schema location. When neither the
	// override nor the default schema can be found, schema validation is
	// skipped and only struct validation applies.
	SchemaPath string
}

// Name identifies the source in logs and errors.
func (s *FileSource) Name() string {
	return "file:" + s.Path
}

// Load reads and parses the catalog file, validating it against the catalog
// JSON schema when one can be located.
func (s *FileSource) Load(_ context.Context) ([]types.JobListing, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parseCatalogJSON(data, s.schemaPath())
}

func (s *FileSource) schemaPath() string {
	if s.SchemaPath != "" {
		return s.SchemaPath
	}
	return schemas.ResolveSchemaPath(catalogSchemaPath)
}

// parseCatalogJSON validates and unmarshals a catalog document. An empty
// schemaPath skips schema validation.
func parseCatalogJSON(data []byte, schemaPath string) ([]types.JobListing, error) {
	if schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return nil, fmt.Errorf("catalog does not match schema: %w", err)
		}
	}

	var jobs []types.JobListing
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return jobs, nil
}
