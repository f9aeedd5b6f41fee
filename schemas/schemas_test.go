package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-job-matcher/internal/schemas"
)

func TestJobCatalogSchema_ValidJSON(t *testing.T) {
	schemaPath := filepath.Join(".", "job_catalog.schema.json")

	data, err := os.ReadFile(schemaPath)
	require.NoError(t, err, "schema file should be readable")

	var parsed map[string]any
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err, "schema file should be valid JSON")

	assert.Equal(t, "array", parsed["type"])
}

func TestJobCatalogSchema_AcceptsValidCatalog(t *testing.T) {
	catalog := `[
		{
			"id": "job-001",
			"title": "Backend Developer",
			"company": "Acme",
			"skills": ["python", "django"],
			"requirements": ["python", "postgresql"],
			"experience": "3-5 years",
			"description": "Build services."
		}
	]`

	schemaContent, err := os.ReadFile("job_catalog.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), catalog)
	assert.NoError(t, err)
}

func TestJobCatalogSchema_RejectsMissingTitle(t *testing.T) {
	catalog := `[{"id": "job-001"}]`

	schemaContent, err := os.ReadFile("job_catalog.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), catalog)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestJobCatalogSchema_RejectsUnknownField(t *testing.T) {
	catalog := `[{"id": "job-001", "title": "Backend Developer", "salary": 100}]`

	schemaContent, err := os.ReadFile("job_catalog.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), catalog)
	assert.Error(t, err)
}
