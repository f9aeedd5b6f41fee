package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "title"],
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string"},
		"skills": {"type": "array", "items": {"type": "string"}}
	}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"id": "job-1", "title": "Backend Developer"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_MissingField(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"id": "job-1"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSON_WrongType(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{"id": "job-1", "title": "x", "skills": "not-an-array"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "skills", validationErr.Errors[0].Field)
}

func TestValidateJSON_NonExistentSchema(t *testing.T) {
	jsonPath := writeTemp(t, "doc.json", `{}`)

	err := ValidateJSON("testdata/nonexistent_schema.json", jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)

	err := ValidateJSON(schemaPath, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	schemaPath := writeTemp(t, "schema.json", testSchema)
	jsonPath := writeTemp(t, "doc.json", `{ not json }`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"id": "job-2", "title": "Data Analyst", "skills": ["sql"]}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skills": ["sql"]}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "title", Message: "title is required"},
			{Field: "skills", Message: "Invalid type"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "title is required")
	assert.Contains(t, msg, "skills")
}

func TestResolveSchemaPath(t *testing.T) {
	// A path that exists relative to this package
	resolved := ResolveSchemaPath("validate.go")
	assert.NotEmpty(t, resolved)

	missing := ResolveSchemaPath("does_not_exist.schema.json")
	assert.Empty(t, missing)
}
