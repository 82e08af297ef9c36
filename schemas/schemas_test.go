package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/draft-board/internal/schemas"
)

const schemaFile = "source_config.schema.json"

func readSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(schemaFile)
	require.NoError(t, err, "should be able to read schema file")
	return string(data)
}

func TestSourceConfigSchema_ValidJSON(t *testing.T) {
	data := readSchema(t)

	var schemaObj map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &schemaObj))

	_, hasType := schemaObj["type"]
	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	assert.True(t, hasType && hasSchema && hasProps)
}

func TestSourceConfigSchema_AcceptsFullConfig(t *testing.T) {
	doc := `{
		"database_url": "postgres://localhost:5432/draftboard",
		"verbose": true,
		"match": {
			"name_weight": 0.7,
			"college_weight": 0.3,
			"accept_threshold": 90,
			"new_threshold": 60,
			"margin": 10
		},
		"sources": [
			{
				"name": "pff",
				"base_url": "https://example.com/draft-board",
				"pages": 3,
				"rate_limit_seconds": 3,
				"max_attempts": 3,
				"priority": 10,
				"native_min": 60,
				"native_max": 100,
				"scale": [
					{"native": 60, "normalized": 5.0},
					{"native": 100, "normalized": 10.0}
				],
				"position_labels": {"OT": "OL", "HB": "RB"},
				"use_browser": false
			}
		]
	}`

	assert.NoError(t, schemas.ValidateJSONString(readSchema(t), doc))
}

func TestSourceConfigSchema_RejectsMissingIdentityFields(t *testing.T) {
	doc := `{
		"sources": [
			{"base_url": "https://example.com", "native_min": 0, "native_max": 100}
		]
	}`

	err := schemas.ValidateJSONString(readSchema(t), doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestSourceConfigSchema_RejectsOutOfRangeBreakpoint(t *testing.T) {
	doc := `{
		"sources": [
			{
				"name": "pff",
				"base_url": "https://example.com",
				"native_min": 0,
				"native_max": 100,
				"scale": [
					{"native": 0, "normalized": 5.0},
					{"native": 100, "normalized": 11.0}
				],
				"position_labels": {"QB": "QB"}
			}
		]
	}`

	err := schemas.ValidateJSONString(readSchema(t), doc)
	require.Error(t, err)

	var ve *schemas.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestSourceConfigSchema_RejectsUnknownKeys(t *testing.T) {
	doc := `{"databaze_url": "postgres://localhost/draftboard"}`

	err := schemas.ValidateJSONString(readSchema(t), doc)
	assert.Error(t, err, "misspelled keys must not pass silently")
}
