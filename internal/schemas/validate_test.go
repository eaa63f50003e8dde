package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResponse_ProjectBatch_Valid(t *testing.T) {
	doc := `{"earned_badges": [{"key": "speed_demon", "tier": "gold", "reason": "350 exceeds 300"}]}`
	require.NoError(t, ValidateResponse(ProjectBatchResponse, doc))
}

func TestValidateResponse_ProjectBatch_EmptyList(t *testing.T) {
	require.NoError(t, ValidateResponse(ProjectBatchResponse, `{"earned_badges": []}`))
}

func TestValidateResponse_ProjectBatch_MissingEnvelope(t *testing.T) {
	err := ValidateResponse(ProjectBatchResponse, `{"badges": []}`)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResponse_ProjectBatch_WrongEnvelopeType(t *testing.T) {
	err := ValidateResponse(ProjectBatchResponse, `{"earned_badges": "none"}`)
	require.Error(t, err)
}

func TestValidateResponse_ProjectBatch_ExtraEntryFieldsAllowed(t *testing.T) {
	// Entry-level tolerance belongs to the calculator; the schema only
	// pins the envelope.
	doc := `{"earned_badges": [{"key": "x", "tier": "platinum", "confidence": 0.9}]}`
	require.NoError(t, ValidateResponse(ProjectBatchResponse, doc))
}

func TestValidateResponse_ProjectBatch_IllTypedEntriesPassEnvelope(t *testing.T) {
	// Entries with wrong field types, or non-object entries, are dropped
	// individually downstream; they must not fail the envelope check.
	doc := `{"earned_badges": [{"key": "x", "tier": 5}, "junk", 42]}`
	require.NoError(t, ValidateResponse(ProjectBatchResponse, doc))
}

func TestValidateResponse_Aggregate_Valid(t *testing.T) {
	doc := `{"earned": true, "tier": "silver", "reason": "improvement in 3 distinct projects"}`
	require.NoError(t, ValidateResponse(AggregateResponse, doc))
}

func TestValidateResponse_Aggregate_NotEarned(t *testing.T) {
	require.NoError(t, ValidateResponse(AggregateResponse, `{"earned": false}`))
}

func TestValidateResponse_Aggregate_MissingEarned(t *testing.T) {
	err := ValidateResponse(AggregateResponse, `{"tier": "gold"}`)
	require.Error(t, err)
}

func TestValidateResponse_Aggregate_EarnedWrongType(t *testing.T) {
	err := ValidateResponse(AggregateResponse, `{"earned": "yes"}`)
	require.Error(t, err)
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := ValidateResponse(ProjectBatchResponse, `not json at all`)
	require.Error(t, err)
}

func TestValidateResponse_UnknownSchema(t *testing.T) {
	err := ValidateResponse("missing.schema.json", `{}`)
	require.Error(t, err)
}
