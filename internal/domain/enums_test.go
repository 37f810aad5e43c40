package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutcome_CanonicalAndLegacyLabels(t *testing.T) {
	cases := map[string]SlaOutcome{
		"early":      OutcomeEarly,
		"Antecipado": OutcomeEarly,
		"on_time":    OutcomeOnTime,
		"No prazo":   OutcomeOnTime,
		" LATE ":     OutcomeLate,
		"Atrasado":   OutcomeLate,
	}
	for in, want := range cases {
		got, ok := ParseOutcome(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := ParseOutcome("Entregue")
	assert.False(t, ok)
}

func TestSlaOutcome_UnmarshalUnknownIsEmpty(t *testing.T) {
	var o SlaOutcome
	require.NoError(t, json.Unmarshal([]byte(`"whatever"`), &o))
	assert.Equal(t, SlaOutcome(""), o)

	require.NoError(t, json.Unmarshal([]byte(`42`), &o))
	assert.Equal(t, SlaOutcome(""), o)

	require.NoError(t, json.Unmarshal([]byte(`"Atrasado"`), &o))
	assert.Equal(t, OutcomeLate, o)
}

func TestSlaOutcome_Label(t *testing.T) {
	assert.Equal(t, "Antecipado", OutcomeEarly.Label())
	assert.Equal(t, "No prazo", OutcomeOnTime.Label())
	assert.Equal(t, "Atrasado", OutcomeLate.Label())
	assert.True(t, OutcomeLate.Valid())
	assert.False(t, SlaOutcome("bogus").Valid())
}

func TestFormState_String(t *testing.T) {
	assert.Equal(t, "ready", FormReady.String())
	assert.Equal(t, "empty", FormEmpty.String())
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, FieldCaseID, ErrCaseIDLength.Field)
	assert.Contains(t, ErrInvalidDueDate.Error(), "due_date")
}
