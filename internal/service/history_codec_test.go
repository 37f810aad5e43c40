package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/alexanderramin/slacalc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHistory_CurrentSchemaRoundTrip(t *testing.T) {
	recs := []domain.EvaluationRecord{
		testutil.NewTestRecord(testutil.WithVariance(-3)),
		testutil.NewTestRecord(testutil.WithVariance(5)),
	}
	blob, err := encodeHistory(recs)
	require.NoError(t, err)

	got, skipped, err := decodeHistory([]byte(blob))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, got, 2)
	for i := range recs {
		assert.Equal(t, recs[i].ID, got[i].ID)
		assert.Equal(t, recs[i].Outcome, got[i].Outcome)
		assert.Equal(t, recs[i].VarianceDays, got[i].VarianceDays)
		assert.True(t, recs[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}

func TestEncodeHistory_EmptyIsArray(t *testing.T) {
	blob, err := encodeHistory(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", blob)
}

func TestDecodeHistory_LegacyThreeWaySchema(t *testing.T) {
	blob := `[{
		"id": "abc",
		"nf": "123456",
		"prevista": "10/01/2024",
		"entrega": "05/01/2024",
		"situacao": "Antecipado",
		"variacao": -5,
		"criadoEm": "2026-02-11T17:56:12.345Z"
	}]`

	got, _, err := decodeHistory([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	r := got[0]
	assert.Equal(t, "abc", r.ID)
	assert.Equal(t, "123456", r.CaseID)
	assert.Equal(t, "10/01/2024", r.DueDateDisplay)
	assert.Equal(t, "05/01/2024", r.DeliveredDateDisplay)
	assert.Equal(t, domain.OutcomeEarly, r.Outcome)
	assert.Equal(t, -5, r.VarianceDays)
	assert.Equal(t, time.Date(2026, time.February, 11, 17, 56, 12, 345000000, time.UTC), r.CreatedAt)
}

func TestDecodeHistory_LegacyTwoWaySchemaWithoutCaseID(t *testing.T) {
	blob := `[{"id":"x1","prevista":"10/01/2024","entrega":"12/01/2024","status":"Atrasado","atrasoDias":2,"criadoEm":"2024-01-12T10:00:00Z"}]`

	got, _, err := decodeHistory([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].CaseID)
	assert.Equal(t, domain.OutcomeLate, got[0].Outcome)
	assert.Equal(t, 2, got[0].VarianceDays)
}

func TestDecodeHistory_MissingFieldsAreDerived(t *testing.T) {
	blob := `[{"dueDateDisplay":"10/01/2024","deliveredDateDisplay":"15/01/2024","outcome":"???"}]`

	got, _, err := decodeHistory([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID, "missing id is generated")
	assert.Equal(t, 5, got[0].VarianceDays)
	assert.Equal(t, domain.OutcomeLate, got[0].Outcome)
	assert.True(t, got[0].CreatedAt.IsZero())
}

func TestDecodeHistory_SkipsMalformedElements(t *testing.T) {
	blob := `[1, "two", null, {"id":"ok","varianceDays":0}, {"id":"bad","varianceDays":"x"}, {"id":"ok","varianceDays":1}]`

	got, skipped, err := decodeHistory([]byte(blob))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
	assert.Equal(t, domain.OutcomeOnTime, got[0].Outcome)
	assert.Equal(t, 5, skipped)
}

func TestDecodeHistory_NotASequence(t *testing.T) {
	_, _, err := decodeHistory([]byte(`{"a":1}`))
	assert.ErrorIs(t, err, errNotASequence)

	_, _, err = decodeHistory([]byte(`null`))
	assert.ErrorIs(t, err, errNotASequence)

	_, _, err = decodeHistory([]byte(`nope`))
	assert.Error(t, err)
}
