package sla

import (
	"testing"

	"github.com/alexanderramin/slacalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, display string) domain.CalendarDate {
	t.Helper()
	d, ok := ParseDisplay(display)
	require.True(t, ok, display)
	return d
}

func TestVariance_OnTime(t *testing.T) {
	v := Variance(mustDate(t, "10/01/2024"), mustDate(t, "10/01/2024"))
	assert.Equal(t, 0, v)
	assert.Equal(t, domain.OutcomeOnTime, Classify(v))
}

func TestVariance_Early(t *testing.T) {
	v := Variance(mustDate(t, "10/01/2024"), mustDate(t, "05/01/2024"))
	assert.Equal(t, -5, v)
	assert.Equal(t, domain.OutcomeEarly, Classify(v))
	assert.Contains(t, Describe(v), "5")
	assert.NotContains(t, Describe(v), "-5")
}

func TestVariance_Late(t *testing.T) {
	v := Variance(mustDate(t, "10/01/2024"), mustDate(t, "15/01/2024"))
	assert.Equal(t, 5, v)
	assert.Equal(t, domain.OutcomeLate, Classify(v))
}

func TestVariance_AcrossYearAndLeapDay(t *testing.T) {
	assert.Equal(t, 2, Variance(mustDate(t, "28/02/2024"), mustDate(t, "01/03/2024")))
	assert.Equal(t, 1, Variance(mustDate(t, "28/02/2023"), mustDate(t, "01/03/2023")))
	assert.Equal(t, 366, Variance(mustDate(t, "01/01/2024"), mustDate(t, "01/01/2025")))
}

func TestVariance_AcrossDSTTransition(t *testing.T) {
	// Brazil observed DST until 2019; the 2018 switch happened on 04/11.
	assert.Equal(t, 2, Variance(mustDate(t, "03/11/2018"), mustDate(t, "05/11/2018")))
}

func TestVariance_FarApartDates(t *testing.T) {
	assert.Equal(t, 3652058, Variance(mustDate(t, "01/01/0001"), mustDate(t, "31/12/9999")))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "3 dia(s) antes do prazo", Describe(-3))
	assert.Equal(t, "Entregue no prazo (no dia previsto)", Describe(0))
	assert.Equal(t, "4 dia(s) de atraso", Describe(4))
}

func TestEvaluate(t *testing.T) {
	e := Evaluate(mustDate(t, "10/01/2024"), mustDate(t, "12/01/2024"))
	assert.Equal(t, domain.OutcomeLate, e.Outcome)
	assert.Equal(t, 2, e.VarianceDays)
	assert.Equal(t, "2 dia(s) de atraso", e.Detail)
}

func TestLegacyClampedPolicy(t *testing.T) {
	assert.Equal(t, 0, ClampedDelay(-4))
	assert.Equal(t, 0, ClampedDelay(0))
	assert.Equal(t, 3, ClampedDelay(3))

	assert.Equal(t, "No prazo", LegacyStatus(-4))
	assert.Equal(t, "No prazo", LegacyStatus(0))
	assert.Equal(t, "Atrasado", LegacyStatus(1))
}
