package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_Alignment(t *testing.T) {
	got := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"xxx", "y"}, {"z"}}))
	want := "A    BB\n" +
		"───  ──\n" +
		"xxx  y\n" +
		"z    \n"
	assert.Equal(t, want, got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}
