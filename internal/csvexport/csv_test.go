package csvexport

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeField(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"", ""},
		{" leading space", " leading space"},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"a,b\"c\nd", "\"a,b\"\"c\nd\""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeField(tc.in), "EscapeField(%q)", tc.in)
	}
}

func TestToCSV_TrailingNewlineAndNulls(t *testing.T) {
	var missing *int
	out := ToCSV([]string{"a", "b", "c"}, [][]any{
		{"x", 1, nil},
		{missing, -5, true},
	})
	assert.Equal(t, "a,b,c\nx,1,\n,-5,true\n", out)
	assert.NotContains(t, out, "null")
	assert.NotContains(t, out, "<nil>")
}

func TestToCSV_Scalars(t *testing.T) {
	n := 7
	out := ToCSV([]string{"v"}, [][]any{{int64(12)}, {2.5}, {&n}, {time.March}})
	assert.Equal(t, "v\n12\n2.5\n7\nMarch\n", out)
}

func TestToCSV_HeaderOnly(t *testing.T) {
	assert.Equal(t, "h1,h2\n", ToCSV([]string{"h1", "h2"}, nil))
}

func TestToCSV_ResplitRecoversFields(t *testing.T) {
	header := []string{"id", "note"}
	values := [][]string{
		{"1", "a,b\"c\nd"},
		{"2", `"quoted"`},
		{"3", "plain"},
		{"4", ""},
	}
	rows := make([][]any, 0, len(values))
	for _, v := range values {
		rows = append(rows, []any{v[0], v[1]})
	}

	out := ToCSV(header, rows)

	r := csv.NewReader(strings.NewReader(out))
	got, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, len(values)+1)
	assert.Equal(t, header, got[0])
	for i, v := range values {
		assert.Equal(t, v, got[i+1])
	}
}
