package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptYesNoIO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "s lf", input: "s\n", want: true},
		{name: "sim lf", input: "sim\n", want: true},
		{name: "sim mixed case cr", input: "SiM\r", want: true},
		{name: "yes word lf", input: "yes\n", want: true},
		{name: "y cr", input: "y\r", want: true},
		{name: "no default lf", input: "\n", want: false},
		{name: "nao explicit", input: "não\n", want: false},
		{name: "eof without newline", input: "s", want: true},
		{name: "empty reader", input: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got := promptYesNoIO(strings.NewReader(tc.input), &out, "Confirmar? ")
			assert.Equal(t, tc.want, got)
			assert.Equal(t, "Confirmar? ", out.String())
		})
	}
}

func TestPromptYesNoWithDefaultIO(t *testing.T) {
	t.Parallel()

	assert.True(t, promptYesNoWithDefaultIO(strings.NewReader("\n"), nil, "", true))
	assert.False(t, promptYesNoWithDefaultIO(strings.NewReader("n\n"), nil, "", true))
	assert.False(t, promptYesNoWithDefaultIO(nil, nil, "", true))
}

func TestPromptConfirmer(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	c := promptConfirmer{in: strings.NewReader("s\n"), out: &out}
	assert.True(t, c.Confirm("Apagar?"))
	assert.Equal(t, "Apagar? [s/N]: ", out.String())
}
