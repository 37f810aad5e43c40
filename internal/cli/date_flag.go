package cli

import (
	"github.com/alexanderramin/slacalc/internal/sla"
	"github.com/spf13/pflag"
)

// dateFlag is a date flag that accepts the same typing as the form fields:
// "10012024" and "10/01/2024" both read as 10/01/2024. Validation is left to
// the evaluation service so errors come out in field order.
type dateFlag string

var _ pflag.Value = (*dateFlag)(nil)

func (f *dateFlag) String() string { return string(*f) }

func (f *dateFlag) Set(s string) error {
	*f = dateFlag(sla.MaskInput(s))
	return nil
}

func (f *dateFlag) Type() string { return "dd/mm/yyyy" }
