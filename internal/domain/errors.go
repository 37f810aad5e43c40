package domain

import "fmt"

// ValidationError reports a malformed or missing input field. No state is
// mutated when one is returned.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field Field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}

var (
	ErrCaseIDRequired       = newValidationError(FieldCaseID, "Preencha a NF.")
	ErrCaseIDLength         = newValidationError(FieldCaseID, "A NF deve ter 6 dígitos.")
	ErrInvalidDueDate       = newValidationError(FieldDueDate, "Data prevista inválida. Use dd/mm/aaaa.")
	ErrInvalidDeliveredDate = newValidationError(FieldDeliveredDate, "Data de entrega inválida. Use dd/mm/aaaa.")
)
