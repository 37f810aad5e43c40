// Package csvexport renders history records as CSV text and hands the result
// to a file-save collaborator.
package csvexport

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ToCSV joins header and rows into comma-separated, newline-terminated lines.
// The last line is terminated too. Row cells may be any scalar; nil renders as
// an empty field.
func ToCSV(header []string, rows [][]any) string {
	var b strings.Builder
	writeLine(&b, header, func(s string) string { return s })
	for _, row := range rows {
		writeLine(&b, row, formatScalar)
	}
	return b.String()
}

func writeLine[T any](b *strings.Builder, cells []T, format func(T) string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(EscapeField(format(c)))
	}
	b.WriteByte('\n')
}

// EscapeField quotes s, doubling inner quotes, only when it contains a comma,
// a double quote or a newline.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatScalar(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return formatScalar(rv.Elem().Interface())
	}

	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(v)
	}
}
