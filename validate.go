package folio

import (
	"errors"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateFields checks struct tags of caller supplied fields.
// Returns *ValidationError naming the first offending field in snake case.
func ValidateFields(fields interface{}) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: snakeCase(verrs[0].Field()), Rule: verrs[0].Tag()}
	}
	return err
}

// ValidateRow checks a row decoded from the remote store before it reaches callers.
func ValidateRow(table string, row interface{}) error {
	if err := ValidateFields(row); err != nil {
		return &RowError{Table: table, Err: err}
	}
	return nil
}

// RequireText rejects a patch that clears a required text column.
func RequireText(field string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return &ValidationError{Field: field, Rule: "required"}
	}
	return nil
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
