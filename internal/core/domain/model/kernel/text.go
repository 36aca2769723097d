package kernel

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"parceltrack/internal/pkg/errs"
)

// RequiredText trims value and rejects it when blank or longer than maxLen runes.
func RequiredText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(paramName)
	}
	return OptionalText(paramName, value, maxLen)
}

// OptionalText trims value and rejects it only when longer than maxLen runes.
func OptionalText(paramName, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if n := utf8.RuneCountInString(value); maxLen > 0 && n > maxLen {
		return "", errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("length %d exceeds %d characters", n, maxLen),
		)
	}
	return value, nil
}

// PositiveAmount rejects zero, negative and NaN amounts.
func PositiveAmount(paramName string, value float64) (float64, error) {
	if !(value > 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%v is not greater than 0", value))
	}
	return value, nil
}

// FullName joins first and last name, skipping empty parts.
func FullName(firstName, lastName string) string {
	return JoinNames(firstName, lastName)
}

// JoinNames joins the non-blank parts with single spaces.
func JoinNames(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " ")
}
