package validation

import (
	"errors"
	"strconv"
	"strings"
)

// ValidateRequired checks that a field is non-empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ParsePercentage coerces a form value to an integer percentage. Any non-numeric
// input fails the whole operation; no clamping is applied.
func ParsePercentage(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.New("percentage must be a number")
	}
	return n, nil
}
