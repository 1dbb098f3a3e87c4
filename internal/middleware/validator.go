package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DashboardQuery is the query string of GET /v1/dashboard
type DashboardQuery struct {
	Mode     string `validate:"omitempty,max=64"`
	Scenario string `validate:"omitempty,max=128"`
	Analyze  string `validate:"omitempty,oneof=true false 1 0 yes no"`
}

// ValidateDashboardQuery cleans and checks the raw query values. It returns
// the cleaned query, which callers must use instead of the raw one, and the
// parsed analyze flag.
func ValidateDashboardQuery(q DashboardQuery) (DashboardQuery, bool, error) {
	q.Mode = SanitizeString(q.Mode)
	q.Scenario = SanitizeString(q.Scenario)
	q.Analyze = strings.ToLower(SanitizeString(q.Analyze))

	if err := validate.Struct(q); err != nil {
		return DashboardQuery{}, false, formatValidationError(err)
	}
	switch q.Analyze {
	case "", "false", "0", "no":
		return q, false, nil
	}
	return q, true, nil
}

// ValidateScenarioName validates a scenario key taken from the URL.
func ValidateScenarioName(name string) error {
	if err := validate.Var(name, "required,max=128"); err != nil {
		return fmt.Errorf("scenario: %w", formatValidationError(err))
	}
	if SanitizeString(name) != name {
		return errors.New("scenario: invalid characters in name")
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Field() == "" {
			return fmt.Errorf("failed %q validation", fe.Tag())
		}
		return fmt.Errorf("%s: failed %q validation", strings.ToLower(fe.Field()), fe.Tag())
	}
	return err
}
