package filter

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"payment-insights-go/internal/types"
)

// ErrInvalidSelection wraps every selector validation failure.
var ErrInvalidSelection = errors.New("invalid selection")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func selectionValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
			return oneOf(fl.Field().String(), PlatformOptions())
		})
		_ = validate.RegisterValidation("frequency", func(fl validator.FieldLevel) bool {
			return oneOf(fl.Field().String(), FrequencyOptions())
		})
	})
	return validate
}

// PlatformOptions lists the accepted platform selector values.
func PlatformOptions() []string {
	return append([]string{All}, types.Platforms()...)
}

// FrequencyOptions lists the accepted frequency selector values.
func FrequencyOptions() []string {
	return append([]string{All}, types.FrequencyOrder...)
}

// Validate checks both selectors against their option lists. Empty
// selectors are treated as All.
func (s Selection) Validate() error {
	err := selectionValidator().Struct(s.Normalized())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s %q is not an accepted value", strings.ToLower(fe.Field()), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSelection, strings.Join(msgs, "; "))
}

func oneOf(v string, options []string) bool {
	for _, o := range options {
		if v == o {
			return true
		}
	}
	return false
}
