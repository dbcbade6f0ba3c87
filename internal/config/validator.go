package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// GitHub logins are 1-39 characters of letters, digits and single inner hyphens.
var githubUsernamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,37}[A-Za-z0-9])?$`)

// newValidator builds a validator with the application's custom rules registered.
func newValidator() *validator.Validate {
	validate := validator.New()

	// Register custom validation for LogLevel
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	// Register custom validation for LogFormat
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("minpolldelay", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() >= MinPollDelaySeconds
	})

	_ = validate.RegisterValidation("firstpoll", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", FirstPollBaseline, FirstPollNotify:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("tlspolicy", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", TLSPolicyNone, TLSPolicyOpportunistic, TLSPolicyMandatory:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("ghuser", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		return githubUsernamePattern.MatchString(name) && !strings.Contains(name, "--")
	})

	return validate
}

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("configuration validation error: config is nil")
	}

	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("configuration validation error: %w", err)
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		// Drop the leading "GlobalConfig." so messages read like config paths.
		fieldName := strings.TrimPrefix(e.Namespace(), "GlobalConfig.")
		msg := fmt.Sprintf("Validation failed for '%s': rule '%s'", fieldName, e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			msg += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		messages = append(messages, msg)
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
}
