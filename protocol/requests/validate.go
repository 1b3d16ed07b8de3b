package requests

import (
	"fmt"
	"regexp"

	"gopkg.in/go-playground/validator.v9"

	"github.com/status-im/status-names/bech32"
	statuserrors "github.com/status-im/status-names/errors"
)

// Names are DNS-label like: lowercase letters, digits and inner hyphens.
var nameRegexp = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?$`)

// ValidationError wraps the field errors of an invalid request.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Code implements errors.Coded.
func (e *ValidationError) Code() statuserrors.ErrorCode {
	return statuserrors.ErrorCodeInvalidRequest
}

// ValidName reports whether name can be claimed.
func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

func newValidator() *validator.Validate {
	v := validator.New()
	// only fails on an empty tag
	_ = v.RegisterValidation("name", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	})
	_ = v.RegisterValidation("bech32", func(fl validator.FieldLevel) bool {
		_, _, err := bech32.Decode(fl.Field().String())
		return err == nil
	})
	return v
}

func validate(request interface{}) error {
	if err := newValidator().Struct(request); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
