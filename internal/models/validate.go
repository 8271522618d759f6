package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the shared struct validator. The rules live on
// the `validate` tags of the types in this package.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks v against its `validate` tags.
func Validate(v any) error {
	return Validator().Struct(v)
}
