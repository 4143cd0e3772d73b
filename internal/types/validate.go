//nolint:revive // types is a standard Go package name pattern
package types

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// cvDatePattern matches the date forms RenderCV accepts: YYYY-MM-DD, YYYY-MM or YYYY
var cvDatePattern = regexp.MustCompile(`^\d{4}(-\d{2}(-\d{2})?)?$`)

// NewValidator returns a validator that reports field names using their YAML keys
// and understands the cvdate tag.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation("cvdate", func(fl validator.FieldLevel) bool {
		return cvDatePattern.MatchString(fl.Field().String())
	})
	return validate
}

// Validate checks the typed field rules of the input
func (in *Input) Validate() error {
	return NewValidator().Struct(in)
}
