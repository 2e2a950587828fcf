package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/prisonadmin/internal/pkg/validation"
)

// RegisterValidators installs the custom binding rules on gin's validator and
// makes validation errors name fields by their JSON tag.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return validation.IsISODate(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register isodate validator: %w", err)
	}

	if err := v.RegisterValidation("bloodtype", func(fl validator.FieldLevel) bool {
		return validation.IsBloodType(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("failed to register bloodtype validator: %w", err)
	}

	return nil
}
