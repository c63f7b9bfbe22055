package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	swatchNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("swatch_name", func(fl validator.FieldLevel) bool {
			return swatchNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("picker_color", func(fl validator.FieldLevel) bool {
			_, ok := color.Parse(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("color_format", func(fl validator.FieldLevel) bool {
			f, ok := fl.Field().Interface().(color.Format)
			return ok && f.Valid()
		})

		builtin := palette.Default()
		_ = v.RegisterValidation("palette_family", func(fl validator.FieldLevel) bool {
			_, err := builtin.Family(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
