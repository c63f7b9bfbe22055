package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	huerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

// convertValidationError normalizes validator errors into huepick validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if hint, ok := tagHints[ve.Tag()]; ok {
			msg = fmt.Sprintf("%s: %s", msg, hint)
		}
		return huerrors.NewValidationError(field, msg, err)
	}

	return huerrors.NewValidationError("config", err.Error(), err)
}

var tagHints = map[string]string{
	"picker_color":   "expected #rgb, #rrggbb, rgb(), rgba(), hsl() or hsla()",
	"color_format":   "expected hex, rgb, rgba, hsl or hsla",
	"swatch_name":    "use lowercase letters, digits, '-' or '_'",
	"palette_family": "expected slate, blue, green, red, yellow, purple or cyan",
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForSwatch(index int, field string) string {
	return fmt.Sprintf("swatches[%d].%s", index, field)
}
