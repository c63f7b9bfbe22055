package config

import (
	"fmt"
	"strings"

	huerrors "github.com/alexisbeaulieu97/huepick/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return huerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Swatches))
	for i, s := range cfg.Swatches {
		key := strings.ToLower(s.Name)
		if first, exists := seen[key]; exists {
			return huerrors.NewValidationError(fieldForSwatch(i, "name"), fmt.Sprintf("duplicate swatch name %q (first defined at swatches[%d])", s.Name, first), nil)
		}
		seen[key] = i
	}

	return nil
}
