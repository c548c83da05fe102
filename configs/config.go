package configs

import (
	"errors"
	"fmt"
)

var Values Config

type (
	Config struct {
		Report Report `mapstructure:"report"`
	}

	Report struct {
		InputPath string `mapstructure:"input"`
		Format    string `mapstructure:"format"`
	}
)

const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (r *Report) Validate() error {
	var errs []error

	if r.InputPath == "" {
		errs = append(errs, errors.New("report.input is required"))
	}

	switch r.Format {
	case FormatAuto, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("report.format must be one of '%s', '%s' or '%s'", FormatAuto, FormatJSON, FormatYAML))
	}

	if len(errs) > 0 {
		return fmt.Errorf("report configuration validation failed: %w", errors.Join(errs...))
	}

	return nil
}
