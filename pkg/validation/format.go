// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/marui-portal/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateTemplateFormat checks if the template format is one of the supported formats.
func ValidateTemplateFormat(format string) error {
	if format != constants.TemplateFormatCSV && format != constants.TemplateFormatXLSX {
		return fmt.Errorf("expected template format of %s or %s, got %s",
			constants.TemplateFormatCSV, constants.TemplateFormatXLSX, format)
	}
	return nil
}
