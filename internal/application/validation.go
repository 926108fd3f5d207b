package application

import (
	"fmt"
	"strings"

	"funknotes/internal/domain"
)

// fieldLabels are the words used for a field in validation messages
var fieldLabels = map[string]string{
	"projectName": "project name",
	"objectName":  "object name",
	"identifier":  "project identifier",
	"indexSpec":   "index list",
}

// ValidateRequired fails with a ValidationError when value is blank
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	label, ok := fieldLabels[fieldName]
	if !ok {
		label = fieldName
	}
	return &ValidationError{Field: fieldName, Message: label + " is required"}
}

// ValidateText checks that item text is present and fits the store limit
func ValidateText(text string) error {
	if err := ValidateRequired("text", text); err != nil {
		return err
	}
	if len(text) > domain.MaxTextLength {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text is %d bytes, limit is %d", len(text), domain.MaxTextLength),
		}
	}
	return nil
}

// ValidateProjectName rejects empty names, the reserved directory name and
// names that cannot be part of a file name.
func ValidateProjectName(name string) error {
	if err := ValidateRequired("projectName", name); err != nil {
		return err
	}
	if name == domain.ReservedProjectName {
		return fmt.Errorf("can't create project named '%s': %w", name, ErrNameReserved)
	}
	if strings.ContainsAny(name, "/\\\n") || name == "." || name == ".." {
		return &ValidationError{
			Field:   "projectName",
			Message: fmt.Sprintf("invalid project name: %s", name),
		}
	}
	return nil
}

// ValidateObjectName rejects empty names and names that would break the
// section header of the text format.
func ValidateObjectName(name string) error {
	if err := ValidateRequired("objectName", name); err != nil {
		return err
	}
	if strings.ContainsAny(name, "]\n") {
		return &ValidationError{
			Field:   "objectName",
			Message: fmt.Sprintf("invalid object name: %q", name),
		}
	}
	return nil
}
