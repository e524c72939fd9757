package validation

import (
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

// TaskValidator provides validation for task construction from user input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(description) {
		validationError.AddRequiredError("description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(description) {
		validationError.AddInvalidLengthError("description", description, tv.validator.getDescriptionMaxLength())
	}

	if !tv.validator.HasNoControlCharacters(description) {
		validationError.AddInvalidCharacterError("description", description)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ParseDate validates and parses a yyyy-MM-dd date
func (tv *TaskValidator) ParseDate(value string) (time.Time, error) {
	date, err := domain.ParseDate(value)
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("date", value, "yyyy-mm-dd")
		return time.Time{}, validationError
	}
	return date, nil
}
