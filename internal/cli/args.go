package cli

import (
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/errors"
	"task-tracker/internal/tasklist"
	"task-tracker/internal/validation"
)

const (
	notANumberMessage    = "OOPS!!! The task number you type in is not a number."
	emptyListMessage     = "OOPS!!! The task list is currently empty."
	badDateFormatMessage = "OOPS!!! Wrong time format. Correct format should be yyyy-mm-dd"
)

func missingArgument(message string) error {
	return errors.NewCommandError(errors.CodeMissingArgument, "OOPS!!! "+message)
}

// parseTaskIndex validates a 1-based task number against the list.
// An empty list is reported before the range check.
func parseTaskIndex(list *tasklist.TaskList, value string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.NewCommandError(errors.CodeNotANumber, notANumberMessage).
			WithContext("input", value)
	}

	size := list.Size()
	if size == 0 {
		return 0, errors.NewCommandError(errors.CodeEmptyList, emptyListMessage)
	}
	if index < 1 || index > size {
		return 0, errors.NewIndexOutOfRangeError(index, size)
	}
	return index, nil
}

// splitTaskArguments splits "description<separator>date" into exactly two
// non-empty parts.
func splitTaskArguments(rest, separator string) (string, string, bool) {
	parts := strings.Split(rest, separator)
	if len(parts) != 2 {
		return "", "", false
	}
	description := strings.TrimSpace(parts[0])
	date := strings.TrimSpace(parts[1])
	if description == "" || date == "" {
		return "", "", false
	}
	return description, date, true
}

func parseDate(validator *validation.TaskValidator, value string) (time.Time, error) {
	date, err := validator.ParseDate(value)
	if err != nil {
		return time.Time{}, errors.NewCommandError(errors.CodeBadDateFormat, badDateFormatMessage).
			WithContext("input", value)
	}
	return date, nil
}
