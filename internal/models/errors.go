package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrAmountNegative          = errors.New("amounts must not be negative")
	ErrChargeDayInvalid        = errors.New("the charge day must be between 1 and 31")
	ErrCategoryNameNotUnique   = errors.New("the category name must be unique")
	ErrColorInvalid            = errors.New("the color must be a hex color in the format #RRGGBB")
	ErrSeverityInvalid         = errors.New("the severity must be one of info, warning, success, error")
	ErrTransactionKindInvalid  = errors.New("the transaction kind must be either income or expense")
	ErrWishPriorityInvalid     = errors.New("the wish priority must be one of low, medium, high")
	ErrWishStatusInvalid       = errors.New("the wish status must be one of pending, saving, achieved")
	errRequiredFieldNotPresent = errors.New("is required")
)

// NotFound returns the error for a resource of the type of m that does not exist.
func NotFound(m Model) error {
	return fmt.Errorf("%w %s matching your query", ErrResourceNotFound, m.Self())
}

func required(field string) error {
	return fmt.Errorf("%s %w", field, errRequiredFieldNotPresent)
}

// IsValidationError reports if err was caused by a resource failing validation.
func IsValidationError(err error) bool {
	return errors.Is(err, errRequiredFieldNotPresent) ||
		errors.Is(err, ErrAmountNegative) ||
		errors.Is(err, ErrChargeDayInvalid) ||
		errors.Is(err, ErrCategoryNameNotUnique) ||
		errors.Is(err, ErrColorInvalid) ||
		errors.Is(err, ErrSeverityInvalid) ||
		errors.Is(err, ErrTransactionKindInvalid) ||
		errors.Is(err, ErrWishPriorityInvalid) ||
		errors.Is(err, ErrWishStatusInvalid)
}
