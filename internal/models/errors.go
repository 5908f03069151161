package models

import (
	"errors"
)

var (
	// ErrGeneral is returned when the database itself fails. Details are
	// only logged, users get this generic message.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped with the resource name by the query
	// callback, see queryCallback.
	ErrResourceNotFound = errors.New("there is no")
)

var (
	ErrUserEmailNotUnique       = errors.New("this email is already registered")
	ErrCategoryNameNotUnique    = errors.New("the category name must be unique for the account")
	ErrAllocationMonthNotUnique = errors.New("there already is an allocation for this account and month")
	ErrEnvelopeNotUnique        = errors.New("the category is already part of this month's plan")
	ErrMemberNotUnique          = errors.New("the user is already a member of this account")
)

var (
	ErrMonthInvalid        = errors.New("the month must be between 1 and 12 and the year must be positive")
	ErrIncomeNegative      = errors.New("the income must not be negative")
	ErrBudgetNegative      = errors.New("the budget for a category must not be negative")
	ErrCategoryNameMissing = errors.New("every category needs a name")
	ErrAmountNotPositive   = errors.New("the amount must be larger than zero")
	ErrSpentNegative       = errors.New("the spent amount must not be negative")
)
