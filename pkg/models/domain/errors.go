package domain

import "errors"

var (
	ErrMissingDateRange   = errors.New("start and end dates are required")
	ErrInvalidDate        = errors.New("invalid date format. Expected format: YYYY-MM-DD")
	ErrRecordNotFound     = errors.New("no record found for date")
	ErrInvalidGranularity = errors.New("invalid view type")
	ErrInvalidMethod      = errors.New("invalid payment method")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidExport      = errors.New("invalid export request")
	ErrNotLoaded          = errors.New("historical data not loaded")
)
