package domain

import (
	"fmt"
	"math"
	"strings"
)

// ReconciliationTolerance is the absolute difference below which expected and
// received amounts are treated as equal.
const ReconciliationTolerance = 0.01

type Status string

const (
	StatusReconciled Status = "reconciled"
	StatusPending    Status = "pending"
	StatusError      Status = "error"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusReconciled, StatusPending, StatusError}

func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusReconciled, StatusPending, StatusError:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

// DeriveStatus tags a period by comparing what was received with what was expected.
func DeriveStatus(expected, received float64) Status {
	return StatusForDifference(received - expected)
}

// StatusForDifference tags a period from its received minus expected amount.
// A shortfall is pending, a surplus beyond the tolerance is an error.
func StatusForDifference(difference float64) Status {
	switch {
	case math.Abs(difference) < ReconciliationTolerance:
		return StatusReconciled
	case difference < 0:
		return StatusPending
	default:
		return StatusError
	}
}
