package domain

import (
	"fmt"
	"strings"
)

type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityMonthly Granularity = "monthly"
	GranularityYearly  Granularity = "yearly"
)

func ParseGranularity(s string) (Granularity, error) {
	g := Granularity(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case "":
		return GranularityDaily, nil
	case GranularityDaily, GranularityMonthly, GranularityYearly:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
}

// KeyLen is the length of the ISO date prefix that identifies a period.
func (g Granularity) KeyLen() int {
	switch g {
	case GranularityMonthly:
		return 7
	case GranularityYearly:
		return 4
	default:
		return 10
	}
}

// Label renders a period key for display: DD/MM/YYYY, MM/YYYY or YYYY.
func (g Granularity) Label(key string) string {
	parts := strings.Split(key, "-")
	switch {
	case g == GranularityDaily && len(parts) == 3:
		return parts[2] + "/" + parts[1] + "/" + parts[0]
	case g == GranularityMonthly && len(parts) == 2:
		return parts[1] + "/" + parts[0]
	default:
		return key
	}
}
