// Package source supplies the daily reconciliation records the dashboard
// loads at startup.
package source

import (
	"context"

	"github.com/de-tools/finsync/pkg/models/domain"
)

const (
	KindGenerator = "generator"
	KindDuckDB    = "duckdb"
)

// Source produces the contents of the record store.
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=source.go Source
type Source interface {
	Name() string
	Records(ctx context.Context) ([]domain.DailyRecord, error)
}

// RangeSource is a Source that reads a single date range itself, so a
// cancelled ctx stops the read.
type RangeSource interface {
	Source
	Range(ctx context.Context, r domain.DateRange) ([]domain.DailyRecord, error)
}
