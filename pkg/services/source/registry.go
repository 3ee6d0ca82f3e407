package source

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/store/duckdb"
	"github.com/de-tools/finsync/pkg/store/duckdb/loads"
	"github.com/de-tools/finsync/pkg/store/duckdb/records"
)

// Factory builds a Source from the application configuration.
type Factory func(ctx context.Context, cfg config.Config) (Source, error)

// Registry maps source kinds to factories.
type Registry interface {
	// Register adds a new source factory
	Register(kind string, factory Factory) error
	// Create instantiates the source configured by cfg.Source.Kind
	Create(ctx context.Context, cfg config.Config) (Source, error)
	// ListKinds returns the registered kinds in alphabetical order
	ListKinds() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{factories: make(map[string]Factory, len(factories))}
	for kind, f := range factories {
		r.factories[kind] = f
	}
	return r
}

// DefaultRegistry knows the generator and DuckDB sources.
func DefaultRegistry() Registry {
	return NewRegistry(map[string]Factory{
		KindGenerator: GeneratorFactory,
		KindDuckDB:    DuckDBFactory,
	})
}

func (r *registry) Register(kind string, factory Factory) error {
	if kind == "" {
		return fmt.Errorf("source kind cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("source %q is already registered", kind)
	}

	r.factories[kind] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, cfg config.Config) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[cfg.Source.Kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", cfg.Source.Kind)
	}

	return factory(ctx, cfg)
}

func (r *registry) ListKinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

func GeneratorFactory(_ context.Context, cfg config.Config) (Source, error) {
	end, err := cfg.Generator.EndTime()
	if err != nil {
		return nil, err
	}
	return NewGenerator(GeneratorConfig{
		Seed:    cfg.Generator.Seed,
		Months:  cfg.Generator.Months,
		EndDate: end,
	}), nil
}

// DuckDBFactory opens the configured DuckDB database and seeds it from the
// generator when it holds no records yet.
func DuckDBFactory(ctx context.Context, cfg config.Config) (Source, error) {
	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Source.DuckDBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	recordStore, err := records.NewStore(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}
	loadStore, err := loads.NewStore(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create load store: %w", err)
	}

	gen, err := GeneratorFactory(ctx, cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	if _, err := NewSeeder(db, recordStore, loadStore, gen).Seed(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed record store: %w", err)
	}

	return NewStoreSource(db, recordStore), nil
}
