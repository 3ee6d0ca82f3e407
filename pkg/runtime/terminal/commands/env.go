// Package commands holds the cobra commands of the finsync CLI.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/finsync/pkg/models/domain"
	"github.com/de-tools/finsync/pkg/services/config"
	"github.com/de-tools/finsync/pkg/services/dashboard"
	"github.com/de-tools/finsync/pkg/services/source"
	"github.com/rs/zerolog"
)

// NamedFilter is a preset together with its name.
type NamedFilter struct {
	Name   string
	Filter domain.Filter
}

// Reporter renders command results.
type Reporter interface {
	History(view domain.View) error
	Day(detail domain.DayDetail) error
	Comparison(cmp domain.Comparison) error
	Transactions(txs []domain.DatedTransaction) error
	Receipt(r domain.ExportReceipt) error
	Presets(presets []NamedFilter) error
}

// Env is shared by every command: where the configuration lives and how
// sources are built.
type Env struct {
	ConfigPath string
	Registry   source.Registry
	// ErrOut receives log output
	ErrOut io.Writer
}

// Session is a loaded dashboard ready to answer one command.
type Session struct {
	Controller dashboard.Controller
	Presets    config.Presets
	source     source.Source
}

func (s *Session) Close() error {
	if closer, ok := s.source.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func (e *Env) load(ctx context.Context) (context.Context, *config.Config, error) {
	cfg, err := config.LoadConfig(e.ConfigPath)
	if err != nil {
		return ctx, nil, err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return ctx, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	out := e.ErrOut
	if out == nil {
		out = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: out}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx), cfg, nil
}

// Presets reads the configuration and the presets file only.
func (e *Env) Presets(ctx context.Context) (context.Context, config.Presets, error) {
	ctx, cfg, err := e.load(ctx)
	if err != nil {
		return ctx, nil, err
	}
	presets, err := config.NewPresets(cfg.Presets)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, presets, nil
}

// Open builds the configured source and loads it into a controller.
func (e *Env) Open(ctx context.Context) (context.Context, *Session, error) {
	ctx, cfg, err := e.load(ctx)
	if err != nil {
		return ctx, nil, err
	}

	presets, err := config.NewPresets(cfg.Presets)
	if err != nil {
		return ctx, nil, err
	}

	src, err := e.Registry.Create(ctx, *cfg)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to create %s source: %w", cfg.Source.Kind, err)
	}

	session := &Session{
		Controller: dashboard.NewController(src),
		Presets:    presets,
		source:     src,
	}
	if err := session.Controller.Load(ctx); err != nil {
		session.Close()
		return ctx, nil, err
	}
	return ctx, session, nil
}
