package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/de-tools/finsync/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// Presets exposes named dashboard filters kept in an INI file:
//
//	[last-quarter]
//	start  = 2024-10-01
//	end    = 2024-12-31
//	method = all
//	view   = monthly
var ErrPresetNotFound = errors.New("preset not found")

type Presets interface {
	GetPresets(ctx context.Context) ([]string, error)
	GetPreset(ctx context.Context, name string) (*domain.Filter, error)
}

type iniPresets struct {
	cfg *ini.File
}

// NewPresets loads presets from path. An empty path yields no presets.
func NewPresets(path string) (Presets, error) {
	if path == "" {
		return &iniPresets{cfg: ini.Empty()}, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}
	return &iniPresets{cfg: cfg}, nil
}

func (p *iniPresets) GetPresets(_ context.Context) ([]string, error) {
	presets := []string{}
	for _, section := range p.cfg.Sections() {
		if len(section.Keys()) > 0 {
			presets = append(presets, section.Name())
		}
	}
	return presets, nil
}

func (p *iniPresets) GetPreset(_ context.Context, name string) (*domain.Filter, error) {
	section, err := p.cfg.GetSection(name)
	if err != nil || len(section.Keys()) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrPresetNotFound, name)
	}

	method, err := domain.ParseMethodSelector(section.Key("method").String())
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	view, err := domain.ParseGranularity(section.Key("view").String())
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}

	filter := &domain.Filter{
		Range: domain.DateRange{
			Start: section.Key("start").String(),
			End:   section.Key("end").String(),
		},
		Method:      method,
		Granularity: view,
	}
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return filter, nil
}
