package commands

import (
	"github.com/spf13/cobra"
)

type PresetsCmd struct {
	env      *Env
	reporter Reporter
}

func NewPresetsCmd(env *Env, reporter Reporter) *cobra.Command {
	pc := &PresetsCmd{env: env, reporter: reporter}
	return &cobra.Command{
		Use:   "presets",
		Short: "List the configured filter presets",
		RunE:  pc.run,
	}
}

func (pc *PresetsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, presets, err := pc.env.Presets(cmd.Context())
	if err != nil {
		return err
	}

	names, err := presets.GetPresets(ctx)
	if err != nil {
		return err
	}

	out := make([]NamedFilter, 0, len(names))
	for _, name := range names {
		f, err := presets.GetPreset(ctx, name)
		if err != nil {
			return err
		}
		out = append(out, NamedFilter{Name: name, Filter: *f})
	}
	return pc.reporter.Presets(out)
}
