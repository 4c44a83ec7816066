package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func configCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, root, err := resolveConfig(g)
			if err != nil {
				return err
			}
			cfg, err = applyFlags(cfg, g)
			if err != nil {
				return err
			}

			out := map[string]any{
				"root": root,
				"postline": map[string]any{
					"base_url": cfg.BaseURL,
					"timeout":  cfg.Timeout.String(),
					"format":   cfg.Format,
				},
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
