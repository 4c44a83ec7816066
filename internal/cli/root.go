package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/postline/internal/infra/logger"
	"github.com/aalvaropc/postline/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand and override config values.
type globalFlags struct {
	baseURL    string
	timeout    string
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "postline",
		Short:        "Read blog posts and comments from a remote API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, true, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			return tui.Run(tui.Deps{
				API:     app.api,
				BaseURL: app.cfg.BaseURL,
				Logger:  logger.L(),
				Debug:   g.debug,
				LogPath: app.logPath,
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.baseURL, "base-url", "", "API base URL (overrides postline.yaml and POSTLINE_BASE_URL)")
	pf.StringVar(&g.timeout, "timeout", "", "Request timeout, e.g. 10s (0 disables)")
	pf.StringVar(&g.configPath, "config", "", "Path to postline.yaml (optional; autodetected if omitted)")
	pf.BoolVar(&g.debug, "debug", false, "enable verbose logging to .postline/logs/postline.log")

	cmd.AddCommand(
		postsCmd(g),
		commentsCmd(g),
		threadCmd(g),
		configCmd(g),
		versionCmd(),
	)
	return cmd
}
