package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func postsCmd(g *globalFlags) *cobra.Command {
	var opts outputOpts

	c := &cobra.Command{
		Use:   "posts",
		Short: "List all posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(g, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			res := app.api.ListPosts(cmd.Context())
			if res.Err != nil {
				return failure(res.Err, g.debug)
			}

			views := toPostViews(res.Data)
			return render(cmd.OutOrStdout(), views, withDefaultFormat(opts, app.cfg.Format), func(w io.Writer) {
				printPrettyPosts(w, views)
			})
		},
	}

	addOutputFlags(c, &opts)
	return c
}

func addOutputFlags(c *cobra.Command, opts *outputOpts) {
	c.Flags().StringVar(&opts.format, "format", "", "Output format: pretty|json (defaults to config)")
	c.Flags().StringVarP(&opts.query, "query", "q", "", "JSONPath expression applied to the JSON output, e.g. '$[*].author'")
}

func withDefaultFormat(opts outputOpts, cfgFormat string) outputOpts {
	if opts.format == "" {
		opts.format = cfgFormat
	}
	return opts
}
