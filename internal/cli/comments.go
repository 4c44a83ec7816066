package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func commentsCmd(g *globalFlags) *cobra.Command {
	var opts outputOpts

	c := &cobra.Command{
		Use:   "comments POST_ID",
		Short: "List the comments of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			res := app.api.ListComments(cmd.Context(), args[0])
			if res.Err != nil {
				return failure(res.Err, g.debug)
			}

			views := toCommentViews(res.Data)
			return render(cmd.OutOrStdout(), views, withDefaultFormat(opts, app.cfg.Format), func(w io.Writer) {
				printPrettyComments(w, views)
			})
		},
	}

	addOutputFlags(c, &opts)
	return c
}
