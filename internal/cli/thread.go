package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/postline/internal/usecase"
)

func threadCmd(g *globalFlags) *cobra.Command {
	var opts outputOpts

	c := &cobra.Command{
		Use:   "thread POST_ID",
		Short: "Show a post together with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(g, false, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.close()

			res := usecase.NewFetchThread(app.api).Execute(cmd.Context(), args[0])
			if res.Err != nil {
				return failure(res.Err, g.debug)
			}

			view := toThreadView(res.Data)
			return render(cmd.OutOrStdout(), view, withDefaultFormat(opts, app.cfg.Format), func(w io.Writer) {
				printPrettyThread(w, view)
			})
		},
	}

	addOutputFlags(c, &opts)
	return c
}
