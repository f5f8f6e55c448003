package user

import (
	"fmt"
	"text/tabwriter"

	"github.com/bornholm/bbs/internal/command/common"
	"github.com/bornholm/bbs/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List known users",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagProvider,
				Usage: "Only list users of this identity provider",
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := setup.NewUserManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			list, err := users.List(ctx, cCtx.String(flagProvider))
			if err != nil {
				return errors.WithStack(err)
			}

			w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

			fmt.Fprintln(w, "ID\tPROVIDER\tSUBJECT\tDISPLAY NAME\tEMAIL")

			for _, u := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID(), u.Provider(), u.Subject(), u.DisplayName(), u.Email())
			}

			if err := w.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
