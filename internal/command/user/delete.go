package user

import (
	"fmt"

	"github.com/bornholm/bbs/internal/command/common"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/bornholm/bbs/internal/core/port"
	"github.com/bornholm/bbs/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const flagProvider = "provider"

func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a user that authored no article",
		ArgsUsage: "<subject>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagProvider,
				Usage: "Identity provider of the user",
				Value: model.ProviderLocal,
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			subject := cCtx.Args().First()
			if subject == "" {
				return errors.New("missing user subject")
			}

			conf, err := common.LoadConfig(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := setup.NewUserManagerFromConfig(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			provider := cCtx.String(flagProvider)

			if err := users.Delete(ctx, provider, subject); err != nil {
				if errors.Is(err, port.ErrProtected) {
					return errors.Errorf("user '%s/%s' still authors articles and cannot be deleted", provider, subject)
				}

				return errors.Wrapf(err, "could not delete user '%s/%s'", provider, subject)
			}

			fmt.Fprintf(cCtx.App.Writer, "user '%s/%s' deleted\n", provider, subject)

			return nil
		},
	}
}
