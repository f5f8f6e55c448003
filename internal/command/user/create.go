package user

import (
	"fmt"

	"github.com/bornholm/bbs/internal/command/common"
	"github.com/bornholm/bbs/internal/crypto"
	"github.com/bornholm/bbs/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername    = "username"
	flagPassword    = "password"
	flagDisplayName = "display-name"
	flagEmail       = "email"
)

func CreateCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a local user, or reset its password if it already exists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagUsername,
				Aliases:  []string{"u"},
				Usage:    "Login of the user",
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagPassword,
				Aliases: []string{"p"},
				Usage:   "Password of the user, a random one is generated and printed when empty",
				EnvVars: []string{"BBS_USER_PASSWORD"},
			},
			&cli.StringFlag{
				Name:  flagDisplayName,
				Usage: "Name shown as the author of the user's articles, defaults to the username",
			},
			&cli.StringFlag{
				Name:  flagEmail,
				Usage: "Email address of the user",
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

			username := cCtx.String(flagUsername)
			password := cCtx.String(flagPassword)

			generated := password == ""
			if generated {
				password, err = crypto.RandomPassword(16)
				if err != nil {
					return errors.Wrap(err, "could not generate password")
				}
			}

			user, err := users.CreateLocalUser(ctx, username, password, cCtx.String(flagDisplayName), cCtx.String(flagEmail))
			if err != nil {
				return errors.Wrapf(err, "could not create user '%s'", username)
			}

			fmt.Fprintf(cCtx.App.Writer, "user '%s' saved (id: %s)\n", user.Subject(), user.ID())

			if generated {
				fmt.Fprintf(cCtx.App.Writer, "generated password: %s\n", password)
			}

			return nil
		},
	}
}
