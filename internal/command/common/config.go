package common

import (
	"log/slog"

	"github.com/bornholm/bbs/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// LoadConfig parses the environment configuration shared by every
// command.
func LoadConfig(cCtx *cli.Context) (*config.Config, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	slog.DebugContext(cCtx.Context, "using configuration", slog.Any("config", conf))

	return conf, nil
}
