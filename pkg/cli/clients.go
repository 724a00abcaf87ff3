package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/cli/config"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// clientConfig is the set of configs every command shares.
type clientConfig struct {
	github  config.GitHub
	amplify config.Amplify
	history config.History
}

func (x *clientConfig) flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.amplify.Flags(),
		x.history.Flags(),
	)
}

func (x *clientConfig) newClients(ctx context.Context) (*infra.Clients, error) {
	logging.From(ctx).Debug("building clients",
		slog.Any("github", x.github),
		slog.Any("amplify", x.amplify),
		slog.Any("history", x.history),
	)

	ghClient, err := x.github.New()
	if err != nil {
		return nil, err
	}

	hosting, err := x.amplify.New(ctx)
	if err != nil {
		return nil, err
	}

	repo, err := x.history.NewRepository(ctx)
	if err != nil {
		return nil, err
	}

	return infra.New(
		infra.WithGitHub(ghClient),
		infra.WithHosting(hosting),
		infra.WithHostingFactory(x.amplify.Factory()),
		infra.WithDeploymentRepository(repo),
	), nil
}
