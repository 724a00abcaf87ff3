package cli

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/cli/config"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var (
		history config.History
		limit   int
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List recorded deployments, most recent first",
		Flags: slice.Flatten([]cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "Maximum number of deployments",
				Value:       20,
				Destination: &limit,
			},
		}, history.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := history.NewRepository(ctx)
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New(infra.WithDeploymentRepository(repo)))
			deployments, err := uc.ListDeployments(ctx, &model.ListDeploymentsInput{Limit: limit})
			if err != nil {
				return err
			}

			printJSON(c.Root().Writer, deployments)
			return nil
		},
	}
}
