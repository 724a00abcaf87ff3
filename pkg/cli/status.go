package cli

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func statusCommand() *cli.Command {
	var (
		clients clientConfig
		appID   string
		branch  string
	)

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"st"},
		Usage:   "Show the build status of an Amplify app",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "app-id",
				Aliases:     []string{"a"},
				Usage:       "Amplify app ID",
				Required:    true,
				Destination: &appID,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch name (default: branch of the latest deployment, then main)",
				Destination: &branch,
			},
		}, clients.flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			infraClients, err := clients.newClients(ctx)
			if err != nil {
				return err
			}

			out, err := usecase.New(infraClients).CheckStatus(ctx, &model.CheckStatusInput{
				AppID:  types.AppID(appID),
				Branch: types.BranchName(branch),
			})
			if err != nil {
				return err
			}

			printJSON(c.Root().Writer, out)
			return nil
		},
	}
}
