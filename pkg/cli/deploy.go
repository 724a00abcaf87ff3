package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/cli/config"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func deployCommand() *cli.Command {
	var (
		clients    clientConfig
		poll       config.Poll
		dir        string
		appName    string
		branch     string
		framework  string
		syncEnv    bool
		background bool
	)

	return &cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Validate the project and token, create an Amplify app and wait for its first build",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "Path to the project directory",
				Value:       ".",
				Destination: &dir,
			},
			&cli.StringFlag{
				Name:        "app-name",
				Usage:       "Amplify app name (default: project directory name)",
				Destination: &appName,
			},
			&cli.StringFlag{
				Name:        "branch",
				Aliases:     []string{"b"},
				Usage:       "Branch to deploy",
				Value:       "main",
				Destination: &branch,
			},
			&cli.StringFlag{
				Name:        "framework",
				Usage:       "Framework override [static|react|nextjs|vue|angular]",
				Destination: &framework,
			},
			&cli.BoolFlag{
				Name:        "sync-env",
				Usage:       "Attach production-safe variables of .env files to the app",
				Destination: &syncEnv,
			},
			&cli.BoolFlag{
				Name:        "background",
				Usage:       "Return right after the build is started",
				Destination: &background,
			},
		}, clients.flags(), poll.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			infraClients, err := clients.newClients(ctx)
			if err != nil {
				return err
			}
			uc := usecase.New(infraClients)

			out, err := uc.Deploy(ctx, &model.DeployInput{
				ProjectPath: dir,
				AppName:     types.AppName(appName),
				Branch:      types.BranchName(branch),
				Region:      clients.amplify.Region(),
				Framework:   types.Framework(framework),
				Token:       clients.github.Token(),
				SyncEnvVars: syncEnv,
				Background:  background,
				Poll:        poll.Options(),
			})
			if err != nil {
				return err
			}

			logging.From(ctx).Info("deployment finished",
				slog.Any("app_id", out.AppID),
				slog.Any("outcome", out.Outcome),
				slog.String("url", out.URL),
			)
			printJSON(c.Root().Writer, out)
			return nil
		},
	}
}
