package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	stdout io.Writer
	stderr io.Writer
}

type Option func(*CLI)

// WithOutput sets where results and failures are printed.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(x *CLI) {
		x.stdout = stdout
		x.stderr = stderr
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
	)

	app := &cli.Command{
		Name:      "ampship",
		Usage:     "Deploy web projects in a GitHub repository to AWS Amplify Hosting",
		Writer:    x.stdout,
		ErrWriter: x.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("AMPSHIP_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("AMPSHIP_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("AMPSHIP_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		},
		Commands: []*cli.Command{
			deployCommand(),
			statusCommand(),
			syncEnvCommand(),
			listCommand(),
			serveCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err, "kind", types.ErrorKindOf(err))
		printJSON(x.stderr, map[string]any{"error": model.NewFailure(err)})
		return err
	}

	return nil
}

func printJSON(w io.Writer, v any) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Default().Error("failed to print result", "error", err)
	}
}
