package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/ampship/pkg/cli/config"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parseFlags runs a command holding flags so that their destinations are filled.
func parseFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	names := flagNames(flags)
	gt.True(t, names["sentry-dsn"])
	gt.True(t, names["sentry-env"])
	gt.True(t, names["sentry-release"])
}

func TestSentryNotConfigured(t *testing.T) {
	var sentryConfig config.Sentry
	parseFlags(t, sentryConfig.Flags())

	gt.False(t, sentryConfig.Enabled())
	gt.NoError(t, sentryConfig.Configure(context.Background()))
}
