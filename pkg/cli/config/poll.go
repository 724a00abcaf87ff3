package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Poll struct {
	interval         time.Duration
	partialThreshold int
	maxAttempts      int
	wait             bool
}

func (x *Poll) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Interval between build status reads",
			Category:    "Poll",
			Value:       5 * time.Second,
			Destination: &x.interval,
			Sources:     cli.EnvVars("AMPSHIP_POLL_INTERVAL"),
		},
		&cli.IntFlag{
			Name:        "poll-partial-threshold",
			Usage:       "Attempts after which a running build is reported as partial success (0 disables)",
			Category:    "Poll",
			Value:       36,
			Destination: &x.partialThreshold,
			Sources:     cli.EnvVars("AMPSHIP_POLL_PARTIAL_THRESHOLD"),
		},
		&cli.IntFlag{
			Name:        "poll-max-attempts",
			Usage:       "Attempts before polling gives up",
			Category:    "Poll",
			Value:       120,
			Destination: &x.maxAttempts,
			Sources:     cli.EnvVars("AMPSHIP_POLL_MAX_ATTEMPTS"),
		},
		&cli.BoolFlag{
			Name:        "wait",
			Usage:       "Keep waiting after the partial success threshold until the build settles",
			Category:    "Poll",
			Destination: &x.wait,
			Sources:     cli.EnvVars("AMPSHIP_POLL_WAIT"),
		},
	}
}

func (x *Poll) Options() model.PollOptions {
	return model.PollOptions{
		Interval:                x.interval,
		PartialSuccessThreshold: x.partialThreshold,
		MaxAttempts:             x.maxAttempts,
		DisablePartial:          x.partialThreshold <= 0,
		ContinueAfterPartial:    x.wait,
	}
}

func (x Poll) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("interval", x.interval),
		slog.Int("partialThreshold", x.partialThreshold),
		slog.Int("maxAttempts", x.maxAttempts),
		slog.Bool("wait", x.wait),
	)
}
