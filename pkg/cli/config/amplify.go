package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/infra/amplify"
	"github.com/urfave/cli/v3"
)

type Amplify struct {
	region   string
	profile  string
	endpoint string
}

func (x *Amplify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "region",
			Usage:       "Default AWS region of Amplify apps",
			Category:    "Amplify",
			Value:       "us-east-1",
			Destination: &x.region,
			Sources:     cli.EnvVars("AMPSHIP_REGION", "AWS_REGION"),
		},
		&cli.StringFlag{
			Name:        "aws-profile",
			Usage:       "Profile name in the shared AWS config",
			Category:    "Amplify",
			Destination: &x.profile,
			Sources:     cli.EnvVars("AMPSHIP_AWS_PROFILE", "AWS_PROFILE"),
		},
		&cli.StringFlag{
			Name:        "amplify-endpoint",
			Usage:       "Amplify API endpoint override",
			Category:    "Amplify",
			Destination: &x.endpoint,
			Sources:     cli.EnvVars("AMPSHIP_AMPLIFY_ENDPOINT"),
		},
	}
}

func (x *Amplify) Region() types.Region {
	return types.Region(x.region)
}

func (x *Amplify) options() []amplify.Option {
	var opts []amplify.Option
	if x.profile != "" {
		opts = append(opts, amplify.WithProfile(x.profile))
	}
	if x.endpoint != "" {
		opts = append(opts, amplify.WithEndpoint(x.endpoint))
	}
	return opts
}

// New builds the client of the default region.
func (x *Amplify) New(ctx context.Context) (*amplify.Client, error) {
	return amplify.New(ctx, x.Region(), x.options()...)
}

// Factory builds clients for regions other than the default one with the
// same profile and endpoint.
func (x *Amplify) Factory() infra.HostingFactory {
	return func(ctx context.Context, region types.Region) (interfaces.Hosting, error) {
		return amplify.New(ctx, region, x.options()...)
	}
}

func (x Amplify) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("region", x.region),
		slog.String("profile", x.profile),
		slog.String("endpoint", x.endpoint),
	)
}
