package config

import (
	"log/slog"
	"net/url"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token   types.GitHubToken `masq:"secret"`
	baseURL string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub classic personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("AMPSHIP_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("AMPSHIP_GITHUB_API_URL"),
		},
	}
}

func (x *GitHub) Token() types.GitHubToken {
	return x.token
}

func (x *GitHub) New() (*github.Client, error) {
	if x.baseURL == "" {
		return github.New(), nil
	}

	baseURL, err := url.Parse(x.baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", x.baseURL), goerr.V("error", err.Error()))
	}
	return github.New(github.WithBaseURL(baseURL)), nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("token", x.token.Mask()),
		slog.String("baseURL", x.baseURL),
	)
}
