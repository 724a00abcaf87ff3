package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const serviceName = "github"

type Client struct {
	baseURL *url.URL
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a GitHub Enterprise or test server.
func WithBaseURL(baseURL *url.URL) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(options ...Option) *Client {
	client := &Client{}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func (x *Client) buildGithubClient(ctx context.Context, token types.GitHubToken) *github.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	if x.baseURL != nil {
		base := *x.baseURL
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		client.BaseURL = &base
	}
	return client
}

// toAPIError converts a go-github failure into *model.APIError when an HTTP
// response is available. Transport failures are wrapped as is.
func toAPIError(err error, resp *github.Response, msg string, values ...goerr.Option) error {
	apiErr := &model.APIError{Service: serviceName, Message: err.Error()}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr.Message = ghErr.Message
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
			apiErr.RequestID = ghErr.Response.Header.Get("X-GitHub-Request-Id")
		}
	} else if resp != nil && resp.Response != nil {
		apiErr.StatusCode = resp.StatusCode
		apiErr.RequestID = resp.Header.Get("X-GitHub-Request-Id")
	}

	if apiErr.StatusCode == 0 {
		return goerr.Wrap(err, msg, values...)
	}
	values = append(values, goerr.V("status", apiErr.StatusCode))
	return goerr.Wrap(apiErr, msg, values...)
}

func (x *Client) GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*model.GitHubIdentity, error) {
	client := x.buildGithubClient(ctx, token)

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, toAPIError(err, resp, "failed to get authenticated user")
	}

	logging.From(ctx).Debug("GitHub authenticated user",
		slog.String("login", user.GetLogin()),
		slog.Any("token", token),
	)

	return &model.GitHubIdentity{
		Login: user.GetLogin(),
		ID:    user.GetID(),
	}, nil
}

func (x *Client) ListRepositoriesForToken(ctx context.Context, token types.GitHubToken) ([]string, error) {
	client := x.buildGithubClient(ctx, token)

	opt := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}
	_, resp, err := client.Repositories.List(ctx, "", opt)
	if err != nil {
		return nil, toAPIError(err, resp, "failed to list repositories for token")
	}

	return parseScopes(resp.Header.Get("X-OAuth-Scopes")), nil
}

func parseScopes(header string) []string {
	var scopes []string
	for _, s := range strings.Split(header, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}

func (x *Client) GetRepository(ctx context.Context, repo model.RepositoryLink, token types.GitHubToken) error {
	client := x.buildGithubClient(ctx, token)

	// https://docs.github.com/en/rest/repos/repos#get-a-repository
	_, resp, err := client.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return toAPIError(err, resp, "failed to get repository", goerr.V("repo", repo.FullName()))
	}
	if resp.StatusCode != http.StatusOK {
		return goerr.Wrap(&model.APIError{Service: serviceName, StatusCode: resp.StatusCode}, "unexpected status on get repository", goerr.V("repo", repo.FullName()))
	}
	return nil
}

func (x *Client) ListWebhooks(ctx context.Context, repo model.RepositoryLink, token types.GitHubToken) error {
	client := x.buildGithubClient(ctx, token)

	// https://docs.github.com/en/rest/repos/webhooks#list-repository-webhooks
	_, resp, err := client.Repositories.ListHooks(ctx, repo.Owner, repo.Name, &github.ListOptions{PerPage: 1})
	if err != nil {
		return toAPIError(err, resp, "failed to list repository webhooks", goerr.V("repo", repo.FullName()))
	}
	return nil
}
