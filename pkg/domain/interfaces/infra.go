package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Hosting BuildSpec SecretStore Clock

import (
	"context"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
)

// GitHub is the source-control host API. Failed HTTP calls return an error
// wrapping *model.APIError carrying the status code.
type GitHub interface {
	GetAuthenticatedUser(ctx context.Context, token types.GitHubToken) (*model.GitHubIdentity, error)
	// ListRepositoriesForToken probes repository listing and returns the
	// scopes granted to the token (X-OAuth-Scopes).
	ListRepositoriesForToken(ctx context.Context, token types.GitHubToken) ([]string, error)
	GetRepository(ctx context.Context, repo model.RepositoryLink, token types.GitHubToken) error
	ListWebhooks(ctx context.Context, repo model.RepositoryLink, token types.GitHubToken) error
}

// Hosting is the hosting provider API. Failed calls return an error wrapping
// *model.APIError.
type Hosting interface {
	Region() types.Region
	CreateApp(ctx context.Context, input *model.CreateAppInput) (*model.RemoteApp, error)
	CreateBranch(ctx context.Context, appID types.AppID, branch types.BranchName) error
	StartBuild(ctx context.Context, appID types.AppID, branch types.BranchName) (string, error)
	GetApp(ctx context.Context, appID types.AppID) (*model.RemoteApp, error)
	GetBranch(ctx context.Context, appID types.AppID, branch types.BranchName) (*model.Branch, error)
	ListBranches(ctx context.Context, appID types.AppID) ([]*model.Branch, error)
	ListApps(ctx context.Context) ([]*model.RemoteApp, error)
	UpdateAppEnvironment(ctx context.Context, appID types.AppID, env map[string]string) error
}

// BuildSpec makes sure the project carries a build configuration for the
// framework and returns its content.
type BuildSpec interface {
	Ensure(ctx context.Context, project *model.Project) (string, error)
}

type SecretStore interface {
	// Get returns an empty string when name is not stored.
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, secret string) error
}

type Clock interface {
	Now() time.Time
	// Sleep waits for d or until ctx is done.
	Sleep(ctx context.Context, d time.Duration) error
}
