package usecase

import (
	"github.com/m-mizutani/ampship/pkg/domain/envvar"
	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/infra"
)

// DefaultRequiredScope is the classic token scope the hosting provider needs
// to register its repository webhook.
const DefaultRequiredScope = "admin:repo_hook"

// SecretNameGitHubToken is looked up in the secret store when no token is given.
const SecretNameGitHubToken = "github-token"

type UseCase struct {
	clients       *infra.Clients
	requiredScope string
	envFilter     *envvar.Filter
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithRequiredScope(scope string) Option {
	return func(x *UseCase) {
		x.requiredScope = scope
	}
}

func WithEnvFilter(filter *envvar.Filter) Option {
	return func(x *UseCase) {
		x.envFilter = filter
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		requiredScope: DefaultRequiredScope,
		envFilter:     envvar.NewFilter(),
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
