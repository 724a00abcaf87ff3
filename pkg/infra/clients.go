package infra

import (
	"context"
	"sync"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra/buildspec"
	"github.com/m-mizutani/ampship/pkg/infra/clock"
	"github.com/m-mizutani/ampship/pkg/infra/secret"
	"github.com/m-mizutani/ampship/pkg/repository/memory"
	"github.com/m-mizutani/goerr/v2"
)

type Clients struct {
	github      interfaces.GitHub
	hosting     interfaces.Hosting
	buildSpec   interfaces.BuildSpec
	secrets     interfaces.SecretStore
	clock       interfaces.Clock
	deployments interfaces.DeploymentRepository

	hostingFactory HostingFactory
	hostingMutex   sync.Mutex
	hostingCache   map[types.Region]interfaces.Hosting
}

// HostingFactory builds a hosting client bound to a region.
type HostingFactory func(ctx context.Context, region types.Region) (interfaces.Hosting, error)

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		buildSpec:    buildspec.New(),
		secrets:      secret.NewEnv(),
		clock:        clock.New(),
		deployments:  memory.New(),
		hostingCache: make(map[types.Region]interfaces.Hosting),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

// HostingFor returns a hosting client for region. An empty region or the
// default client's region yields the default client; other regions are built
// once by the HostingFactory and reused.
func (x *Clients) HostingFor(ctx context.Context, region types.Region) (interfaces.Hosting, error) {
	if x.hosting != nil && (region == "" || region == x.hosting.Region()) {
		return x.hosting, nil
	}
	if x.hostingFactory == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "hosting client is not configured for region", goerr.V("region", region))
	}

	x.hostingMutex.Lock()
	defer x.hostingMutex.Unlock()

	if client, ok := x.hostingCache[region]; ok {
		return client, nil
	}
	client, err := x.hostingFactory(ctx, region)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create hosting client", goerr.V("region", region))
	}
	x.hostingCache[region] = client
	return client, nil
}
func (x *Clients) BuildSpec() interfaces.BuildSpec {
	return x.buildSpec
}
func (x *Clients) Secrets() interfaces.SecretStore {
	return x.secrets
}
func (x *Clients) Clock() interfaces.Clock {
	return x.clock
}
func (x *Clients) Deployments() interfaces.DeploymentRepository {
	return x.deployments
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithHosting(client interfaces.Hosting) Option {
	return func(x *Clients) {
		x.hosting = client
	}
}

func WithHostingFactory(factory HostingFactory) Option {
	return func(x *Clients) {
		x.hostingFactory = factory
	}
}

func WithBuildSpec(gen interfaces.BuildSpec) Option {
	return func(x *Clients) {
		x.buildSpec = gen
	}
}

func WithSecretStore(store interfaces.SecretStore) Option {
	return func(x *Clients) {
		x.secrets = store
	}
}

func WithClock(c interfaces.Clock) Option {
	return func(x *Clients) {
		x.clock = c
	}
}

func WithDeploymentRepository(repo interfaces.DeploymentRepository) Option {
	return func(x *Clients) {
		x.deployments = repo
	}
}
