package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type deploymentRepository struct {
	mu        sync.RWMutex
	capacity  int
	order     []types.DeploymentID
	revisions map[types.DeploymentID][]*model.Deployment
}

type Option func(*deploymentRepository)

// WithCapacity sets how many deployments are kept. Older deployments are
// dropped with all their revisions.
func WithCapacity(n int) Option {
	return func(x *deploymentRepository) {
		x.capacity = n
	}
}

// New creates a new in-memory deployment history
func New(options ...Option) interfaces.DeploymentRepository {
	repo := &deploymentRepository{
		capacity:  repository.DefaultCapacity,
		revisions: make(map[types.DeploymentID][]*model.Deployment),
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo
}

func copyDeployment(d *model.Deployment) *model.Deployment {
	c := *d
	return &c
}

func (r *deploymentRepository) Put(ctx context.Context, deployment *model.Deployment) error {
	if err := repository.ValidateDeployment(deployment); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.revisions[deployment.ID]; !exists {
		r.order = append(r.order, deployment.ID)
	}
	r.revisions[deployment.ID] = append(r.revisions[deployment.ID], copyDeployment(deployment))

	for r.capacity > 0 && len(r.order) > r.capacity {
		delete(r.revisions, r.order[0])
		r.order = r.order[1:]
	}

	return nil
}

func (r *deploymentRepository) latest(id types.DeploymentID) *model.Deployment {
	revs := r.revisions[id]
	if len(revs) == 0 {
		return nil
	}
	return revs[len(revs)-1]
}

func (r *deploymentRepository) Get(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d := r.latest(id)
	if d == nil {
		return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found", goerr.V("id", id))
	}
	return copyDeployment(d), nil
}

// sorted returns the latest revision of every deployment, most recent first.
func (r *deploymentRepository) sorted() []*model.Deployment {
	resp := make([]*model.Deployment, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		resp = append(resp, r.latest(r.order[i]))
	}
	sort.SliceStable(resp, func(i, j int) bool {
		return resp[i].CreatedAt.After(resp[j].CreatedAt)
	})
	return resp
}

func (r *deploymentRepository) FindLatestByApp(ctx context.Context, appID types.AppID) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.sorted() {
		if d.AppID == appID {
			return copyDeployment(d), nil
		}
	}
	return nil, nil
}

func (r *deploymentRepository) List(ctx context.Context, limit int) ([]*model.Deployment, error) {
	if limit <= 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "limit must be positive", goerr.V("limit", limit))
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var resp []*model.Deployment
	for _, d := range r.sorted() {
		if len(resp) >= limit {
			break
		}
		resp = append(resp, copyDeployment(d))
	}
	return resp, nil
}
