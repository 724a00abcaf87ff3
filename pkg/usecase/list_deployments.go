package usecase

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ListDeployments returns recorded deployments, most recent first.
func (x *UseCase) ListDeployments(ctx context.Context, input *model.ListDeploymentsInput) ([]*model.Deployment, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	deployments, err := x.clients.Deployments().List(ctx, input.Limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list deployments", goerr.V("limit", input.Limit))
	}
	return deployments, nil
}
