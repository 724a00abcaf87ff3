package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/domain/model"
)

type UseCase interface {
	Deploy(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error)
	CheckStatus(ctx context.Context, input *model.CheckStatusInput) (*model.CheckStatusOutput, error)
	SyncEnvVars(ctx context.Context, input *model.SyncEnvVarsInput) (*model.SyncEnvVarsOutput, error)
	ListDeployments(ctx context.Context, input *model.ListDeploymentsInput) ([]*model.Deployment, error)
}
