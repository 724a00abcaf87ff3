package interfaces

import (
	"context"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
)

//go:generate moq -out ../mock/deployment_repository_mock.go -pkg mock . DeploymentRepository

// DeploymentRepository is the append-only deployment history. Every Put
// stores a new revision; readers see the latest revision per deployment ID,
// most recent first. Implementations drop deployments beyond their cap.
type DeploymentRepository interface {
	Put(ctx context.Context, deployment *model.Deployment) error
	Get(ctx context.Context, id types.DeploymentID) (*model.Deployment, error)
	// FindLatestByApp returns nil without error when the app has no record.
	FindLatestByApp(ctx context.Context, appID types.AppID) (*model.Deployment, error)
	List(ctx context.Context, limit int) ([]*model.Deployment, error)
}
