package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/repository/memory"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestListDeployments(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		gt.NoError(t, repo.Put(ctx, &model.Deployment{
			ID:        types.DeploymentID(fmt.Sprintf("dep-%02d", i)),
			AppID:     "d123",
			Status:    types.DeploymentStatusProvisioning,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	uc := usecase.New(infra.New(infra.WithDeploymentRepository(repo)))

	t.Run("default limit", func(t *testing.T) {
		deployments := gt.R1(uc.ListDeployments(ctx, &model.ListDeploymentsInput{})).NoError(t)
		gt.V(t, len(deployments)).Equal(20)
		gt.V(t, deployments[0].ID).Equal(types.DeploymentID("dep-24"))
		gt.V(t, deployments[19].ID).Equal(types.DeploymentID("dep-05"))
	})

	t.Run("explicit limit", func(t *testing.T) {
		deployments := gt.R1(uc.ListDeployments(ctx, &model.ListDeploymentsInput{Limit: 3})).NoError(t)
		gt.V(t, len(deployments)).Equal(3)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := uc.ListDeployments(ctx, &model.ListDeploymentsInput{Limit: -1})
		gt.True(t, errors.Is(err, types.ErrInvalidInput))
	})
}
