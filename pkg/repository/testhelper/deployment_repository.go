package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for DeploymentRepository
// This is the main entry point for testing any DeploymentRepository implementation
func TestAll(t *testing.T, repo interfaces.DeploymentRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("Revisions", func(t *testing.T) {
		TestRevisions(t, repo)
	})
	t.Run("FindLatestByApp", func(t *testing.T) {
		TestFindLatestByApp(t, repo)
	})
	t.Run("ListOrder", func(t *testing.T) {
		TestListOrder(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newDeployment(appID types.AppID, createdAt time.Time) *model.Deployment {
	return &model.Deployment{
		ID:          types.NewDeploymentID(),
		AppID:       appID,
		AppName:     types.AppName("app-" + uuid.NewString()[:8]),
		Branch:      "main",
		Region:      "us-east-1",
		Framework:   types.FrameworkReact,
		ProjectPath: "/tmp/project",
		Status:      types.DeploymentStatusProvisioning,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func newAppID() types.AppID {
	return types.AppID(fmt.Sprintf("d%s", uuid.NewString()[:12]))
}

// TestPutAndGet tests storing and reading a single revision
func TestPutAndGet(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	d := newDeployment(newAppID(), time.Now().UTC().Truncate(time.Millisecond))

	gt.NoError(t, repo.Put(ctx, d))

	got := gt.R1(repo.Get(ctx, d.ID)).NoError(t)
	gt.V(t, got.ID).Equal(d.ID)
	gt.V(t, got.AppID).Equal(d.AppID)
	gt.V(t, got.AppName).Equal(d.AppName)
	gt.V(t, got.Branch).Equal(d.Branch)
	gt.V(t, got.Region).Equal(d.Region)
	gt.V(t, got.Framework).Equal(d.Framework)
	gt.V(t, got.ProjectPath).Equal(d.ProjectPath)
	gt.V(t, got.Status).Equal(d.Status)
	gt.True(t, got.CreatedAt.Equal(d.CreatedAt))

	_, err := repo.Get(ctx, types.NewDeploymentID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestRevisions tests that a status change is read back as the latest revision
func TestRevisions(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	d := newDeployment(newAppID(), now)
	gt.NoError(t, repo.Put(ctx, d))

	next := d.WithStatus(types.DeploymentStatusDeploying, "", now.Add(time.Second))
	gt.NoError(t, repo.Put(ctx, next))

	final := next.WithStatus(types.DeploymentStatus(types.StageProduction), "https://main.example.amplifyapp.com", now.Add(2*time.Second))
	gt.NoError(t, repo.Put(ctx, final))

	got := gt.R1(repo.Get(ctx, d.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.DeploymentStatus(types.StageProduction))
	gt.V(t, got.URL).Equal("https://main.example.amplifyapp.com")
	gt.True(t, got.CreatedAt.Equal(now))

	// The original revision is not modified by later revisions
	gt.V(t, d.Status).Equal(types.DeploymentStatusProvisioning)

	list := gt.R1(repo.List(ctx, 100)).NoError(t)
	count := 0
	for _, item := range list {
		if item.ID == d.ID {
			count++
			gt.V(t, item.Status).Equal(types.DeploymentStatus(types.StageProduction))
		}
	}
	gt.V(t, count).Equal(1)
}

// TestFindLatestByApp tests looking up the newest deployment of an app
func TestFindLatestByApp(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	appID := newAppID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	notFound := gt.R1(repo.FindLatestByApp(ctx, appID)).NoError(t)
	gt.True(t, notFound == nil)

	older := newDeployment(appID, now)
	newer := newDeployment(appID, now.Add(time.Minute))
	other := newDeployment(newAppID(), now.Add(2*time.Minute))
	gt.NoError(t, repo.Put(ctx, older))
	gt.NoError(t, repo.Put(ctx, newer))
	gt.NoError(t, repo.Put(ctx, other))

	got := gt.R1(repo.FindLatestByApp(ctx, appID)).NoError(t)
	gt.True(t, got != nil)
	gt.V(t, got.ID).Equal(newer.ID)
}

// TestListOrder tests that List returns most recent deployments first
func TestListOrder(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	base := time.Now().UTC().Add(time.Hour).Truncate(time.Millisecond)

	first := newDeployment(newAppID(), base)
	second := newDeployment(newAppID(), base.Add(time.Second))
	third := newDeployment(newAppID(), base.Add(2*time.Second))
	gt.NoError(t, repo.Put(ctx, first))
	gt.NoError(t, repo.Put(ctx, third))
	gt.NoError(t, repo.Put(ctx, second))

	list := gt.R1(repo.List(ctx, 2)).NoError(t)
	gt.V(t, len(list)).Equal(2)
	gt.V(t, list[0].ID).Equal(third.ID)
	gt.V(t, list[1].ID).Equal(second.ID)
}

// TestInvalidInput tests rejection of records that cannot be indexed
func TestInvalidInput(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	gt.Error(t, repo.Put(ctx, &model.Deployment{CreatedAt: time.Now()}))
	gt.Error(t, repo.Put(ctx, &model.Deployment{ID: types.NewDeploymentID()}))

	_, err := repo.List(ctx, 0)
	gt.Error(t, err)
}

// TestCapacity tests that a store drops the oldest deployments beyond capacity.
// repo must be empty and configured with the given capacity.
func TestCapacity(t *testing.T, repo interfaces.DeploymentRepository, capacity int) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Millisecond)

	var deployments []*model.Deployment
	for i := 0; i < capacity+2; i++ {
		d := newDeployment(newAppID(), base.Add(time.Duration(i)*time.Second))
		gt.NoError(t, repo.Put(ctx, d))
		deployments = append(deployments, d)
	}

	// Revisions of a kept deployment do not count against capacity
	last := deployments[len(deployments)-1]
	gt.NoError(t, repo.Put(ctx, last.WithStatus(types.DeploymentStatusDeploying, "", base.Add(time.Hour))))

	list := gt.R1(repo.List(ctx, 100)).NoError(t)
	gt.V(t, len(list)).Equal(capacity)
	gt.V(t, list[0].ID).Equal(last.ID)
	gt.V(t, list[0].Status).Equal(types.DeploymentStatusDeploying)

	_, err := repo.Get(ctx, deployments[0].ID)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
