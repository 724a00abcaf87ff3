package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/ampship/pkg/repository/sqlite"
	"github.com/m-mizutani/ampship/pkg/repository/testhelper"
	"github.com/m-mizutani/gt"
)

func TestSQLiteDeploymentRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "deployments.db")
	repo := gt.R1(sqlite.New(context.Background(), path)).NoError(t)
	testhelper.TestAll(t, repo)
}

func TestSQLiteDeploymentCapacity(t *testing.T) {
	repo := gt.R1(sqlite.New(context.Background(), ":memory:", sqlite.WithCapacity(3))).NoError(t)
	testhelper.TestCapacity(t, repo, 3)
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "deployments.db")

	repo := gt.R1(sqlite.New(ctx, path)).NoError(t)
	testhelper.TestPutAndGet(t, repo)
	list := gt.R1(repo.List(ctx, 10)).NoError(t)

	reopened := gt.R1(sqlite.New(ctx, path)).NoError(t)
	again := gt.R1(reopened.List(ctx, 10)).NoError(t)
	gt.V(t, len(again)).Equal(len(list))
}

func TestSQLiteEmptyPath(t *testing.T) {
	_, err := sqlite.New(context.Background(), "")
	gt.Error(t, err)
}
