package firestore_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/ampship/pkg/repository/firestore"
	"github.com/m-mizutani/ampship/pkg/repository/testhelper"
	"github.com/m-mizutani/ampship/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestFirestoreDeploymentRepository(t *testing.T) {
	envs := testutil.GetEnvsOrSkip(t, "TEST_FIRESTORE_PROJECT_ID", "TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, envs[0], envs[1])
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}
