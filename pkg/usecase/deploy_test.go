package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/mock"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/infra/secret"
	"github.com/m-mizutani/ampship/pkg/repository/memory"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type deployFixture struct {
	hosting *mock.HostingMock
	github  *mock.GitHubMock
	clock   *fakeClock
	repo    interfaces.DeploymentRepository
	path    string
}

func newDeployFixture(t *testing.T, stages []types.Stage) *deployFixture {
	t.Helper()

	hosting := newStageHosting(stages)
	provision := newProvisionHosting()
	hosting.CreateAppFunc = provision.CreateAppFunc
	hosting.CreateBranchFunc = provision.CreateBranchFunc
	hosting.StartBuildFunc = provision.StartBuildFunc

	return &deployFixture{
		hosting: hosting,
		github:  newGitHubMock(),
		clock:   newFakeClock(),
		repo:    memory.New(),
		path: newProject(t, map[string]string{
			"package.json": `{"name":"my-site","dependencies":{"react":"^18","react-dom":"^18"}}`,
			".env":         "API_KEY=abcd1234efgh\nNODE_ENV=production\n",
		}),
	}
}

func (x *deployFixture) newUseCase(options ...infra.Option) *usecase.UseCase {
	buildSpec := &mock.BuildSpecMock{
		EnsureFunc: func(ctx context.Context, project *model.Project) (string, error) {
			return "version: 1\n", nil
		},
	}
	base := []infra.Option{
		infra.WithHosting(x.hosting),
		infra.WithGitHub(x.github),
		infra.WithClock(x.clock),
		infra.WithDeploymentRepository(x.repo),
		infra.WithBuildSpec(buildSpec),
	}
	return usecase.New(infra.New(append(base, options...)...))
}

func (x *deployFixture) stored(t *testing.T, id types.DeploymentID) *model.Deployment {
	t.Helper()
	return gt.R1(x.repo.Get(context.Background(), id)).NoError(t)
}

func TestDeploySettled(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StagePending, types.StageRunning, types.StageProduction})
	uc := fx.newUseCase()

	out := gt.R1(uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
	})).NoError(t)

	gt.V(t, out.Outcome).Equal(model.DeployOutcomeSettled)
	gt.V(t, out.AppID).Equal(types.AppID("d123"))
	gt.V(t, out.AppName).Equal(types.AppName("my-site"))
	gt.V(t, out.Framework).Equal(types.FrameworkReact)
	gt.V(t, out.Branch).Equal(types.BranchName("main"))
	gt.V(t, out.Region).Equal(types.Region("us-east-1"))
	gt.V(t, out.Status).Equal(types.DeploymentStatus("PRODUCTION"))
	gt.V(t, out.URL).Equal("https://main.d123.amplifyapp.com")
	gt.V(t, out.Attempts).Equal(3)
	gt.V(t, out.EnvSync == nil).Equal(true)

	created := fx.hosting.CreateAppCalls()[0].Input
	gt.V(t, created.Repository.URL).Equal("https://github.com/octocat/my-site")
	gt.V(t, created.Framework).Equal(types.FrameworkReact)
	gt.V(t, len(created.Environment)).Equal(0)

	stored := fx.stored(t, out.DeploymentID)
	gt.V(t, stored.Status).Equal(types.DeploymentStatus("PRODUCTION"))
	gt.V(t, stored.ProjectPath).Equal(fx.path)
}

func TestDeployBackground(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StagePending})
	uc := fx.newUseCase()

	out := gt.R1(uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
		AppName:     "custom-name",
		Background:  true,
	})).NoError(t)

	gt.V(t, out.Outcome).Equal(model.DeployOutcomeBackground)
	gt.V(t, out.Status).Equal(types.DeploymentStatusProvisioning)
	gt.V(t, out.AppName).Equal(types.AppName("custom-name"))
	gt.V(t, out.URL).Equal("https://main.d123.amplifyapp.com")
	gt.V(t, len(fx.hosting.GetBranchCalls())).Equal(0)
	gt.V(t, len(fx.clock.Sleeps())).Equal(0)

	stored := fx.stored(t, out.DeploymentID)
	gt.V(t, stored.Status).Equal(types.DeploymentStatusProvisioning)
}

func TestDeployPartialSuccess(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageRunning})
	uc := fx.newUseCase()

	out := gt.R1(uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
		Poll: model.PollOptions{
			Interval:                time.Second,
			PartialSuccessThreshold: 3,
			MaxAttempts:             10,
		},
	})).NoError(t)

	gt.V(t, out.Outcome).Equal(model.DeployOutcomePartialSuccess)
	gt.V(t, out.Status).Equal(types.DeploymentStatusDeploying)
	gt.V(t, out.Attempts).Equal(3)
	gt.True(t, out.Message != "")

	stored := fx.stored(t, out.DeploymentID)
	gt.V(t, stored.Status).Equal(types.DeploymentStatusDeploying)
}

func TestDeployTimeout(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageRunning})
	uc := fx.newUseCase()

	out := gt.R1(uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
		Poll: model.PollOptions{
			Interval:                time.Second,
			PartialSuccessThreshold: 3,
			MaxAttempts:             6,
			ContinueAfterPartial:    true,
		},
	})).NoError(t)

	gt.V(t, out.Outcome).Equal(model.DeployOutcomeTimeout)
	gt.V(t, out.Status).Equal(types.DeploymentStatusDeploying)
	gt.V(t, out.Attempts).Equal(6)
	gt.V(t, out.URL).Equal("https://main.d123.amplifyapp.com")
	gt.True(t, out.Message != "")
	gt.V(t, len(fx.hosting.GetBranchCalls())).Equal(6)

	stored := fx.stored(t, out.DeploymentID)
	gt.V(t, stored.Status).Equal(types.DeploymentStatusDeploying)
	gt.V(t, stored.URL).Equal("https://main.d123.amplifyapp.com")
}

func TestDeployBuildFailure(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageRunning, types.StageFailed})
	uc := fx.newUseCase()

	_, err := uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
	})
	gt.True(t, errors.Is(err, types.ErrBuildFailed))

	failure := model.NewFailure(err)
	gt.V(t, failure.Kind).Equal("BuildFailed")
	gt.V(t, failure.Details["app_id"]).Equal(types.AppID("d123"))

	deployments := gt.R1(fx.repo.List(context.Background(), 10)).NoError(t)
	gt.V(t, len(deployments)).Equal(1)
	gt.V(t, deployments[0].Status).Equal(types.DeploymentStatus("FAILED"))
}

func TestDeployTokenFromSecretStore(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageProduction})
	store := secret.NewMemory()
	gt.NoError(t, store.Set(context.Background(), usecase.SecretNameGitHubToken, string(classicToken)))
	uc := fx.newUseCase(infra.WithSecretStore(store))

	gt.R1(uc.Deploy(context.Background(), &model.DeployInput{ProjectPath: fx.path})).NoError(t)
	gt.V(t, fx.github.GetAuthenticatedUserCalls()[0].Token).Equal(classicToken)
	gt.V(t, fx.hosting.CreateAppCalls()[0].Input.Token).Equal(classicToken)
}

func TestDeployWithoutToken(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageProduction})
	uc := fx.newUseCase(infra.WithSecretStore(secret.NewMemory()))

	_, err := uc.Deploy(context.Background(), &model.DeployInput{ProjectPath: fx.path})
	gt.True(t, errors.Is(err, types.ErrInvalidInput))
	gt.V(t, len(fx.hosting.CreateAppCalls())).Equal(0)
}

func TestDeployWithEnvVars(t *testing.T) {
	fx := newDeployFixture(t, []types.Stage{types.StageProduction})
	uc := fx.newUseCase()

	out := gt.R1(uc.Deploy(context.Background(), &model.DeployInput{
		ProjectPath: fx.path,
		Token:       classicToken,
		SyncEnvVars: true,
	})).NoError(t)

	gt.V(t, fx.hosting.CreateAppCalls()[0].Input.Environment).Equal(map[string]string{"API_KEY": "abcd1234efgh"})
	gt.V(t, out.EnvSync.AppID).Equal(types.AppID("d123"))
	gt.V(t, out.EnvSync.VariablesSynced).Equal(1)
	gt.V(t, out.EnvSync.Excluded).Equal([]string{"NODE_ENV"})
}

func TestDeployStopsBeforeProvisioning(t *testing.T) {
	t.Run("credential failure", func(t *testing.T) {
		fx := newDeployFixture(t, []types.Stage{types.StageProduction})
		fx.github.GetAuthenticatedUserFunc = func(ctx context.Context, token types.GitHubToken) (*model.GitHubIdentity, error) {
			return nil, githubAPIError(401, "Bad credentials")
		}
		uc := fx.newUseCase()

		_, err := uc.Deploy(context.Background(), &model.DeployInput{ProjectPath: fx.path, Token: classicToken})
		gt.True(t, errors.Is(err, types.ErrInvalidOrExpiredToken))
		gt.V(t, len(fx.hosting.CreateAppCalls())).Equal(0)

		deployments := gt.R1(fx.repo.List(context.Background(), 10)).NoError(t)
		gt.V(t, len(deployments)).Equal(0)
	})

	t.Run("project without version control", func(t *testing.T) {
		fx := newDeployFixture(t, []types.Stage{types.StageProduction})
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"index.html": "<html></html>"})
		uc := fx.newUseCase()

		_, err := uc.Deploy(context.Background(), &model.DeployInput{ProjectPath: dir, Token: classicToken})
		gt.True(t, errors.Is(err, types.ErrNoVersionControl))
		gt.V(t, countGitHubCalls(fx.github)).Equal(0)
	})

	t.Run("unknown framework override", func(t *testing.T) {
		fx := newDeployFixture(t, []types.Stage{types.StageProduction})
		uc := fx.newUseCase()

		_, err := uc.Deploy(context.Background(), &model.DeployInput{ProjectPath: fx.path, Token: classicToken, Framework: "svelte"})
		gt.True(t, errors.Is(err, types.ErrInvalidInput))
	})
}

func TestAppNameFromPath(t *testing.T) {
	testCases := map[string]struct {
		path string
		want types.AppName
		err  bool
	}{
		"plain":        {path: "/work/my-site", want: "my-site"},
		"upper case":   {path: "/work/MySite", want: "mysite"},
		"spaces":       {path: "/work/My Cool Site", want: "my-cool-site"},
		"trim symbols": {path: "/work/_site_", want: "site"},
		"only symbols": {path: "/work/___", err: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := usecase.AppNameFromPathForTest(tc.path)
			if tc.err {
				gt.True(t, errors.Is(err, types.ErrInvalidInput))
				return
			}
			gt.NoError(t, err)
			gt.V(t, got).Equal(tc.want)
		})
	}
}
