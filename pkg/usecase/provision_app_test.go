package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/ampship/pkg/domain/mock"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func newProvisionHosting() *mock.HostingMock {
	return &mock.HostingMock{
		RegionFunc: func() types.Region { return "us-east-1" },
		CreateAppFunc: func(ctx context.Context, input *model.CreateAppInput) (*model.RemoteApp, error) {
			return &model.RemoteApp{
				ID:            "d123",
				Name:          input.Name,
				DefaultDomain: "d123.amplifyapp.com",
				Region:        "us-east-1",
			}, nil
		},
		CreateBranchFunc: func(ctx context.Context, appID types.AppID, branch types.BranchName) error {
			return nil
		},
		StartBuildFunc: func(ctx context.Context, appID types.AppID, branch types.BranchName) (string, error) {
			return "1", nil
		},
	}
}

func provisionInput() *model.ProvisionInput {
	return &model.ProvisionInput{
		Name:       "my-site",
		Framework:  types.FrameworkReact,
		Repository: *testRepo,
		Token:      classicToken,
		Branch:     "main",
		BuildSpec:  "version: 1\n",
	}
}

func TestProvisionApp(t *testing.T) {
	hosting := newProvisionHosting()
	uc := usecase.New(infra.New(infra.WithHosting(hosting)))

	result := gt.R1(uc.ProvisionApp(context.Background(), provisionInput())).NoError(t)
	gt.V(t, result.App.ID).Equal(types.AppID("d123"))
	gt.V(t, result.JobID).Equal("1")

	gt.V(t, len(hosting.CreateAppCalls())).Equal(1)
	created := hosting.CreateAppCalls()[0].Input
	gt.V(t, created.Repository.URL).Equal("https://github.com/octocat/my-site")
	gt.V(t, created.Token).Equal(classicToken)
	gt.V(t, created.BuildSpec).Equal("version: 1\n")

	gt.V(t, hosting.CreateBranchCalls()[0].AppID).Equal(types.AppID("d123"))
	gt.V(t, hosting.CreateBranchCalls()[0].Branch).Equal(types.BranchName("main"))
	gt.V(t, len(hosting.StartBuildCalls())).Equal(1)
}

func TestProvisionAppErrorTaxonomy(t *testing.T) {
	testCases := map[string]struct {
		err  error
		want error
	}{
		"quota": {
			err:  amplifyAPIError(http.StatusTooManyRequests, "LimitExceededException", "apps limit reached"),
			want: types.ErrAppQuotaExceeded,
		},
		"unauthorized": {
			err:  amplifyAPIError(http.StatusUnauthorized, "UnauthorizedException", "not authorized"),
			want: types.ErrAuthRejectedByProvider,
		},
		"token rejected in bad request": {
			err:  amplifyAPIError(http.StatusBadRequest, "BadRequestException", "There was an issue setting up your repository: Bad OAuth token"),
			want: types.ErrAuthRejectedByProvider,
		},
		"repository rejected": {
			err:  amplifyAPIError(http.StatusBadRequest, "BadRequestException", "Repository URL is not valid"),
			want: types.ErrRepositoryRejected,
		},
		"other provider error": {
			err:  amplifyAPIError(http.StatusInternalServerError, "InternalFailureException", "boom"),
			want: types.ErrProviderError,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			hosting := newProvisionHosting()
			hosting.CreateAppFunc = func(ctx context.Context, input *model.CreateAppInput) (*model.RemoteApp, error) {
				return nil, tc.err
			}
			uc := usecase.New(infra.New(infra.WithHosting(hosting)))

			_, err := uc.ProvisionApp(context.Background(), provisionInput())
			gt.True(t, errors.Is(err, tc.want))
			gt.V(t, len(hosting.CreateBranchCalls())).Equal(0)

			failure := model.NewFailure(err)
			gt.V(t, failure.Details["provider_request_id"]).Equal("req-123")
		})
	}
}

func TestProvisionAppLeavesOrphanedApp(t *testing.T) {
	t.Run("branch creation fails", func(t *testing.T) {
		hosting := newProvisionHosting()
		hosting.CreateBranchFunc = func(ctx context.Context, appID types.AppID, branch types.BranchName) error {
			return amplifyAPIError(http.StatusBadRequest, "BadRequestException", "branch exists")
		}
		uc := usecase.New(infra.New(infra.WithHosting(hosting)))

		_, err := uc.ProvisionApp(context.Background(), provisionInput())
		gt.True(t, errors.Is(err, types.ErrProviderError))

		failure := model.NewFailure(err)
		gt.V(t, failure.Details["app_id"]).Equal(types.AppID("d123"))
		gt.V(t, failure.Details["orphaned"]).Equal(true)
		gt.V(t, len(hosting.StartBuildCalls())).Equal(0)
	})

	t.Run("job start fails", func(t *testing.T) {
		hosting := newProvisionHosting()
		hosting.StartBuildFunc = func(ctx context.Context, appID types.AppID, branch types.BranchName) (string, error) {
			return "", amplifyAPIError(http.StatusInternalServerError, "InternalFailureException", "boom")
		}
		uc := usecase.New(infra.New(infra.WithHosting(hosting)))

		_, err := uc.ProvisionApp(context.Background(), provisionInput())
		gt.Error(t, err)
		gt.V(t, model.NewFailure(err).Details["orphaned"]).Equal(true)
	})
}

func TestProvisionAppInvalidInput(t *testing.T) {
	uc := usecase.New(infra.New(infra.WithHosting(newProvisionHosting())))

	input := provisionInput()
	input.Repository = model.RepositoryLink{}
	_, err := uc.ProvisionApp(context.Background(), input)
	gt.True(t, errors.Is(err, types.ErrInvalidInput))
}

func TestClassifyProviderErrorPassesThroughTransportErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := usecase.ClassifyProviderErrorForTest(cause, "failed to create app")
	gt.True(t, errors.Is(err, cause))
	gt.V(t, types.ErrorKindOf(err)).Equal("Internal")
}
