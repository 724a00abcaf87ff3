package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ampship/pkg/controller/server"
	"github.com/m-mizutani/ampship/pkg/domain/mock"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus"
)

type toolResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *model.Failure  `json:"error"`
}

func invoke(t *testing.T, srv *server.Server, tool, body string) (int, *toolResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tools/"+tool, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	var resp toolResponse
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	gt.V(t, rec.Header().Get("Content-Type")).Equal("application/json")
	return rec.Code, &resp
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})

	t.Run("GET /tools lists tools", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		req := httptest.NewRequest(http.MethodGet, "/tools/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		var resp struct {
			Result []string `json:"result"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		gt.V(t, resp.Result).Equal([]string{"checkStatus", "deploy", "listDeployments", "syncEnvVars"})
	})

	t.Run("unknown tool", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		code, resp := invoke(t, srv, "destroy", `{}`)
		gt.V(t, code).Equal(http.StatusNotFound)
		gt.V(t, resp.Error.Kind).Equal("UnknownTool")
	})
}

func TestDeployTool(t *testing.T) {
	t.Run("arguments are passed to usecase", func(t *testing.T) {
		var called *model.DeployInput
		uc := &mock.UseCaseMock{
			DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error) {
				called = input
				return &model.DeployOutput{
					AppID:   "d123",
					URL:     "https://main.d123.amplifyapp.com",
					Status:  types.DeploymentStatusProvisioning,
					Outcome: model.DeployOutcomeBackground,
				}, nil
			},
		}
		srv := server.New(uc)

		code, resp := invoke(t, srv, "deploy", `{"projectPath":"/work/site","branch":"dev","syncEnvVars":true,"background":true,"poll":{"intervalSeconds":2,"maxAttempts":10}}`)
		gt.V(t, code).Equal(http.StatusOK)

		gt.V(t, called.ProjectPath).Equal("/work/site")
		gt.V(t, called.Branch).Equal(types.BranchName("dev"))
		gt.True(t, called.SyncEnvVars)
		gt.True(t, called.Background)
		gt.V(t, called.Poll.Interval).Equal(2 * time.Second)
		gt.V(t, called.Poll.MaxAttempts).Equal(10)
		gt.NoError(t, called.Poll.Normalize())
		gt.V(t, called.Poll.PartialSuccessThreshold).Equal(36)
		gt.False(t, called.Poll.DisablePartial)

		var out model.DeployOutput
		gt.NoError(t, json.Unmarshal(resp.Result, &out))
		gt.V(t, out.AppID).Equal(types.AppID("d123"))
		gt.V(t, out.Outcome).Equal(model.DeployOutcomeBackground)
	})

	t.Run("zero partial threshold disables the tier", func(t *testing.T) {
		var called *model.DeployInput
		uc := &mock.UseCaseMock{
			DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error) {
				called = input
				return &model.DeployOutput{AppID: "d123", Outcome: model.DeployOutcomeTimeout}, nil
			},
		}
		srv := server.New(uc)

		code, _ := invoke(t, srv, "deploy", `{"projectPath":"/work/site","poll":{"partialSuccessThreshold":0}}`)
		gt.V(t, code).Equal(http.StatusOK)
		gt.NoError(t, called.Poll.Normalize())
		gt.True(t, called.Poll.DisablePartial)
		gt.False(t, called.Poll.PartialEnabled())
	})

	t.Run("taxonomy error is returned as failure", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error) {
				return nil, goerr.Wrap(types.ErrMissingRequiredScope, "token is missing a required scope",
					goerr.V("required_scope", "admin:repo_hook"),
				)
			},
		}
		srv := server.New(uc)

		code, resp := invoke(t, srv, "deploy", `{"projectPath":"/work/site"}`)
		gt.V(t, code).Equal(http.StatusUnprocessableEntity)
		gt.V(t, resp.Error.Kind).Equal("MissingRequiredScope")
		gt.V(t, resp.Error.Details["required_scope"]).Equal("admin:repo_hook")
	})

	t.Run("unknown argument is rejected", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc)

		code, resp := invoke(t, srv, "deploy", `{"path":"/work/site"}`)
		gt.V(t, code).Equal(http.StatusBadRequest)
		gt.V(t, resp.Error.Kind).Equal("InvalidInput")
		gt.V(t, len(uc.DeployCalls())).Equal(0)
	})
}

func TestCheckStatusTool(t *testing.T) {
	uc := &mock.UseCaseMock{
		CheckStatusFunc: func(ctx context.Context, input *model.CheckStatusInput) (*model.CheckStatusOutput, error) {
			if input.AppID == "missing" {
				return nil, goerr.Wrap(types.ErrAppNotFound, "app does not exist in the region",
					goerr.V("known_apps", []string{"d1 (one)"}),
				)
			}
			return &model.CheckStatusOutput{AppID: input.AppID, AppName: "site", Status: "PRODUCTION"}, nil
		},
	}
	srv := server.New(uc)

	code, resp := invoke(t, srv, "checkStatus", `{"appId":"d123"}`)
	gt.V(t, code).Equal(http.StatusOK)
	var out model.CheckStatusOutput
	gt.NoError(t, json.Unmarshal(resp.Result, &out))
	gt.V(t, out.Status).Equal(types.DeploymentStatus("PRODUCTION"))

	code, resp = invoke(t, srv, "checkStatus", `{"appId":"missing"}`)
	gt.V(t, code).Equal(http.StatusNotFound)
	gt.V(t, resp.Error.Kind).Equal("AppNotFound")
	gt.V(t, resp.Error.Details["known_apps"]).Equal([]any{"d1 (one)"})
}

func TestSyncEnvVarsTool(t *testing.T) {
	uc := &mock.UseCaseMock{
		SyncEnvVarsFunc: func(ctx context.Context, input *model.SyncEnvVarsInput) (*model.SyncEnvVarsOutput, error) {
			return &model.SyncEnvVarsOutput{
				AppID:           input.AppID,
				FilesFound:      []string{".env"},
				VariablesSynced: 2,
				Errors:          []string{},
			}, nil
		},
	}
	srv := server.New(uc)

	code, resp := invoke(t, srv, "syncEnvVars", `{"projectPath":"/work/site","appId":"d123","region":"eu-west-1"}`)
	gt.V(t, code).Equal(http.StatusOK)
	gt.V(t, uc.SyncEnvVarsCalls()[0].Input.Region).Equal(types.Region("eu-west-1"))

	var out model.SyncEnvVarsOutput
	gt.NoError(t, json.Unmarshal(resp.Result, &out))
	gt.V(t, out.VariablesSynced).Equal(2)
}

func TestListDeploymentsTool(t *testing.T) {
	uc := &mock.UseCaseMock{
		ListDeploymentsFunc: func(ctx context.Context, input *model.ListDeploymentsInput) ([]*model.Deployment, error) {
			return []*model.Deployment{{ID: "dep-1", AppID: "d123"}}, nil
		},
	}
	srv := server.New(uc)

	t.Run("empty body is accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tools/listDeployments", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, uc.ListDeploymentsCalls()[0].Input.Limit).Equal(0)
	})

	t.Run("limit is passed", func(t *testing.T) {
		code, resp := invoke(t, srv, "listDeployments", `{"limit":5}`)
		gt.V(t, code).Equal(http.StatusOK)
		gt.V(t, uc.ListDeploymentsCalls()[1].Input.Limit).Equal(5)

		var out []*model.Deployment
		gt.NoError(t, json.Unmarshal(resp.Result, &out))
		gt.V(t, out[0].ID).Equal(types.DeploymentID("dep-1"))
	})
}

func TestMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	uc := &mock.UseCaseMock{
		DeployFunc: func(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error) {
			return &model.DeployOutput{Outcome: model.DeployOutcomePartialSuccess}, nil
		},
		CheckStatusFunc: func(ctx context.Context, input *model.CheckStatusInput) (*model.CheckStatusOutput, error) {
			return nil, goerr.Wrap(types.ErrInvalidInput, "app id is required")
		},
	}
	srv := server.New(uc, server.WithRegistry(registry))

	invoke(t, srv, "deploy", `{"projectPath":"/work/site"}`)
	invoke(t, srv, "checkStatus", `{}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)

	gt.V(t, rec.Code).Equal(http.StatusOK)
	body := rec.Body.String()
	gt.S(t, body).Contains(`ampship_server_tool_invocations_total{result="ok",tool="deploy"} 1`)
	gt.S(t, body).Contains(`ampship_server_tool_invocations_total{result="InvalidInput",tool="checkStatus"} 1`)
	gt.S(t, body).Contains(`ampship_server_deploy_outcomes_total{outcome="partial_success"} 1`)
}

func TestNilBody(t *testing.T) {
	uc := &mock.UseCaseMock{
		CheckStatusFunc: func(ctx context.Context, input *model.CheckStatusInput) (*model.CheckStatusOutput, error) {
			return nil, goerr.Wrap(types.ErrInvalidInput, "app id is required")
		},
	}
	srv := server.New(uc)

	req := httptest.NewRequest(http.MethodPost, "/tools/checkStatus", bytes.NewReader(nil))
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	gt.V(t, rec.Code).Equal(http.StatusBadRequest)
}
