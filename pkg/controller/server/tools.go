package server

import (
	"net/http"
	"sort"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
)

type toolHandler func(r *http.Request) (any, error)

type toolSet struct {
	handlers map[string]toolHandler
}

func (x *toolSet) lookup(name string) (toolHandler, bool) {
	h, ok := x.handlers[name]
	return h, ok
}

func (x *toolSet) names() []string {
	names := make([]string, 0, len(x.handlers))
	for name := range x.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pollArgs keeps the threshold as a pointer so that an explicit 0 turns the
// partial-success tier off while an omitted one takes the default.
type pollArgs struct {
	IntervalSeconds         int  `json:"intervalSeconds"`
	PartialSuccessThreshold *int `json:"partialSuccessThreshold"`
	MaxAttempts             int  `json:"maxAttempts"`
	ContinueAfterPartial    bool `json:"continueAfterPartial"`
}

func (x pollArgs) options() model.PollOptions {
	opts := model.PollOptions{
		Interval:             time.Duration(x.IntervalSeconds) * time.Second,
		MaxAttempts:          x.MaxAttempts,
		ContinueAfterPartial: x.ContinueAfterPartial,
	}
	if x.PartialSuccessThreshold != nil {
		opts.PartialSuccessThreshold = *x.PartialSuccessThreshold
		opts.DisablePartial = *x.PartialSuccessThreshold <= 0
	}
	return opts
}

type deployArgs struct {
	ProjectPath string            `json:"projectPath"`
	AppName     types.AppName     `json:"appName"`
	Branch      types.BranchName  `json:"branch"`
	Region      types.Region      `json:"region"`
	Framework   types.Framework   `json:"framework"`
	Token       types.GitHubToken `json:"token" masq:"secret"`
	SyncEnvVars bool              `json:"syncEnvVars"`
	Background  bool              `json:"background"`
	Poll        pollArgs          `json:"poll"`
}

type checkStatusArgs struct {
	AppID  types.AppID      `json:"appId"`
	Branch types.BranchName `json:"branch"`
	Region types.Region     `json:"region"`
}

type syncEnvVarsArgs struct {
	ProjectPath string       `json:"projectPath"`
	AppID       types.AppID  `json:"appId"`
	Region      types.Region `json:"region"`
}

type listDeploymentsArgs struct {
	Limit int `json:"limit"`
}

func newToolSet(uc interfaces.UseCase, m *metrics) *toolSet {
	return &toolSet{
		handlers: map[string]toolHandler{
			"deploy": func(r *http.Request) (any, error) {
				var args deployArgs
				if err := decodeJSON(r, &args); err != nil {
					return nil, err
				}

				// A foreground deploy keeps polling and recording history even
				// when the caller disconnects.
				ctx := DetachContext(r.Context())
				out, err := uc.Deploy(ctx, &model.DeployInput{
					ProjectPath: args.ProjectPath,
					AppName:     args.AppName,
					Branch:      args.Branch,
					Region:      args.Region,
					Framework:   args.Framework,
					Token:       args.Token,
					SyncEnvVars: args.SyncEnvVars,
					Background:  args.Background,
					Poll:        args.Poll.options(),
				})
				if err != nil {
					return nil, err
				}
				m.deployed(out.Outcome)
				return out, nil
			},

			"checkStatus": func(r *http.Request) (any, error) {
				var args checkStatusArgs
				if err := decodeJSON(r, &args); err != nil {
					return nil, err
				}
				return uc.CheckStatus(r.Context(), &model.CheckStatusInput{
					AppID:  args.AppID,
					Branch: args.Branch,
					Region: args.Region,
				})
			},

			"syncEnvVars": func(r *http.Request) (any, error) {
				var args syncEnvVarsArgs
				if err := decodeJSON(r, &args); err != nil {
					return nil, err
				}
				return uc.SyncEnvVars(r.Context(), &model.SyncEnvVarsInput{
					ProjectPath: args.ProjectPath,
					AppID:       args.AppID,
					Region:      args.Region,
				})
			},

			"listDeployments": func(r *http.Request) (any, error) {
				var args listDeploymentsArgs
				if err := decodeJSON(r, &args); err != nil {
					return nil, err
				}
				return uc.ListDeployments(r.Context(), &model.ListDeploymentsInput{Limit: args.Limit})
			},
		},
	}
}
