package model

import (
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func normalize(v any) error {
	if err := defaults.Set(v); err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "failed to set default values", goerr.V("error", err.Error()))
	}
	if err := validate.Struct(v); err != nil {
		return goerr.Wrap(types.ErrInvalidInput, "validation failed", goerr.V("error", err.Error()))
	}
	return nil
}

// PollOptions bounds the status poller. A zero PartialSuccessThreshold takes
// the default. The partial-success tier is off when DisablePartial is set or
// the threshold is not below MaxAttempts.
type PollOptions struct {
	Interval                time.Duration `default:"5s" validate:"gt=0"`
	PartialSuccessThreshold int           `default:"36"`
	MaxAttempts             int           `default:"120" validate:"gt=0"`
	DisablePartial          bool
	// ContinueAfterPartial keeps waiting after the partial-success boundary
	// instead of returning to the caller.
	ContinueAfterPartial bool
}

func (x *PollOptions) Normalize() error {
	return normalize(x)
}

func (x PollOptions) PartialEnabled() bool {
	return !x.DisablePartial && x.PartialSuccessThreshold > 0 && x.PartialSuccessThreshold < x.MaxAttempts
}

type DeployInput struct {
	ProjectPath string            `validate:"required"`
	AppName     types.AppName
	Branch      types.BranchName  `default:"main" validate:"required"`
	Region      types.Region      `default:"us-east-1" validate:"required"`
	Framework   types.Framework
	Token       types.GitHubToken `masq:"secret"`
	SyncEnvVars bool
	// Background returns right after provisioning without polling.
	Background bool
	Poll       PollOptions
}

func (x *DeployInput) Normalize() error {
	if err := normalize(x); err != nil {
		return err
	}
	if x.Framework != "" && !x.Framework.Valid() {
		return goerr.Wrap(types.ErrInvalidInput, "unknown framework", goerr.V("framework", x.Framework))
	}
	return x.Poll.Normalize()
}

type DeployOutcome string

const (
	DeployOutcomeSettled        DeployOutcome = "settled"
	DeployOutcomePartialSuccess DeployOutcome = "partial_success"
	DeployOutcomeTimeout        DeployOutcome = "timeout"
	DeployOutcomeBackground     DeployOutcome = "background"
)

type DeployOutput struct {
	DeploymentID types.DeploymentID     `json:"deployment_id"`
	AppID        types.AppID            `json:"app_id"`
	AppName      types.AppName          `json:"app_name"`
	Branch       types.BranchName       `json:"branch"`
	Region       types.Region           `json:"region"`
	Framework    types.Framework        `json:"framework"`
	URL          string                 `json:"url"`
	Status       types.DeploymentStatus `json:"status"`
	Outcome      DeployOutcome          `json:"outcome"`
	Attempts     int                    `json:"attempts,omitempty"`
	Message      string                 `json:"message,omitempty"`
	EnvSync      *SyncEnvVarsOutput     `json:"env_sync,omitempty"`
}

type ProvisionInput struct {
	Name        types.AppName    `validate:"required"`
	Framework   types.Framework
	Repository  RepositoryLink
	Token       types.GitHubToken `masq:"secret"`
	Branch      types.BranchName `validate:"required"`
	Region      types.Region
	BuildSpec   string
	Environment map[string]string
}

func (x *ProvisionInput) Validate() error {
	if err := validate.Struct(x); err != nil {
		return goerr.Wrap(types.ErrInvalidInput, "validation failed", goerr.V("error", err.Error()))
	}
	return x.Repository.Validate()
}

type ProvisionResult struct {
	App   *RemoteApp
	JobID string
}

type PollInput struct {
	Region        types.Region
	AppID         types.AppID
	Branch        types.BranchName
	DefaultDomain string
	Options       PollOptions
}

type PollOutcome string

const (
	PollOutcomeSettled        PollOutcome = "settled"
	PollOutcomePartialSuccess PollOutcome = "partial_success"
	PollOutcomeTimeout        PollOutcome = "timeout"
)

// PollResult is a success-shaped polling outcome. Build failures are errors.
type PollResult struct {
	Outcome  PollOutcome
	AppID    types.AppID
	Branch   types.BranchName
	Stage    types.Stage
	URL      string
	Live     bool
	Attempts int
}

type CheckStatusInput struct {
	AppID  types.AppID `validate:"required"`
	Branch types.BranchName
	// Region selects the hosting client; empty uses the default region.
	Region types.Region
}

func (x *CheckStatusInput) Normalize() error {
	return normalize(x)
}

type StatusDebugInfo struct {
	Stage         types.Stage        `json:"stage"`
	DefaultDomain string             `json:"default_domain"`
	Region        types.Region       `json:"region,omitempty"`
	Branches      []types.BranchName `json:"branches"`
	ActiveJobID   string             `json:"active_job_id,omitempty"`
	DeploymentID  types.DeploymentID `json:"deployment_id,omitempty"`
	CheckedAt     time.Time          `json:"checked_at"`
}

type CheckStatusOutput struct {
	AppID   types.AppID            `json:"app_id"`
	AppName types.AppName          `json:"app_name"`
	Status  types.DeploymentStatus `json:"status"`
	Branch  types.BranchName       `json:"branch,omitempty"`
	URL     string                 `json:"url,omitempty"`
	Debug   StatusDebugInfo        `json:"debug_info"`
}

type SyncEnvVarsInput struct {
	ProjectPath string      `validate:"required"`
	AppID       types.AppID `validate:"required"`
	Region      types.Region
}

func (x *SyncEnvVarsInput) Normalize() error {
	return normalize(x)
}

type EnvVarPreview struct {
	Key    string `json:"key"`
	Masked string `json:"masked"`
	Type   string `json:"type"`
}

type SyncEnvVarsOutput struct {
	AppID           types.AppID     `json:"app_id,omitempty"`
	FilesFound      []string        `json:"files_found"`
	VariablesSynced int             `json:"variables_synced"`
	ExcludedCount   int             `json:"excluded_count"`
	Excluded        []string        `json:"excluded,omitempty"`
	Preview         []EnvVarPreview `json:"preview,omitempty"`
	Errors          []string        `json:"errors"`
}

type ListDeploymentsInput struct {
	Limit int `default:"20" validate:"gt=0"`
}

func (x *ListDeploymentsInput) Normalize() error {
	return normalize(x)
}
