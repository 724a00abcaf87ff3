package usecase

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

var ptnAppNameInvalid = regexp.MustCompile(`[^a-z0-9-]+`)

// appNameFromPath derives an app name from the project directory name.
func appNameFromPath(projectPath string) (types.AppName, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve project path", goerr.V("path", projectPath))
	}

	name := ptnAppNameInvalid.ReplaceAllString(strings.ToLower(filepath.Base(abs)), "-")
	name = strings.Trim(name, "-")
	if name == "" {
		return "", goerr.Wrap(types.ErrInvalidInput, "app name cannot be derived from project path, set it explicitly", goerr.V("path", projectPath))
	}
	return types.AppName(name), nil
}

func (x *UseCase) resolveToken(ctx context.Context, token types.GitHubToken) (types.GitHubToken, error) {
	if token != "" {
		return token, nil
	}

	if store := x.clients.Secrets(); store != nil {
		stored, err := store.Get(ctx, SecretNameGitHubToken)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read GitHub token from secret store")
		}
		if stored != "" {
			return types.GitHubToken(stored), nil
		}
	}

	return "", goerr.Wrap(types.ErrInvalidInput, "GitHub token is not configured",
		goerr.V("secret_name", SecretNameGitHubToken),
	)
}

func (x *UseCase) recordDeployment(ctx context.Context, deployment *model.Deployment) {
	if err := x.clients.Deployments().Put(ctx, deployment); err != nil {
		logging.From(ctx).Warn("Failed to record deployment",
			slog.Any("error", err),
			slog.Any("deployment_id", deployment.ID),
			slog.Any("status", deployment.Status),
		)
	}
}

// Deploy validates the project and token, provisions the app, branch and
// first build, records the deployment and, unless Background is set, polls
// until the build settles, crosses the partial-success threshold or times out.
func (x *UseCase) Deploy(ctx context.Context, input *model.DeployInput) (*model.DeployOutput, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	project, err := x.ValidateProject(ctx, input.ProjectPath, input.Framework)
	if err != nil {
		return nil, err
	}

	buildSpec, err := x.clients.BuildSpec().Ensure(ctx, project)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to prepare build spec", goerr.V("path", project.Path))
	}

	repo, err := resolveRepositoryLink(project.Path)
	if err != nil {
		return nil, err
	}

	token, err := x.resolveToken(ctx, input.Token)
	if err != nil {
		return nil, err
	}

	if _, err := x.ValidateCredential(ctx, token, repo); err != nil {
		return nil, err
	}

	appName := input.AppName
	if appName == "" {
		if appName, err = appNameFromPath(project.Path); err != nil {
			return nil, err
		}
	}

	var envSync *model.SyncEnvVarsOutput
	var environment map[string]string
	if input.SyncEnvVars {
		src, out := loadEnvVars(ctx, project.Path)
		kept := x.filterEnvVars(src, out)
		out.VariablesSynced = kept.Len()
		environment = kept.Map()
		envSync = out
	}

	provisioned, err := x.ProvisionApp(ctx, &model.ProvisionInput{
		Name:        appName,
		Framework:   project.Framework,
		Repository:  *repo,
		Token:       token,
		Branch:      input.Branch,
		Region:      input.Region,
		BuildSpec:   buildSpec,
		Environment: environment,
	})
	if err != nil {
		return nil, err
	}
	app := provisioned.App
	if envSync != nil {
		envSync.AppID = app.ID
	}

	now := x.clients.Clock().Now()
	tentativeURL := model.BranchURL(input.Branch, app.DefaultDomain)
	deployment := &model.Deployment{
		ID:          types.NewDeploymentID(),
		AppID:       app.ID,
		AppName:     app.Name,
		Branch:      input.Branch,
		Region:      input.Region,
		Framework:   project.Framework,
		ProjectPath: project.Path,
		Status:      types.DeploymentStatusProvisioning,
		URL:         tentativeURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	x.recordDeployment(ctx, deployment)

	output := &model.DeployOutput{
		DeploymentID: deployment.ID,
		AppID:        app.ID,
		AppName:      app.Name,
		Branch:       input.Branch,
		Region:       input.Region,
		Framework:    project.Framework,
		URL:          tentativeURL,
		Status:       deployment.Status,
		EnvSync:      envSync,
	}

	if input.Background {
		output.Outcome = model.DeployOutcomeBackground
		output.Message = "build started, check progress with the status operation"
		return output, nil
	}

	result, err := x.PollStatus(ctx, &model.PollInput{
		Region:        input.Region,
		AppID:         app.ID,
		Branch:        input.Branch,
		DefaultDomain: app.DefaultDomain,
		Options:       input.Poll,
	})
	if err != nil {
		switch {
		case errors.Is(err, types.ErrBuildFailed):
			x.recordDeployment(ctx, deployment.WithStatus(types.StatusFromStage(types.StageFailed), "", x.clients.Clock().Now()))
		case errors.Is(err, types.ErrBuildCancelled):
			x.recordDeployment(ctx, deployment.WithStatus(types.StatusFromStage(types.StageCancelling), "", x.clients.Clock().Now()))
		}
		return nil, goerr.Wrap(err, "deployment did not complete",
			goerr.V("app_id", app.ID),
			goerr.V("deployment_id", deployment.ID),
		)
	}

	output.Attempts = result.Attempts
	output.URL = result.URL
	switch result.Outcome {
	case model.PollOutcomeSettled:
		output.Outcome = model.DeployOutcomeSettled
		output.Status = types.StatusFromStage(result.Stage)
		if !result.Live {
			output.Message = "build succeeded, the branch is not marked as production yet"
		}
	case model.PollOutcomePartialSuccess:
		output.Outcome = model.DeployOutcomePartialSuccess
		output.Status = types.DeploymentStatusDeploying
		output.Message = "build is still running, check progress with the status operation"
	case model.PollOutcomeTimeout:
		output.Outcome = model.DeployOutcomeTimeout
		output.Status = types.DeploymentStatusDeploying
		output.Message = "polling attempts exhausted, check progress with the status operation"
	}

	x.recordDeployment(ctx, deployment.WithStatus(output.Status, output.URL, x.clients.Clock().Now()))

	logging.From(ctx).Info("Deploy finished",
		slog.Any("app_id", app.ID),
		slog.Any("outcome", output.Outcome),
		slog.Any("status", output.Status),
		slog.String("url", output.URL),
		slog.Int("attempts", output.Attempts),
	)
	return output, nil
}
