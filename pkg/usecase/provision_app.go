package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// authRejectionHints appear in provider messages when the provider cannot use
// the repository token, usually because its GitHub integration is not
// installed for the account or region.
var authRejectionHints = []string{"token", "credential", "oauth", "installation", "unauthorized"}

// classifyProviderError maps a hosting provider fault onto the provisioning
// taxonomy. Errors that do not carry an APIError are returned unchanged.
func classifyProviderError(err error, msg string, values ...goerr.Option) error {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		return goerr.Wrap(err, msg, values...)
	}

	values = append(values,
		goerr.V("provider_code", apiErr.Code),
		goerr.V("provider_status", apiErr.StatusCode),
		goerr.V("provider_request_id", apiErr.RequestID),
		goerr.V("provider_message", apiErr.Message),
	)

	message := strings.ToLower(apiErr.Message)
	switch {
	case apiErr.Code == "LimitExceededException":
		return goerr.Wrap(types.ErrAppQuotaExceeded, msg, values...)

	case apiErr.Code == "UnauthorizedException" || apiErr.StatusCode == http.StatusUnauthorized:
		return goerr.Wrap(types.ErrAuthRejectedByProvider, msg, values...)

	case apiErr.Code == "BadRequestException" && containsAny(message, authRejectionHints):
		return goerr.Wrap(types.ErrAuthRejectedByProvider, msg, values...)

	case apiErr.Code == "BadRequestException" && strings.Contains(message, "repository"):
		return goerr.Wrap(types.ErrRepositoryRejected, msg, values...)

	default:
		return goerr.Wrap(types.ErrProviderError, msg, values...)
	}
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ProvisionApp creates the app, its branch and the first build job in that
// order. The calls are not transactional: when the branch or job step fails
// the app is left in place and the error carries its app_id with orphaned=true.
func (x *UseCase) ProvisionApp(ctx context.Context, input *model.ProvisionInput) (*model.ProvisionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hosting, err := x.clients.HostingFor(ctx, input.Region)
	if err != nil {
		return nil, err
	}

	app, err := hosting.CreateApp(ctx, &model.CreateAppInput{
		Name:        input.Name,
		Framework:   input.Framework,
		Repository:  input.Repository,
		Token:       input.Token,
		BuildSpec:   input.BuildSpec,
		Environment: input.Environment,
	})
	if err != nil {
		return nil, classifyProviderError(err, "failed to create app",
			goerr.V("app_name", input.Name),
			goerr.V("repository", input.Repository.FullName()),
			goerr.V("region", hosting.Region()),
		)
	}

	logger := logging.From(ctx).With(slog.Any("app_id", app.ID), slog.Any("branch", input.Branch))
	logger.Info("App created", slog.Any("app_name", app.Name), slog.String("default_domain", app.DefaultDomain))

	orphaned := []goerr.Option{
		goerr.V("app_id", app.ID),
		goerr.V("branch", input.Branch),
		goerr.V("orphaned", true),
	}

	if err := hosting.CreateBranch(ctx, app.ID, input.Branch); err != nil {
		return nil, classifyProviderError(err, "failed to create branch, the app was created and is left in place", orphaned...)
	}

	jobID, err := hosting.StartBuild(ctx, app.ID, input.Branch)
	if err != nil {
		return nil, classifyProviderError(err, "failed to start build, the app and branch were created and are left in place", orphaned...)
	}

	logger.Info("Build started", slog.String("job_id", jobID))

	return &model.ProvisionResult{
		App:   app,
		JobID: jobID,
	}, nil
}
