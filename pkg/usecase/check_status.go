package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const defaultBranch = types.BranchName("main")

// classifyAppLookupError maps a failed getApp. A missing app is reported as
// AppNotFound together with the apps visible in the region.
func (x *UseCase) classifyAppLookupError(ctx context.Context, hosting interfaces.Hosting, err error, appID types.AppID) error {
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || (apiErr.StatusCode != http.StatusNotFound && apiErr.Code != "NotFoundException") {
		return classifyProviderError(err, "failed to get app", goerr.V("app_id", appID))
	}

	values := []goerr.Option{
		goerr.V("app_id", appID),
		goerr.V("region", hosting.Region()),
	}

	apps, listErr := hosting.ListApps(ctx)
	if listErr != nil {
		logging.From(ctx).Warn("Failed to list apps", slog.Any("error", listErr))
	} else {
		known := make([]string, 0, len(apps))
		for _, app := range apps {
			known = append(known, app.ID.String()+" ("+string(app.Name)+")")
		}
		values = append(values, goerr.V("known_apps", known))
	}

	return goerr.Wrap(types.ErrAppNotFound, "app does not exist in the region", values...)
}

// chooseBranch picks the requested branch, then the branch of the latest
// local deployment record, then main, then the first branch.
func chooseBranch(requested types.BranchName, latest *model.Deployment, branches []*model.Branch) (types.BranchName, error) {
	names := make(map[types.BranchName]bool, len(branches))
	for _, b := range branches {
		names[b.Name] = true
	}

	if requested != "" {
		if !names[requested] {
			return "", goerr.Wrap(types.ErrInvalidInput, "branch does not exist in the app", goerr.V("branch", requested))
		}
		return requested, nil
	}
	if latest != nil && names[latest.Branch] {
		return latest.Branch, nil
	}
	if names[defaultBranch] {
		return defaultBranch, nil
	}
	return branches[0].Name, nil
}

// CheckStatus reads the current stage of an app branch. It only reads from
// the provider and may be called repeatedly. When the stage differs from the
// latest local record of the app, a new revision is appended.
func (x *UseCase) CheckStatus(ctx context.Context, input *model.CheckStatusInput) (*model.CheckStatusOutput, error) {
	if err := input.Normalize(); err != nil {
		return nil, err
	}

	hosting, err := x.clients.HostingFor(ctx, input.Region)
	if err != nil {
		return nil, err
	}

	app, err := hosting.GetApp(ctx, input.AppID)
	if err != nil {
		return nil, x.classifyAppLookupError(ctx, hosting, err, input.AppID)
	}

	branches, err := hosting.ListBranches(ctx, app.ID)
	if err != nil {
		return nil, classifyProviderError(err, "failed to list branches", goerr.V("app_id", app.ID))
	}

	now := x.clients.Clock().Now()
	out := &model.CheckStatusOutput{
		AppID:   app.ID,
		AppName: app.Name,
		Debug: model.StatusDebugInfo{
			DefaultDomain: app.DefaultDomain,
			Region:        hosting.Region(),
			Branches:      make([]types.BranchName, 0, len(branches)),
			CheckedAt:     now,
		},
	}
	for _, b := range branches {
		out.Debug.Branches = append(out.Debug.Branches, b.Name)
	}

	if len(branches) == 0 {
		out.Status = types.StatusFromStage(types.StageNoBranches)
		out.Debug.Stage = types.StageNoBranches
		return out, nil
	}

	latest, err := x.clients.Deployments().FindLatestByApp(ctx, app.ID)
	if err != nil {
		logging.From(ctx).Warn("Failed to read deployment history", slog.Any("error", err))
		latest = nil
	}

	branchName, err := chooseBranch(input.Branch, latest, branches)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to choose branch", goerr.V("app_id", app.ID), goerr.V("branches", out.Debug.Branches))
	}

	branch, err := hosting.GetBranch(ctx, app.ID, branchName)
	if err != nil {
		return nil, classifyProviderError(err, "failed to get branch", goerr.V("app_id", app.ID), goerr.V("branch", branchName))
	}

	out.Branch = branchName
	out.Status = types.StatusFromStage(branch.Stage)
	out.Debug.Stage = branch.Stage
	out.Debug.ActiveJobID = branch.ActiveJobID
	if branch.Stage.IsSuccess() {
		out.URL = model.BranchURL(branchName, app.DefaultDomain)
	}

	if latest != nil && latest.Branch == branchName {
		out.Debug.DeploymentID = latest.ID
		if latest.Status != out.Status {
			if err := x.clients.Deployments().Put(ctx, latest.WithStatus(out.Status, out.URL, now)); err != nil {
				logging.From(ctx).Warn("Failed to record deployment status", slog.Any("error", err), slog.Any("deployment_id", latest.ID))
			}
		}
	}

	return out, nil
}
