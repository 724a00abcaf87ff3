package usecase

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/envvar"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// envFileNames are loaded in this order; later files override earlier ones.
var envFileNames = []string{
	".env",
	".env.production",
	".env.local",
	".env.production.local",
}

func existingEnvFiles(dir string) []string {
	var found []string
	for _, name := range envFileNames {
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && !info.IsDir() {
			found = append(found, name)
		}
	}
	return found
}

// locateEnvFiles returns the directory holding env files and their names.
// The project root is preferred; otherwise the first child directory in
// lexical order that has any of them is used.
func locateEnvFiles(projectPath string) (string, []string, error) {
	if found := existingEnvFiles(projectPath); len(found) > 0 {
		return projectPath, found, nil
	}

	entries, err := os.ReadDir(projectPath)
	if err != nil {
		return "", nil, goerr.Wrap(err, "failed to read project directory", goerr.V("path", projectPath))
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || name == "node_modules" {
			continue
		}
		dir := filepath.Join(projectPath, name)
		if found := existingEnvFiles(dir); len(found) > 0 {
			return dir, found, nil
		}
	}
	return "", nil, nil
}

// loadEnvVars merges every env file found for the project. Parse failures
// are reported in the output and do not stop the remaining files.
func loadEnvVars(ctx context.Context, projectPath string) (*envvar.Set, *model.SyncEnvVarsOutput) {
	out := &model.SyncEnvVarsOutput{
		FilesFound: []string{},
		Errors:     []string{},
	}
	merged := envvar.NewSet()

	dir, files, err := locateEnvFiles(projectPath)
	if err != nil {
		out.Errors = append(out.Errors, err.Error())
		return merged, out
	}
	if len(files) == 0 {
		out.Errors = append(out.Errors, "no environment file found in project root or its subdirectories")
		return merged, out
	}

	for _, name := range files {
		path := filepath.Join(dir, name)
		rel, err := filepath.Rel(projectPath, path)
		if err != nil {
			rel = path
		}
		out.FilesFound = append(out.FilesFound, rel)

		set, err := envvar.ParseFile(path)
		if err != nil {
			logging.From(ctx).Warn("Failed to parse env file", slog.String("path", path), slog.Any("error", err))
			out.Errors = append(out.Errors, rel+": "+err.Error())
			continue
		}
		merged.Merge(set)
	}

	return merged, out
}

// filterEnvVars applies the production filter and fills counts and previews.
func (x *UseCase) filterEnvVars(src *envvar.Set, out *model.SyncEnvVarsOutput) *envvar.Set {
	kept, excluded := x.envFilter.Apply(src)

	out.ExcludedCount = len(excluded)
	out.Excluded = excluded
	out.Preview = make([]model.EnvVarPreview, 0, kept.Len())
	for _, key := range kept.Keys() {
		value, _ := kept.Get(key)
		out.Preview = append(out.Preview, model.EnvVarPreview{
			Key:    key,
			Masked: envvar.MaskValue(value),
			Type:   envvar.InferVarType(key, value),
		})
	}
	return kept
}

// SyncEnvVars pushes the production-safe variables of the project's env
// files to the app. Remote variables not defined locally are kept. Failures
// of single files or of the push are reported in Errors.
func (x *UseCase) SyncEnvVars(ctx context.Context, input *model.SyncEnvVarsInput) (*model.SyncEnvVarsOutput, error) {
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

	src, out := loadEnvVars(ctx, input.ProjectPath)
	out.AppID = app.ID
	kept := x.filterEnvVars(src, out)

	if kept.Len() == 0 {
		logging.From(ctx).Info("No production-safe variable to sync", slog.Any("app_id", app.ID), slog.Int("excluded", out.ExcludedCount))
		return out, nil
	}

	merged := make(map[string]string, len(app.EnvironmentVariables)+kept.Len())
	for k, v := range app.EnvironmentVariables {
		merged[k] = v
	}
	for k, v := range kept.Map() {
		merged[k] = v
	}

	if err := hosting.UpdateAppEnvironment(ctx, app.ID, merged); err != nil {
		pushErr := classifyProviderError(err, "failed to update app environment", goerr.V("app_id", app.ID))
		logging.From(ctx).Error("Failed to push environment variables", slog.Any("error", pushErr))
		out.Errors = append(out.Errors, pushErr.Error())
		return out, nil
	}

	out.VariablesSynced = kept.Len()
	logging.From(ctx).Info("Environment variables synced",
		slog.Any("app_id", app.ID),
		slog.Int("synced", out.VariablesSynced),
		slog.Int("excluded", out.ExcludedCount),
		slog.Any("files", out.FilesFound),
	)
	return out, nil
}
