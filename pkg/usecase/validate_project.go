package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const manifestFileName = "package.json"

// frameworkDeps is checked in order; meta-frameworks come before the
// libraries they are built on.
var frameworkDeps = []struct {
	dep       string
	framework types.Framework
}{
	{"next", types.FrameworkNextJS},
	{"@angular/core", types.FrameworkAngular},
	{"nuxt", types.FrameworkVue},
	{"vue", types.FrameworkVue},
	{"react", types.FrameworkReact},
}

// serverOrCLIDeps mark a manifest as a backend or command-line package when
// no front-end framework is present.
var serverOrCLIDeps = []string{
	"commander",
	"yargs",
	"oclif",
	"@oclif/core",
	"meow",
	"inquirer",
	"express",
	"fastify",
	"koa",
	"hapi",
	"@hapi/hapi",
	"@nestjs/core",
	"@modelcontextprotocol/sdk",
}

var serverOrCLIKeywords = []string{"cli", "server"}

// renderableDirs are the conventional output directories searched for HTML in
// static projects.
var renderableDirs = []string{"public", "dist", "build", "docs"}

func readManifest(projectPath string) (*model.PackageManifest, error) {
	path := filepath.Join(projectPath, manifestFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to read manifest", goerr.V("path", path))
	}

	var manifest model.PackageManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput, "failed to parse manifest", goerr.V("path", path), goerr.V("error", err.Error()))
	}
	return &manifest, nil
}

func detectFramework(manifest *model.PackageManifest) types.Framework {
	if manifest == nil {
		return types.FrameworkStatic
	}
	for _, fd := range frameworkDeps {
		if manifest.HasDependency(fd.dep) {
			return fd.framework
		}
	}
	return types.FrameworkStatic
}

// serverOrCLIReason returns why the manifest describes a non-hostable
// package, or an empty string.
func serverOrCLIReason(manifest *model.PackageManifest, framework types.Framework) string {
	if manifest == nil {
		return ""
	}
	if manifest.Bin != nil {
		return "bin field"
	}
	for _, kw := range manifest.Keywords {
		for _, target := range serverOrCLIKeywords {
			if strings.EqualFold(kw, target) {
				return "keyword " + kw
			}
		}
	}
	if framework != types.FrameworkStatic {
		return ""
	}
	for _, dep := range serverOrCLIDeps {
		if manifest.HasDependency(dep) {
			return "dependency " + dep
		}
	}
	return ""
}

func hasRenderableAssets(projectPath string) bool {
	dirs := []string{projectPath}
	for _, d := range renderableDirs {
		dirs = append(dirs, filepath.Join(projectPath, d))
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".html", ".htm":
				return true
			}
		}
	}
	return false
}

// ValidateProject inspects projectPath without modifying it. A non-empty
// override replaces the detected framework.
func (x *UseCase) ValidateProject(ctx context.Context, projectPath string, override types.Framework) (*model.Project, error) {
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidInput, "project path is not accessible", goerr.V("path", projectPath), goerr.V("error", err.Error()))
	}
	if !info.IsDir() {
		return nil, goerr.Wrap(types.ErrInvalidInput, "project path is not a directory", goerr.V("path", projectPath))
	}

	manifest, err := readManifest(projectPath)
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Path:        projectPath,
		Framework:   detectFramework(manifest),
		HasManifest: manifest != nil,
	}

	if reason := serverOrCLIReason(manifest, project.Framework); reason != "" {
		return nil, goerr.Wrap(types.ErrUnsupportedProjectKind, "project is a command-line tool or backend server",
			goerr.V("path", projectPath),
			goerr.V("reason", reason),
		)
	}

	if override != "" {
		project.Framework = override
		project.FrameworkOverridden = true
	}

	if project.Framework != types.FrameworkStatic && !project.HasManifest {
		return nil, goerr.Wrap(types.ErrMissingManifest, "framework project requires "+manifestFileName,
			goerr.V("path", projectPath),
			goerr.V("framework", project.Framework),
		)
	}

	if project.Framework == types.FrameworkStatic && !hasRenderableAssets(projectPath) {
		return nil, goerr.Wrap(types.ErrNoRenderableAssets, "no HTML file found in project root or output directories",
			goerr.V("path", projectPath),
			goerr.V("searched", append([]string{"."}, renderableDirs...)),
		)
	}

	if _, err := openGitRepository(projectPath); err != nil {
		return nil, err
	}
	project.HasVersionControl = true

	logging.From(ctx).Debug("Project validated",
		slog.String("path", projectPath),
		slog.Any("framework", project.Framework),
		slog.Bool("overridden", project.FrameworkOverridden),
	)
	return project, nil
}
