package buildspec

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// FileName is the build configuration file read by the hosting provider.
const FileName = "amplify.yml"

type Spec struct {
	Version  int      `yaml:"version"`
	Frontend Frontend `yaml:"frontend"`
}

type Frontend struct {
	Phases    Phases    `yaml:"phases"`
	Artifacts Artifacts `yaml:"artifacts"`
	Cache     *Cache    `yaml:"cache,omitempty"`
}

type Phases struct {
	PreBuild *Commands `yaml:"preBuild,omitempty"`
	Build    Commands  `yaml:"build"`
}

type Commands struct {
	Commands []string `yaml:"commands"`
}

type Artifacts struct {
	BaseDirectory string   `yaml:"baseDirectory"`
	Files         []string `yaml:"files"`
}

type Cache struct {
	Paths []string `yaml:"paths"`
}

func nodeSpec(baseDir string) *Spec {
	return &Spec{
		Version: 1,
		Frontend: Frontend{
			Phases: Phases{
				PreBuild: &Commands{Commands: []string{"npm ci"}},
				Build:    Commands{Commands: []string{"npm run build"}},
			},
			Artifacts: Artifacts{BaseDirectory: baseDir, Files: []string{"**/*"}},
			Cache:     &Cache{Paths: []string{"node_modules/**/*"}},
		},
	}
}

var nodeSpecs = map[types.Framework]*Spec{
	types.FrameworkNextJS:  nodeSpec(".next"),
	types.FrameworkReact:   nodeSpec("build"),
	types.FrameworkVue:     nodeSpec("dist"),
	types.FrameworkAngular: nodeSpec("dist"),
}

// staticAssetDirs mirrors the directories accepted by project validation.
var staticAssetDirs = []string{"public", "dist", "build", "docs"}

func staticSpec(baseDir string) *Spec {
	return &Spec{
		Version: 1,
		Frontend: Frontend{
			Phases: Phases{
				Build: Commands{Commands: []string{"echo \"no build step\""}},
			},
			Artifacts: Artifacts{BaseDirectory: baseDir, Files: []string{"**/*"}},
		},
	}
}

// SpecFor returns the build spec for a framework. For static projects the
// artifact directory is the first of root, public, dist, build, docs that
// holds an HTML file.
func SpecFor(project *model.Project) (*Spec, error) {
	if project.Framework == types.FrameworkStatic {
		return staticSpec(findStaticRoot(project.Path)), nil
	}

	spec, ok := nodeSpecs[project.Framework]
	if !ok {
		return nil, goerr.Wrap(types.ErrInvalidInput, "no build spec for framework", goerr.V("framework", project.Framework))
	}
	return spec, nil
}

func findStaticRoot(path string) string {
	if hasHTML(path) {
		return "/"
	}
	for _, dir := range staticAssetDirs {
		if hasHTML(filepath.Join(path, dir)) {
			return dir
		}
	}
	return "/"
}

func hasHTML(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".html", ".htm":
			return true
		}
	}
	return false
}

func Render(spec *Spec) (string, error) {
	raw, err := yaml.Marshal(spec)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal build spec")
	}
	return string(raw), nil
}

type Generator struct{}

var _ interfaces.BuildSpec = (*Generator)(nil)

func New() *Generator {
	return &Generator{}
}

// Ensure returns the content of amplify.yml in the project root, writing it
// from the framework table first when the file does not exist.
func (x *Generator) Ensure(ctx context.Context, project *model.Project) (string, error) {
	path := filepath.Join(project.Path, FileName)

	raw, err := os.ReadFile(path)
	if err == nil {
		logging.From(ctx).Debug("Use existing build spec", slog.String("path", path))
		return string(raw), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", goerr.Wrap(err, "failed to read build spec", goerr.V("path", path))
	}

	spec, err := SpecFor(project)
	if err != nil {
		return "", err
	}
	content, err := Render(spec)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write build spec", goerr.V("path", path))
	}

	logging.From(ctx).Info("Generated build spec",
		slog.String("path", path),
		slog.Any("framework", project.Framework),
	)
	return content, nil
}
