package buildspec_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra/buildspec"
	"github.com/m-mizutani/gt"
	"gopkg.in/yaml.v3"
)

func TestEnsureGeneratesFile(t *testing.T) {
	dir := t.TempDir()
	gen := buildspec.New()

	content := gt.R1(gen.Ensure(context.Background(), &model.Project{
		Path:      dir,
		Framework: types.FrameworkReact,
	})).NoError(t)

	written := gt.R1(os.ReadFile(filepath.Join(dir, buildspec.FileName))).NoError(t)
	gt.V(t, string(written)).Equal(content)

	var spec buildspec.Spec
	gt.NoError(t, yaml.Unmarshal(written, &spec))
	gt.V(t, spec.Version).Equal(1)
	gt.V(t, spec.Frontend.Artifacts.BaseDirectory).Equal("build")
	gt.V(t, spec.Frontend.Phases.Build.Commands).Equal([]string{"npm run build"})
}

func TestEnsureKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	existing := "version: 1\nfrontend: {}\n"
	gt.NoError(t, os.WriteFile(filepath.Join(dir, buildspec.FileName), []byte(existing), 0644))

	content := gt.R1(buildspec.New().Ensure(context.Background(), &model.Project{
		Path:      dir,
		Framework: types.FrameworkNextJS,
	})).NoError(t)
	gt.V(t, content).Equal(existing)
}

func TestSpecForStatic(t *testing.T) {
	testCases := map[string]struct {
		files []string
		want  string
	}{
		"html at root":  {files: []string{"index.html"}, want: "/"},
		"html in dist":  {files: []string{"dist/index.html"}, want: "dist"},
		"htm in docs":   {files: []string{"docs/page.htm"}, want: "docs"},
		"public first":  {files: []string{"public/a.html", "dist/b.html"}, want: "public"},
		"nothing found": {files: []string{"README.md"}, want: "/"},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tc.files {
				path := filepath.Join(dir, f)
				gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				gt.NoError(t, os.WriteFile(path, []byte("x"), 0644))
			}

			spec := gt.R1(buildspec.SpecFor(&model.Project{
				Path:      dir,
				Framework: types.FrameworkStatic,
			})).NoError(t)
			gt.V(t, spec.Frontend.Artifacts.BaseDirectory).Equal(tc.want)
			gt.True(t, spec.Frontend.Phases.PreBuild == nil)
		})
	}
}

func TestSpecForUnknownFramework(t *testing.T) {
	_, err := buildspec.SpecFor(&model.Project{Framework: "svelte"})
	gt.True(t, errors.Is(err, types.ErrInvalidInput))
}
