package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/infra"
	"github.com/m-mizutani/ampship/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestValidateProject(t *testing.T) {
	testCases := map[string]struct {
		files     map[string]string
		override  types.Framework
		framework types.Framework
		err       error
	}{
		"static site with html in dist": {
			files:     map[string]string{"dist/index.html": "<html></html>"},
			framework: types.FrameworkStatic,
		},
		"static site with html at root": {
			files:     map[string]string{"index.htm": "<html></html>"},
			framework: types.FrameworkStatic,
		},
		"static site without html": {
			files: map[string]string{"README.md": "# site"},
			err:   types.ErrNoRenderableAssets,
		},
		"manifest without framework is static": {
			files: map[string]string{
				"package.json":  `{"name":"site","dependencies":{"lodash":"^4"}}`,
				"public/a.html": "<html></html>",
			},
			framework: types.FrameworkStatic,
		},
		"react project": {
			files:     map[string]string{"package.json": `{"dependencies":{"react":"^18","react-dom":"^18"}}`},
			framework: types.FrameworkReact,
		},
		"next project wins over react": {
			files:     map[string]string{"package.json": `{"dependencies":{"next":"14","react":"^18"}}`},
			framework: types.FrameworkNextJS,
		},
		"vue in devDependencies": {
			files:     map[string]string{"package.json": `{"devDependencies":{"vue":"^3"}}`},
			framework: types.FrameworkVue,
		},
		"angular project": {
			files:     map[string]string{"package.json": `{"dependencies":{"@angular/core":"^17"}}`},
			framework: types.FrameworkAngular,
		},
		"react app with express dev server is allowed": {
			files:     map[string]string{"package.json": `{"dependencies":{"react":"^18","express":"^4"}}`},
			framework: types.FrameworkReact,
		},
		"cli only dependency": {
			files: map[string]string{"package.json": `{"dependencies":{"commander":"^11"}}`},
			err:   types.ErrUnsupportedProjectKind,
		},
		"backend server": {
			files: map[string]string{"package.json": `{"dependencies":{"fastify":"^4"}}`},
			err:   types.ErrUnsupportedProjectKind,
		},
		"bin field": {
			files: map[string]string{"package.json": `{"bin":{"tool":"./cli.js"},"dependencies":{"react":"^18"}}`},
			err:   types.ErrUnsupportedProjectKind,
		},
		"server keyword": {
			files: map[string]string{"package.json": `{"keywords":["Server"],"dependencies":{"vue":"^3"}}`},
			err:   types.ErrUnsupportedProjectKind,
		},
		"override without manifest": {
			files:    map[string]string{"index.html": "<html></html>"},
			override: types.FrameworkReact,
			err:      types.ErrMissingManifest,
		},
		"override to static": {
			files: map[string]string{
				"package.json":     `{"dependencies":{"react":"^18"}}`,
				"build/index.html": "<html></html>",
			},
			override:  types.FrameworkStatic,
			framework: types.FrameworkStatic,
		},
		"broken manifest": {
			files: map[string]string{"package.json": `{"dependencies":`},
			err:   types.ErrInvalidInput,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			dir := newProject(t, tc.files)
			uc := usecase.New(infra.New())

			project, err := uc.ValidateProject(context.Background(), dir, tc.override)
			if tc.err != nil {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, tc.err))
				return
			}

			gt.NoError(t, err)
			gt.V(t, project.Framework).Equal(tc.framework)
			gt.V(t, project.HasVersionControl).Equal(true)
			gt.V(t, project.FrameworkOverridden).Equal(tc.override != "")
		})
	}
}

func TestValidateProjectVersionControl(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New())

	t.Run("directory without git", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, map[string]string{"index.html": "<html></html>"})

		_, err := uc.ValidateProject(ctx, dir, "")
		gt.True(t, errors.Is(err, types.ErrNoVersionControl))
	})

	t.Run("subdirectory of a git repository", func(t *testing.T) {
		root := t.TempDir()
		initGitRepo(t, root, "")
		writeFiles(t, root, map[string]string{"web/index.html": "<html></html>"})

		project := gt.R1(uc.ValidateProject(ctx, root+"/web", "")).NoError(t)
		gt.V(t, project.HasVersionControl).Equal(true)
	})

	t.Run("asset check comes before version control", func(t *testing.T) {
		dir := t.TempDir()
		_, err := uc.ValidateProject(ctx, dir, "")
		gt.True(t, errors.Is(err, types.ErrNoRenderableAssets))
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := uc.ValidateProject(ctx, "/not/exist/project", "")
		gt.True(t, errors.Is(err, types.ErrInvalidInput))
	})

	t.Run("project is read only", func(t *testing.T) {
		dir := newProject(t, map[string]string{"index.html": "<html></html>"})
		before := gt.R1(os.ReadDir(dir)).NoError(t)
		_ = gt.R1(uc.ValidateProject(ctx, dir, "")).NoError(t)
		after := gt.R1(os.ReadDir(dir)).NoError(t)
		gt.V(t, len(after)).Equal(len(before))
	})
}
