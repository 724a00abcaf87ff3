package usecase

import (
	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const originRemote = "origin"

func openGitRepository(projectPath string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, goerr.Wrap(types.ErrNoVersionControl, "failed to open git repository",
			goerr.V("path", projectPath),
			goerr.V("error", err.Error()),
		)
	}
	return repo, nil
}

// resolveRepositoryLink reads the GitHub repository from the origin remote.
func resolveRepositoryLink(projectPath string) (*model.RepositoryLink, error) {
	repo, err := openGitRepository(projectPath)
	if err != nil {
		return nil, err
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		return nil, goerr.Wrap(types.ErrRepositoryLinkUnresolved, "failed to get remote origin",
			goerr.V("path", projectPath),
			goerr.V("error", err.Error()),
		)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, goerr.Wrap(types.ErrRepositoryLinkUnresolved, "no remote URL found", goerr.V("path", projectPath))
	}

	return model.ParseRepositoryURL(urls[0])
}
