package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RepositoryLink identifies the GitHub repository a project is published from.
type RepositoryLink struct {
	Owner string
	Name  string
	URL   string
}

func (x RepositoryLink) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x RepositoryLink) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidInput, "repository owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrInvalidInput, "repository name is empty", goerr.V("owner", x.Owner))
	}
	return nil
}

// ParseRepositoryURL parses a git remote URL pointing at github.com. Accepted
// forms are git@github.com:owner/repo(.git), ssh://git@github.com/owner/repo(.git)
// and http(s)://github.com/owner/repo(.git).
func ParseRepositoryURL(remote string) (*RepositoryLink, error) {
	raw := strings.TrimSpace(remote)
	var path string

	if strings.HasPrefix(raw, "git@github.com:") {
		path = strings.TrimPrefix(raw, "git@github.com:")
	} else {
		u, err := url.Parse(raw)
		if err != nil || u.Hostname() != "github.com" {
			return nil, goerr.Wrap(types.ErrRepositoryLinkUnresolved, "remote is not a GitHub repository", goerr.V("url", remote))
		}
		switch u.Scheme {
		case "https", "http", "ssh":
		default:
			return nil, goerr.Wrap(types.ErrRepositoryLinkUnresolved, "unsupported remote URL scheme", goerr.V("url", remote))
		}
		path = strings.TrimPrefix(u.Path, "/")
	}

	path = strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return nil, goerr.Wrap(types.ErrRepositoryLinkUnresolved, "failed to parse GitHub owner/repo from git remote URL", goerr.V("url", remote))
	}

	return &RepositoryLink{
		Owner: ownerRepo[0],
		Name:  ownerRepo[1],
		URL:   "https://github.com/" + ownerRepo[0] + "/" + ownerRepo[1],
	}, nil
}
