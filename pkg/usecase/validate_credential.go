package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// impliedScopes lists the classic OAuth scopes granted implicitly by a parent scope.
var impliedScopes = map[string][]string{
	"repo":            {"repo:status", "repo_deployment", "public_repo", "repo:invite", "security_events"},
	"admin:repo_hook": {"write:repo_hook", "read:repo_hook"},
	"write:repo_hook": {"read:repo_hook"},
	"admin:org":       {"write:org", "read:org"},
	"write:org":       {"read:org"},
}

func hasScope(granted []string, required string) bool {
	for _, s := range granted {
		if s == required || slices.Contains(impliedScopes[s], required) {
			return true
		}
	}
	return false
}

// apiStatusCode returns the HTTP status of a remote API fault, or 0.
func apiStatusCode(err error) int {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func tokenValues(token types.GitHubToken) []goerr.Option {
	return []goerr.Option{
		goerr.V("token_kind", token.Kind()),
		goerr.V("token", token.Mask()),
	}
}

// ValidateCredential runs the credential checks in order and stops at the
// first failure: token format, identity, repository listing capability,
// required scope, and, when repo is given, repository read and webhook
// management on that repository.
func (x *UseCase) ValidateCredential(ctx context.Context, token types.GitHubToken, repo *model.RepositoryLink) (*model.ValidatedToken, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidInput, "GitHub token is not configured")
	}

	kind := token.Kind()
	switch kind {
	case types.TokenKindClassic:
	case types.TokenKindFineGrained:
		return nil, goerr.Wrap(types.ErrIncompatibleTokenKind, "fine-grained personal access tokens are not supported, use a classic token", tokenValues(token)...)
	default:
		return nil, goerr.Wrap(types.ErrIncompatibleTokenKind, "unrecognized token prefix, use a classic personal access token (ghp_)", tokenValues(token)...)
	}

	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	identity, err := gh.GetAuthenticatedUser(ctx, token)
	if err != nil {
		if apiStatusCode(err) == http.StatusUnauthorized {
			return nil, goerr.Wrap(types.ErrInvalidOrExpiredToken, "GitHub rejected the token", append(tokenValues(token), goerr.V("error", err.Error()))...)
		}
		return nil, goerr.Wrap(err, "failed to get authenticated user", tokenValues(token)...)
	}

	scopes, err := gh.ListRepositoriesForToken(ctx, token)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInsufficientPermissions, "token cannot list repositories",
			append(tokenValues(token),
				goerr.V("login", identity.Login),
				goerr.V("status", apiStatusCode(err)),
				goerr.V("error", err.Error()),
			)...)
	}

	if !hasScope(scopes, x.requiredScope) {
		return nil, goerr.Wrap(types.ErrMissingRequiredScope, "token is missing the "+x.requiredScope+" scope",
			append(tokenValues(token),
				goerr.V("login", identity.Login),
				goerr.V("required_scope", x.requiredScope),
				goerr.V("actual_scopes", scopes),
			)...)
	}

	if repo != nil {
		if err := x.validateRepositoryAccess(ctx, token, *repo); err != nil {
			return nil, err
		}
	}

	validated := &model.ValidatedToken{
		Token:  token,
		Kind:   kind,
		Login:  identity.Login,
		Scopes: scopes,
	}
	logging.From(ctx).Info("GitHub token validated", slog.Any("token", validated))
	return validated, nil
}

func (x *UseCase) validateRepositoryAccess(ctx context.Context, token types.GitHubToken, repo model.RepositoryLink) error {
	gh := x.clients.GitHub()

	if err := gh.GetRepository(ctx, repo, token); err != nil {
		switch apiStatusCode(err) {
		case http.StatusNotFound, http.StatusForbidden:
			return goerr.Wrap(types.ErrRepositoryNotAccessible, "token cannot read the repository",
				append(tokenValues(token),
					goerr.V("repository", repo.FullName()),
					goerr.V("status", apiStatusCode(err)),
				)...)
		}
		return goerr.Wrap(err, "failed to get repository", goerr.V("repository", repo.FullName()))
	}

	if err := gh.ListWebhooks(ctx, repo, token); err != nil {
		switch apiStatusCode(err) {
		case http.StatusForbidden, http.StatusNotFound:
			return goerr.Wrap(types.ErrWebhookPermissionDenied, "token cannot manage webhooks on the repository, admin access to the repository is required",
				append(tokenValues(token),
					goerr.V("repository", repo.FullName()),
					goerr.V("status", apiStatusCode(err)),
				)...)
		}
		return goerr.Wrap(err, "failed to list webhooks", goerr.V("repository", repo.FullName()))
	}

	return nil
}
