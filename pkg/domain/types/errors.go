package types

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")
	ErrInvalidInput  = goerr.New("invalid input")

	// Local project preconditions
	ErrNoVersionControl         = goerr.New("project is not under version control")
	ErrMissingManifest          = goerr.New("dependency manifest is missing")
	ErrNoRenderableAssets       = goerr.New("no renderable assets found")
	ErrUnsupportedProjectKind   = goerr.New("project is not a hostable web project")
	ErrRepositoryLinkUnresolved = goerr.New("repository link cannot be resolved from git remote")

	// Credential and authorization
	ErrIncompatibleTokenKind   = goerr.New("token kind is not supported by the hosting provider")
	ErrInvalidOrExpiredToken   = goerr.New("token is invalid or expired")
	ErrInsufficientPermissions = goerr.New("token lacks permissions to list repositories")
	ErrMissingRequiredScope    = goerr.New("token is missing a required scope")
	ErrRepositoryNotAccessible = goerr.New("repository is not accessible with the token")
	ErrWebhookPermissionDenied = goerr.New("token cannot manage webhooks on the repository")

	// Provisioning
	ErrAppQuotaExceeded       = goerr.New("hosting provider app quota exceeded")
	ErrAuthRejectedByProvider = goerr.New("hosting provider rejected the repository token")
	ErrRepositoryRejected     = goerr.New("hosting provider cannot resolve the repository")
	ErrProviderError          = goerr.New("hosting provider error")
	ErrAppNotFound            = goerr.New("app not found")

	// Remote build
	ErrBuildFailed    = goerr.New("build failed")
	ErrBuildCancelled = goerr.New("build cancelled")
)

type errorKind struct {
	name string
	err  error
}

// Ordered from most to least specific; the first match wins.
var errorKinds = []errorKind{
	{"NoVersionControl", ErrNoVersionControl},
	{"MissingManifest", ErrMissingManifest},
	{"NoRenderableAssets", ErrNoRenderableAssets},
	{"UnsupportedProjectKind", ErrUnsupportedProjectKind},
	{"RepositoryLinkUnresolved", ErrRepositoryLinkUnresolved},
	{"IncompatibleTokenKind", ErrIncompatibleTokenKind},
	{"InvalidOrExpiredToken", ErrInvalidOrExpiredToken},
	{"InsufficientPermissions", ErrInsufficientPermissions},
	{"MissingRequiredScope", ErrMissingRequiredScope},
	{"RepositoryNotAccessible", ErrRepositoryNotAccessible},
	{"WebhookPermissionDenied", ErrWebhookPermissionDenied},
	{"AppQuotaExceeded", ErrAppQuotaExceeded},
	{"AuthRejectedByProvider", ErrAuthRejectedByProvider},
	{"RepositoryRejected", ErrRepositoryRejected},
	{"AppNotFound", ErrAppNotFound},
	{"ProviderError", ErrProviderError},
	{"BuildFailed", ErrBuildFailed},
	{"BuildCancelled", ErrBuildCancelled},
	{"InvalidInput", ErrInvalidInput},
	{"InvalidOption", ErrInvalidOption},
}

// ErrorKindOf returns the taxonomy name of err, or "Internal" when err does
// not wrap any known kind.
func ErrorKindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}
