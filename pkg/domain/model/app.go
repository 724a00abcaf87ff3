package model

import (
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/types"
)

// RemoteApp is the hosting provider's application resource.
type RemoteApp struct {
	ID                   types.AppID
	Name                 types.AppName
	DefaultDomain        string
	Region               types.Region
	Repository           string
	EnvironmentVariables map[string]string
	CreatedAt            time.Time
}

// Branch is a deployable unit of a RemoteApp. Stage is owned by the provider.
type Branch struct {
	Name        types.BranchName
	Stage       types.Stage
	ActiveJobID string
	UpdatedAt   time.Time
}

// BranchURL builds the public URL of a branch served under the app's default domain.
func BranchURL(branch types.BranchName, defaultDomain string) string {
	if defaultDomain == "" {
		return ""
	}
	return "https://" + string(branch) + "." + defaultDomain
}

type CreateAppInput struct {
	Name        types.AppName
	Framework   types.Framework
	Repository  RepositoryLink
	Token       types.GitHubToken
	BuildSpec   string
	Environment map[string]string
}
