package model

import (
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/types"
)

// Deployment is one revision of a deploy invocation record. Records are never
// edited; a status change is stored as a newer revision with the same ID.
type Deployment struct {
	ID          types.DeploymentID     `json:"id" firestore:"id"`
	AppID       types.AppID            `json:"app_id" firestore:"app_id"`
	AppName     types.AppName          `json:"app_name" firestore:"app_name"`
	Branch      types.BranchName       `json:"branch" firestore:"branch"`
	Region      types.Region           `json:"region" firestore:"region"`
	Framework   types.Framework        `json:"framework" firestore:"framework"`
	ProjectPath string                 `json:"project_path" firestore:"project_path"`
	Status      types.DeploymentStatus `json:"status" firestore:"status"`
	URL         string                 `json:"url" firestore:"url"`
	CreatedAt   time.Time              `json:"created_at" firestore:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at" firestore:"updated_at"`
}

// WithStatus returns a new revision carrying status and url.
func (x Deployment) WithStatus(status types.DeploymentStatus, url string, now time.Time) *Deployment {
	next := x
	next.Status = status
	if url != "" {
		next.URL = url
	}
	next.UpdatedAt = now
	return &next
}
