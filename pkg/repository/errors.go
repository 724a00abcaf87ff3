package repository

import (
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultCapacity is the number of deployments a history store keeps.
const DefaultCapacity = 50

var (
	ErrNotFound     = goerr.New("not found")
	ErrInvalidInput = goerr.New("invalid input")
)

// ValidateDeployment checks the fields every store needs to index a revision.
func ValidateDeployment(deployment *model.Deployment) error {
	if deployment == nil {
		return goerr.Wrap(ErrInvalidInput, "deployment is nil")
	}
	if deployment.ID == "" {
		return goerr.Wrap(ErrInvalidInput, "deployment ID is empty")
	}
	if deployment.CreatedAt.IsZero() {
		return goerr.Wrap(ErrInvalidInput, "deployment created_at is zero", goerr.V("id", deployment.ID))
	}
	return nil
}
