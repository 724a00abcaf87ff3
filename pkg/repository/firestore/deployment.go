package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionDeployment = "deployment"
	collectionRevision   = "revision"
)

// deploymentRepository keeps every revision under
// deployment/{id}/revision/{auto} and mirrors the latest one on
// deployment/{id} for listing. The shared store is not pruned.
type deploymentRepository struct {
	client *firestore.Client
}

func (r *deploymentRepository) Put(ctx context.Context, deployment *model.Deployment) error {
	if err := repository.ValidateDeployment(deployment); err != nil {
		return err
	}

	docRef := r.client.Collection(collectionDeployment).Doc(deployment.ID.String())
	revRef := docRef.Collection(collectionRevision).NewDoc()

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(revRef, deployment); err != nil {
			return err
		}
		return tx.Set(docRef, deployment)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put deployment", goerr.V("id", deployment.ID))
	}

	return nil
}

func (r *deploymentRepository) Get(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	snap, err := r.client.Collection(collectionDeployment).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get deployment",
			goerr.V("id", id),
		)
	}

	var d model.Deployment
	if err := snap.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to decode deployment",
			goerr.V("id", id),
		)
	}

	return &d, nil
}

func (r *deploymentRepository) query(ctx context.Context, q firestore.Query) ([]*model.Deployment, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var deployments []*model.Deployment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate deployments")
		}

		var d model.Deployment
		if err := snap.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deployment",
				goerr.V("docID", snap.Ref.ID),
			)
		}
		deployments = append(deployments, &d)
	}

	return deployments, nil
}

// FindLatestByApp requires a composite index on (app_id, created_at desc).
func (r *deploymentRepository) FindLatestByApp(ctx context.Context, appID types.AppID) (*model.Deployment, error) {
	q := r.client.Collection(collectionDeployment).
		Where("app_id", "==", appID.String()).
		OrderBy("created_at", firestore.Desc).
		Limit(1)

	deployments, err := r.query(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find deployment", goerr.V("app_id", appID))
	}
	if len(deployments) == 0 {
		return nil, nil
	}
	return deployments[0], nil
}

func (r *deploymentRepository) List(ctx context.Context, limit int) ([]*model.Deployment, error) {
	if limit <= 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "limit must be positive", goerr.V("limit", limit))
	}

	q := r.client.Collection(collectionDeployment).
		OrderBy("created_at", firestore.Desc).
		Limit(limit)

	deployments, err := r.query(ctx, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list deployments", goerr.V("limit", limit))
	}
	return deployments, nil
}
