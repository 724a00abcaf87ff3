package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/repository"
	"github.com/m-mizutani/ampship/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS deployment_revisions (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT NOT NULL,
	app_id TEXT NOT NULL,
	app_name TEXT NOT NULL,
	branch TEXT NOT NULL,
	region TEXT NOT NULL,
	framework TEXT NOT NULL,
	project_path TEXT NOT NULL,
	status TEXT NOT NULL,
	url TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_deployment_revisions_id ON deployment_revisions(id);
CREATE INDEX IF NOT EXISTS idx_deployment_revisions_app_id ON deployment_revisions(app_id);
`

// latestRevisions selects the newest revision of every deployment.
const latestRevisions = `
SELECT id, app_id, app_name, branch, region, framework, project_path, status, url, created_at, updated_at
FROM deployment_revisions r
WHERE seq = (SELECT MAX(seq) FROM deployment_revisions WHERE id = r.id)
`

type deploymentRepository struct {
	db       *sql.DB
	capacity int
}

type Option func(*deploymentRepository)

// WithCapacity sets how many deployments are kept.
func WithCapacity(n int) Option {
	return func(x *deploymentRepository) {
		x.capacity = n
	}
}

// New opens (or creates) the history database at path. The parent directory
// is created when missing.
func New(ctx context.Context, path string, options ...Option) (interfaces.DeploymentRepository, error) {
	if path == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "sqlite path is empty")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, goerr.Wrap(err, "failed to create history directory", goerr.V("path", path))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to ping database", goerr.V("path", path))
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		safe.Close(db)
		return nil, goerr.Wrap(err, "failed to create deployment table", goerr.V("path", path))
	}

	repo := &deploymentRepository{
		db:       db,
		capacity: repository.DefaultCapacity,
	}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}

func (r *deploymentRepository) Put(ctx context.Context, deployment *model.Deployment) error {
	if err := repository.ValidateDeployment(deployment); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer safe.Rollback(tx)

	_, err = tx.ExecContext(ctx, `
	INSERT INTO deployment_revisions (id, app_id, app_name, branch, region, framework, project_path, status, url, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		deployment.ID.String(),
		deployment.AppID.String(),
		string(deployment.AppName),
		deployment.Branch.String(),
		deployment.Region.String(),
		deployment.Framework.String(),
		deployment.ProjectPath,
		deployment.Status.String(),
		deployment.URL,
		deployment.CreatedAt.UnixNano(),
		deployment.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to insert deployment revision", goerr.V("id", deployment.ID))
	}

	if r.capacity > 0 {
		// Deployments are ranked by their first revision; the oldest beyond capacity are dropped.
		_, err = tx.ExecContext(ctx, `
		DELETE FROM deployment_revisions WHERE id NOT IN (
			SELECT id FROM deployment_revisions GROUP BY id ORDER BY MIN(seq) DESC LIMIT ?
		)`, r.capacity)
		if err != nil {
			return goerr.Wrap(err, "failed to prune deployment history", goerr.V("capacity", r.capacity))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit deployment revision", goerr.V("id", deployment.ID))
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDeployment(row scanner) (*model.Deployment, error) {
	var (
		d                    model.Deployment
		id, appID, appName   string
		branch, region       string
		framework, status    string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&id, &appID, &appName, &branch, &region, &framework, &d.ProjectPath, &status, &d.URL, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	d.ID = types.DeploymentID(id)
	d.AppID = types.AppID(appID)
	d.AppName = types.AppName(appName)
	d.Branch = types.BranchName(branch)
	d.Region = types.Region(region)
	d.Framework = types.Framework(framework)
	d.Status = types.DeploymentStatus(status)
	d.CreatedAt = time.Unix(0, createdAt).UTC()
	d.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &d, nil
}

func (r *deploymentRepository) Get(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	row := r.db.QueryRowContext(ctx, latestRevisions+` AND id = ?`, id.String())

	d, err := scanDeployment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found", goerr.V("id", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get deployment", goerr.V("id", id))
	}
	return d, nil
}

func (r *deploymentRepository) FindLatestByApp(ctx context.Context, appID types.AppID) (*model.Deployment, error) {
	row := r.db.QueryRowContext(ctx, latestRevisions+` AND app_id = ? ORDER BY created_at DESC, seq DESC LIMIT 1`, appID.String())

	d, err := scanDeployment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to find deployment", goerr.V("app_id", appID))
	}
	return d, nil
}

func (r *deploymentRepository) List(ctx context.Context, limit int) ([]*model.Deployment, error) {
	if limit <= 0 {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "limit must be positive", goerr.V("limit", limit))
	}

	rows, err := r.db.QueryContext(ctx, latestRevisions+` ORDER BY created_at DESC, seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list deployments", goerr.V("limit", limit))
	}
	defer safe.Close(rows)

	var resp []*model.Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan deployment")
		}
		resp = append(resp, d)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate deployments")
	}
	return resp, nil
}
