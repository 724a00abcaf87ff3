package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/repository"
	"github.com/m-mizutani/ampship/pkg/repository/memory"
	"github.com/m-mizutani/ampship/pkg/repository/sqlite"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

const (
	HistoryBackendSQLite    = "sqlite"
	HistoryBackendMemory    = "memory"
	HistoryBackendFirestore = "firestore"
)

type History struct {
	backend   string
	path      string
	capacity  int
	firestore Firestore
}

func (x *History) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "history-backend",
			Usage:       "Deployment history backend [sqlite|memory|firestore]",
			Category:    "History",
			Value:       HistoryBackendSQLite,
			Destination: &x.backend,
			Sources:     cli.EnvVars("AMPSHIP_HISTORY_BACKEND"),
		},
		&cli.StringFlag{
			Name:        "history-path",
			Usage:       "SQLite file of deployment history (default: ~/.ampship/history.db)",
			Category:    "History",
			Destination: &x.path,
			Sources:     cli.EnvVars("AMPSHIP_HISTORY_PATH"),
		},
		&cli.IntFlag{
			Name:        "history-capacity",
			Usage:       "Number of deployments kept in history",
			Category:    "History",
			Value:       repository.DefaultCapacity,
			Destination: &x.capacity,
			Sources:     cli.EnvVars("AMPSHIP_HISTORY_CAPACITY"),
		},
	}
	return append(flags, x.firestore.Flags()...)
}

// DefaultHistoryPath returns ~/.ampship/history.db.
func DefaultHistoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, ".ampship", "history.db"), nil
}

func (x *History) NewRepository(ctx context.Context) (interfaces.DeploymentRepository, error) {
	if x.capacity <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "history capacity must be positive", goerr.V("capacity", x.capacity))
	}

	switch x.backend {
	case HistoryBackendMemory:
		return memory.New(memory.WithCapacity(x.capacity)), nil

	case HistoryBackendFirestore:
		if !x.firestore.Enabled() {
			return nil, goerr.Wrap(types.ErrInvalidOption, "firestore project ID is required for firestore backend")
		}
		return x.firestore.NewRepository(ctx)

	case HistoryBackendSQLite, "":
		path := x.path
		if path == "" {
			p, err := DefaultHistoryPath()
			if err != nil {
				return nil, err
			}
			path = p
		}
		return sqlite.New(ctx, path, sqlite.WithCapacity(x.capacity))

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unknown history backend", goerr.V("backend", x.backend))
	}
}

func (x History) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("path", x.path),
		slog.Int("capacity", x.capacity),
		slog.Any("firestore", x.firestore),
	)
}
