package secret

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// EnvPrefix is prepended to secret names when looking them up in the environment.
const EnvPrefix = "AMPSHIP_"

// Env reads secrets from environment variables. "github-token" is read from
// AMPSHIP_GITHUB_TOKEN.
type Env struct {
	lookup func(string) (string, bool)
}

var _ interfaces.SecretStore = (*Env)(nil)

func NewEnv() *Env {
	return &Env{lookup: os.LookupEnv}
}

// EnvName converts a secret name into its environment variable name.
func EnvName(name string) string {
	return EnvPrefix + strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}

func (x *Env) Get(ctx context.Context, name string) (string, error) {
	v, ok := x.lookup(EnvName(name))
	if !ok {
		return "", nil
	}
	return v, nil
}

func (x *Env) Set(ctx context.Context, name, secret string) error {
	return goerr.Wrap(types.ErrInvalidOption, "environment secret store is read-only", goerr.V("name", name))
}

// Memory keeps secrets in process memory.
type Memory struct {
	mutex   sync.RWMutex
	secrets map[string]string
}

var _ interfaces.SecretStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{secrets: make(map[string]string)}
}

func (x *Memory) Get(ctx context.Context, name string) (string, error) {
	x.mutex.RLock()
	defer x.mutex.RUnlock()
	return x.secrets[name], nil
}

func (x *Memory) Set(ctx context.Context, name, secret string) error {
	if name == "" {
		return goerr.Wrap(types.ErrInvalidInput, "secret name is empty")
	}

	x.mutex.Lock()
	defer x.mutex.Unlock()
	x.secrets[name] = secret
	return nil
}
