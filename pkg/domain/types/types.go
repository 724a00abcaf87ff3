package types

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type (
	AppID        string
	AppName      string
	BranchName   string
	Region       string
	DeploymentID string
	RequestID    string
)

func (x AppID) String() string        { return string(x) }
func (x BranchName) String() string   { return string(x) }
func (x Region) String() string       { return string(x) }
func (x DeploymentID) String() string { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string { return string(x) }

// Valid reports whether x is a UUID.
func (x RequestID) Valid() bool {
	_, err := uuid.Parse(string(x))
	return err == nil
}

func NewDeploymentID() DeploymentID {
	return DeploymentID(uuid.NewString())
}

// GitHubToken is a raw personal access token. It never appears in logs or
// string formatting; use Mask for display.
type GitHubToken string

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue(x.Mask())
}

func (x GitHubToken) String() string {
	return x.Mask()
}

// Mask keeps the first and last four characters of the token.
func (x GitHubToken) Mask() string {
	if len(x) <= 8 {
		return strings.Repeat("*", len(x))
	}
	return string(x[:4]) + "..." + string(x[len(x)-4:])
}

type TokenKind string

const (
	TokenKindClassic     TokenKind = "classic"
	TokenKindFineGrained TokenKind = "fine-grained"
	TokenKindUnknown     TokenKind = "unknown"
)

const (
	classicTokenPrefix     = "ghp_"
	fineGrainedTokenPrefix = "github_pat_"
)

// Kind infers the token format from its prefix only.
func (x GitHubToken) Kind() TokenKind {
	switch {
	case strings.HasPrefix(string(x), fineGrainedTokenPrefix):
		return TokenKindFineGrained
	case strings.HasPrefix(string(x), classicTokenPrefix):
		return TokenKindClassic
	default:
		return TokenKindUnknown
	}
}
