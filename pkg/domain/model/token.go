package model

import (
	"log/slog"

	"github.com/m-mizutani/ampship/pkg/domain/types"
)

// GitHubIdentity is the account a token authenticates as.
type GitHubIdentity struct {
	Login string
	ID    int64
}

// ValidatedToken is a token that passed every credential check.
type ValidatedToken struct {
	Token  types.GitHubToken
	Kind   types.TokenKind
	Login  string
	Scopes []string
}

func (x ValidatedToken) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("token", x.Token.Mask()),
		slog.String("kind", string(x.Kind)),
		slog.String("login", x.Login),
		slog.Any("scopes", x.Scopes),
	)
}
