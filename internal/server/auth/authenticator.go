package auth

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/roomstats/internal/common"
	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/server/failure"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/accesstokens"
)

// TokenRepositories binds the token store to a connection.
// repomanager.RepositoryManager satisfies it.
type TokenRepositories interface {
	AccessTokens(db dbx.Querier) accesstokens.Repository
}

// Authenticator is the only place that declares a request authorized.
type Authenticator struct {
	repos TokenRepositories
}

func NewAuthenticator(repos TokenRepositories) *Authenticator {
	return &Authenticator{repos: repos}
}

// Authenticate returns nil when h carries a known bearer token. Otherwise it
// returns *failure.Unauthorized for credential problems or *failure.Db when
// the lookup itself failed. q is the connection already leased for the
// request; exactly one existence query is issued on it.
func (a *Authenticator) Authenticate(ctx context.Context, q dbx.Querier, h http.Header) error {
	id, err := ExtractToken(h)
	if err != nil {
		return failure.NewUnauthorized("bad credential", err)
	}

	ok, err := a.repos.AccessTokens(q).Exists(ctx, id)
	if err != nil {
		return failure.NewDb("token lookup", err)
	}
	if !ok {
		return failure.NewUnauthorized("token lookup", common.ErrUnknownToken)
	}

	return nil
}
