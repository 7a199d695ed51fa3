// Package auth decides whether a request may write. A request is authorized
// when it carries "Authorization: Bearer <uuid>" and that uuid is present in
// the access token store.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/roomstats/internal/common"
	"github.com/google/uuid"
)

// canonicalTokenLen is the length of the 8-4-4-4-12 hyphenated form.
const canonicalTokenLen = 36

// ExtractToken pulls the bearer credential out of h and parses it.
// It returns common.ErrMissingAuthHeader, common.ErrInvalidAuthScheme or
// common.ErrInvalidToken; callers report all of them the same way.
func ExtractToken(h http.Header) (uuid.UUID, error) {
	values := h.Values(common.AuthorizationHeaderName)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return uuid.Nil, common.ErrMissingAuthHeader
	}
	if len(values) > 1 {
		return uuid.Nil, fmt.Errorf("%w: multiple authorization headers", common.ErrInvalidAuthScheme)
	}

	scheme, credential, ok := strings.Cut(strings.TrimSpace(values[0]), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return uuid.Nil, common.ErrInvalidAuthScheme
	}

	return ParseToken(strings.TrimSpace(credential))
}

// ParseToken accepts only the canonical hyphenated UUID form, in either case.
// The braced, urn: and hyphen-less forms uuid.Parse would allow are rejected.
func ParseToken(s string) (uuid.UUID, error) {
	if len(s) != canonicalTokenLen {
		return uuid.Nil, common.ErrInvalidToken
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return id, nil
}
