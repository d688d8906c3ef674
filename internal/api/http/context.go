package http

import (
	"context"
	"errors"

	"fixwize-backend/internal/security"
	"fixwize-backend/internal/service"
)

type contextKey string

const claimsContextKey contextKey = "claims"

var errNoClaims = errors.New("no authenticated member in context")

func withClaims(ctx context.Context, claims *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// claimsFromContext returns the authenticated member's token claims, set by
// the auth middleware.
func claimsFromContext(ctx context.Context) (*security.UserClaims, error) {
	claims, ok := ctx.Value(claimsContextKey).(*security.UserClaims)
	if !ok || claims == nil {
		return nil, errNoClaims
	}
	return claims, nil
}

func actorFromContext(ctx context.Context) (service.Actor, int32, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return service.Actor{}, 0, err
	}
	return service.Actor{ID: claims.UserID, Name: claims.Name}, claims.OrgID, nil
}
