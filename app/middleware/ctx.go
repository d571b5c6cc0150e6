package middleware

import (
	"context"
	jwtutil "worksuite/app/jwt"
)

func GetClaims(ctx context.Context) *jwtutil.Claims {
	if v := ctx.Value(ClaimsKey); v != nil {
		if c, ok := v.(*jwtutil.Claims); ok {
			return c
		}
	}
	return nil
}

// OwnerID returns the caller's id or nil when unauthenticated.
func OwnerID(ctx context.Context) *string {
	if c := GetClaims(ctx); c != nil {
		id := c.ID
		return &id
	}
	return nil
}
