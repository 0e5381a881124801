//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type TokenService interface {
	Decode(ctx context.Context, token string) (JwtData, error)
}

type RevocationService interface {
	Check(ctx context.Context, jwtData JwtData) error
}

type CatalogueService interface {
	Resolve(ctx context.Context, id string) (ResourcePolicy, error)
}

type AuthorizationService interface {
	Authorize(ctx context.Context, method, endpoint string, jwtData JwtData) bool
}

type IntrospectService interface {
	Introspect(ctx context.Context, authCtx AuthContext, jwtData *JwtData) (ClaimBundle, error)
}

type MeteringService interface {
	ValidateAuditParams(params map[string]string) error
	Record(ctx context.Context, log AuditLog) error
}
