package access

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
)

var tracer = otel.Tracer("access")

// Strategy evaluates a role's access rules against a request
type Strategy interface {
	IsAuthorized(method, endpoint string, jwtData core.JwtData) bool
}

type service struct {
	strategies map[core.Role]Strategy
}

// NewService creates a new access service
func NewService(api core.Api) core.AuthorizationService {
	return &service{
		strategies: map[core.Role]Strategy{
			core.RoleConsumer: newConsumerStrategy(api),
			core.RoleProvider: newProviderStrategy(),
		},
	}
}

// Authorize evaluates the role-specific access rules of a delegated token.
// Delegate tokens act with the delegated role carried in drl.
func (s *service) Authorize(ctx context.Context, method, endpoint string, jwtData core.JwtData) bool {
	_, span := tracer.Start(ctx, "Access.Service.Authorize")
	defer span.End()

	role := core.RoleFromString(jwtData.Role).Effective(jwtData.Drl)

	strategy, ok := s.strategies[role]
	if !ok {
		slog.WarnContext(ctx, "no access strategy for role",
			slog.String("role", string(role)),
			slog.String("sub", jwtData.Sub),
		)
		return false
	}

	return strategy.IsAuthorized(method, endpoint, jwtData)
}

type rule struct {
	method   string
	endpoint string
}

const (
	classAPI   = "api"
	classAsync = "async"
)

type consumerStrategy struct {
	rules map[string][]rule
}

// newConsumerStrategy builds the per-class rule tables once from the
// deployment's resolved endpoint identities.
func newConsumerStrategy(api core.Api) *consumerStrategy {
	return &consumerStrategy{
		rules: map[string][]rule{
			classAPI: {
				{http.MethodGet, api.Temporal},
				{http.MethodGet, api.ConsumerAudit},
				{http.MethodGet, api.Entities},
				{http.MethodPost, api.PostEntities},
				{http.MethodPost, api.PostTemporal},
			},
			classAsync: {
				{http.MethodGet, api.AsyncSearch},
				{http.MethodGet, api.AsyncStatus},
			},
		},
	}
}

// IsAuthorized succeeds when the request matches a rule of a declared
// access class. Tokens without an access list are denied outright; for
// tokens that carry one, the async rule-set is consulted regardless of
// declaration.
func (s *consumerStrategy) IsAuthorized(method, endpoint string, jwtData core.JwtData) bool {
	if jwtData.Cons == nil || jwtData.Cons.Access == nil {
		return false
	}
	for class, rules := range s.rules {
		if class != classAsync && !jwtData.Cons.HasAccess(class) {
			continue
		}
		for _, r := range rules {
			if r.method == method && r.endpoint == endpoint {
				return true
			}
		}
	}
	return false
}

type providerStrategy struct {
}

func newProviderStrategy() *providerStrategy {
	return &providerStrategy{}
}

// Providers have unconditional access to their own resource server.
func (s *providerStrategy) IsAuthorized(method, endpoint string, jwtData core.JwtData) bool {
	return true
}
