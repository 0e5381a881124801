package introspect

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

var tracer = otel.Tracer("introspect")

type service struct {
	token      core.TokenService
	revocation core.RevocationService
	catalogue  core.CatalogueService
	access     core.AuthorizationService
	api        core.Api
	audience   string
}

// NewService creates a new introspect service
func NewService(
	token core.TokenService,
	revocation core.RevocationService,
	catalogue core.CatalogueService,
	access core.AuthorizationService,
	config util.Config,
) core.IntrospectService {
	return &service{
		token:      token,
		revocation: revocation,
		catalogue:  catalogue,
		access:     access,
		api:        core.NewApi(config.Proxy.DxApiBasePath),
		audience:   config.Proxy.Audience,
	}
}

// Introspect runs the full authorization pipeline for one request. The
// steps run strictly in order and the first failure aborts the chain.
// jwtData is populated from the decoded token for the caller's use even
// when a later step fails.
func (s *service) Introspect(ctx context.Context, authCtx core.AuthContext, jwtData *core.JwtData) (core.ClaimBundle, error) {
	ctx, span := tracer.Start(ctx, "Introspect.Service.Introspect")
	defer span.End()

	decoded, err := s.token.Decode(ctx, authCtx.Token)
	if err != nil {
		span.RecordError(err)
		return core.ClaimBundle{}, err
	}
	if jwtData != nil {
		*jwtData = decoded
	}

	if !strings.EqualFold(decoded.Aud, s.audience) {
		slog.WarnContext(ctx, "incorrect audience in token",
			slog.String("aud", decoded.Aud),
			slog.String("sub", decoded.Sub),
		)
		return core.ClaimBundle{}, core.NewErrorInvalidAudience()
	}

	err = s.revocation.Check(ctx, decoded)
	if err != nil {
		span.RecordError(err)
		return core.ClaimBundle{}, err
	}

	// self-issued tokens are trusted for their own resources, and status
	// polling is exempt from catalogue classification
	skipResourceCheck := decoded.SelfIssued() || authCtx.Endpoint == s.api.AsyncStatus

	policy := core.ResourcePolicy{ID: authCtx.ID, AccessPolicy: core.PolicyOpen}
	if !skipResourceCheck {
		policy, err = s.catalogue.Resolve(ctx, authCtx.ID)
		if err != nil {
			span.RecordError(err)
			return core.ClaimBundle{}, err
		}

		if policy.IsOpen() && s.api.IsOpenEndpoint(authCtx.Endpoint) {
			slog.DebugContext(ctx, "open resource on open endpoint, access granted",
				slog.String("id", authCtx.ID),
			)
			return openResourceBundle(decoded), nil
		}
	}

	if !skipResourceCheck && !policy.IsOpen() {
		if !strings.EqualFold(authCtx.ID, decoded.ResourceID()) {
			slog.WarnContext(ctx, "id mismatch between request and token",
				slog.String("requested", authCtx.ID),
				slog.String("token", decoded.ResourceID()),
			)
			return core.ClaimBundle{}, core.NewErrorIDMismatch()
		}
	}

	if decoded.SelfIssued() {
		return selfIssuedBundle(decoded), nil
	}

	if !s.access.Authorize(ctx, authCtx.Method, authCtx.Endpoint, decoded) {
		slog.WarnContext(ctx, "access rules deny request",
			slog.String("sub", decoded.Sub),
			slog.String("endpoint", authCtx.Endpoint),
			slog.String("method", authCtx.Method),
		)
		return core.ClaimBundle{}, core.NewErrorAuthorizationDenied()
	}

	return delegatedBundle(decoded), nil
}

// openResourceBundle carries the id part of the token's iid but no
// expiry, since the decision did not depend on the token's validity
// window beyond decode.
func openResourceBundle(jwtData core.JwtData) core.ClaimBundle {
	return core.ClaimBundle{
		UserID: jwtData.Sub,
		Iid:    jwtData.ResourceID(),
		Role:   jwtData.Role,
		Drl:    jwtData.Drl,
		Did:    jwtData.Did,
		Apd:    jwtData.Apd,
		Cons:   jwtData.Cons,
	}
}

func selfIssuedBundle(jwtData core.JwtData) core.ClaimBundle {
	return core.ClaimBundle{
		UserID: jwtData.Sub,
		Role:   jwtData.Role,
		Drl:    jwtData.Drl,
		Did:    jwtData.Did,
		Apd:    jwtData.Apd,
		Cons:   jwtData.Cons,
		Expiry: formatExpiry(jwtData.Exp),
	}
}

func delegatedBundle(jwtData core.JwtData) core.ClaimBundle {
	return core.ClaimBundle{
		UserID: jwtData.Sub,
		Iid:    jwtData.ResourceID(),
		Role:   jwtData.Role,
		Drl:    jwtData.Drl,
		Did:    jwtData.Did,
		Apd:    jwtData.Apd,
		Cons:   jwtData.Cons,
		Expiry: formatExpiry(jwtData.Exp),
	}
}

func formatExpiry(exp int64) string {
	if exp == 0 {
		return ""
	}
	return time.Unix(exp, 0).Format("2006-01-02T15:04:05")
}
