package revocation

import (
	"context"
	"log/slog"
	"time"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
)

type service struct {
	repository Repository
}

// NewService creates a new revocation service
func NewService(repository Repository) core.RevocationService {
	return &service{repository}
}

// Check fails when the issuing client was revoked after the token was
// issued. Self-issued tokens cannot be revoked through this channel.
// Absence of a revocation record means "not revoked" (fail-open).
func (s *service) Check(ctx context.Context, jwtData core.JwtData) error {
	ctx, span := tracer.Start(ctx, "Revocation.Service.Check")
	defer span.End()

	if jwtData.SelfIssued() {
		return nil
	}

	revokedAt, found, err := s.repository.Get(ctx, jwtData.Sub)
	if err != nil {
		span.RecordError(err)
		return core.NewErrorUpstreamUnavailable(err)
	}
	if !found {
		return nil
	}

	issuedAt := time.Unix(jwtData.Iat, 0)
	if issuedAt.Before(revokedAt) {
		slog.ErrorContext(ctx, "privileges for client are revoked", slog.String("client", jwtData.Sub))
		return core.NewErrorRevoked()
	}

	return nil
}
