package token

import (
	"context"
	"log/slog"

	"github.com/golang-jwt/jwt/v4"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

type service struct {
	repository   Repository
	ignoreExpiry bool
}

// NewService creates a new token service
func NewService(repository Repository, config util.Config) core.TokenService {
	if config.Proxy.JwtIgnoreExpiry {
		slog.Warn("JWT ignore expiration set to true, do not set jwtIgnoreExpiry in production!!")
	}
	return &service{
		repository:   repository,
		ignoreExpiry: config.Proxy.JwtIgnoreExpiry,
	}
}

// rsClaims is the raw claim payload of a DX token
type rsClaims struct {
	Iid  string        `json:"iid,omitempty"`
	Role string        `json:"role,omitempty"`
	Cons *core.Consent `json:"cons,omitempty"`
	Drl  string        `json:"drl,omitempty"`
	Did  string        `json:"did,omitempty"`
	Apd  string        `json:"apd,omitempty"`
	jwt.RegisteredClaims
}

// Decode verifies the bearer token's signature and time bounds and returns
// its structured claim set. Expiry and issued-at are attached from the
// verification result since they are not always typed in the raw payload.
func (s *service) Decode(ctx context.Context, tokenStr string) (core.JwtData, error) {
	ctx, span := tracer.Start(ctx, "Token.Service.Decode")
	defer span.End()

	pemCert, err := s.repository.GetCert(ctx)
	if err != nil {
		span.RecordError(err)
		return core.JwtData{}, core.NewErrorUpstreamUnavailable(err)
	}

	publicKey, err := jwt.ParseECPublicKeyFromPEM([]byte(pemCert))
	if err != nil {
		span.RecordError(err)
		return core.JwtData{}, core.NewErrorUpstreamUnavailable(err)
	}

	options := []jwt.ParserOption{jwt.WithValidMethods([]string{"ES256"})}
	if s.ignoreExpiry {
		options = append(options, jwt.WithoutClaimsValidation())
	}

	claims := rsClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, options...)
	if err != nil {
		span.RecordError(err)
		return core.JwtData{}, core.NewErrorInvalidToken(err.Error())
	}
	if !parsed.Valid {
		return core.JwtData{}, core.NewErrorInvalidToken("token is not valid")
	}

	jwtData := core.JwtData{
		Iss:  claims.Issuer,
		Sub:  claims.Subject,
		Iid:  claims.Iid,
		Role: claims.Role,
		Cons: claims.Cons,
		Drl:  claims.Drl,
		Did:  claims.Did,
		Apd:  claims.Apd,
	}
	if len(claims.Audience) > 0 {
		jwtData.Aud = claims.Audience[0]
	}
	if claims.ExpiresAt != nil {
		jwtData.Exp = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		jwtData.Iat = claims.IssuedAt.Unix()
	}

	return jwtData, nil
}
