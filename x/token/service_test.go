package token

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

type stubRepository struct {
	cert string
	err  error
}

func (r *stubRepository) GetCert(ctx context.Context) (string, error) {
	return r.cert, r.err
}

func generateKey(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	assert.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	assert.NoError(t, err)

	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(block)
}

func signToken(t *testing.T, key *ecdsa.PrivateKey, claims rsClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	assert.NoError(t, err)
	return signed
}

func TestDecode(t *testing.T) {
	ctx := context.Background()
	key, cert := generateKey(t)

	service := NewService(&stubRepository{cert: cert}, util.Config{})

	now := time.Now()
	tokenStr := signToken(t, key, rsClaims{
		Iid:  "iudx:r42",
		Role: "consumer",
		Cons: &core.Consent{Access: []string{"api"}},
		Drl:  "",
		Apd:  "apd.example.org",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "auth.example.org",
			Subject:   "d1",
			Audience:  jwt.ClaimStrings{"rs.example.org"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	jwtData, err := service.Decode(ctx, tokenStr)
	if assert.NoError(t, err) {
		assert.Equal(t, "auth.example.org", jwtData.Iss)
		assert.Equal(t, "d1", jwtData.Sub)
		assert.Equal(t, "rs.example.org", jwtData.Aud)
		assert.Equal(t, "iudx:r42", jwtData.Iid)
		assert.Equal(t, "consumer", jwtData.Role)
		assert.Equal(t, "r42", jwtData.ResourceID())
		assert.True(t, jwtData.Cons.HasAccess("api"))
		assert.Equal(t, now.Add(time.Hour).Unix(), jwtData.Exp)
		assert.Equal(t, now.Unix(), jwtData.Iat)
		assert.False(t, jwtData.SelfIssued())
	}
}

func TestDecodeExpired(t *testing.T) {
	ctx := context.Background()
	key, cert := generateKey(t)

	tokenStr := signToken(t, key, rsClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "auth.example.org",
			Subject:   "d1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	})

	service := NewService(&stubRepository{cert: cert}, util.Config{})
	_, err := service.Decode(ctx, tokenStr)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidToken{}, err)

	// the documented production hazard: expiry explicitly ignored
	lenient := NewService(&stubRepository{cert: cert}, util.Config{
		Proxy: util.Proxy{JwtIgnoreExpiry: true},
	})
	jwtData, err := lenient.Decode(ctx, tokenStr)
	if assert.NoError(t, err) {
		assert.Equal(t, "d1", jwtData.Sub)
	}
}

func TestDecodeWrongKey(t *testing.T) {
	ctx := context.Background()
	key, _ := generateKey(t)
	_, otherCert := generateKey(t)

	tokenStr := signToken(t, key, rsClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "auth.example.org",
			Subject:   "d1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	service := NewService(&stubRepository{cert: otherCert}, util.Config{})
	_, err := service.Decode(ctx, tokenStr)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidToken{}, err)
}

func TestDecodeGarbage(t *testing.T) {
	ctx := context.Background()
	_, cert := generateKey(t)

	service := NewService(&stubRepository{cert: cert}, util.Config{})

	_, err := service.Decode(ctx, "not.a.token")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidToken{}, err)
}

func TestDecodeRejectsNonES256(t *testing.T) {
	ctx := context.Background()
	_, cert := generateKey(t)

	// HS256 token signed with the PEM bytes as the shared secret
	hsToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "auth.example.org",
		Subject:   "d1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(cert))
	assert.NoError(t, err)

	service := NewService(&stubRepository{cert: cert}, util.Config{})
	_, err = service.Decode(ctx, hsToken)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorInvalidToken{}, err)
}

func TestDecodeCertUnavailable(t *testing.T) {
	ctx := context.Background()

	service := NewService(&stubRepository{err: assert.AnError}, util.Config{})
	_, err := service.Decode(ctx, "whatever")
	assert.Error(t, err)
	assert.IsType(t, core.ErrorUpstreamUnavailable{}, err)
}
