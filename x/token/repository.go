package token

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/client"
)

var tracer = otel.Tracer("token")

const (
	certCacheKey = "rs-proxy:authcert"
	certCacheTTL = 3600 // seconds
)

type Repository interface {
	GetCert(ctx context.Context) (string, error)
}

type repository struct {
	mc     *memcache.Client
	client client.Client
}

func NewRepository(mc *memcache.Client, client client.Client) Repository {
	return &repository{mc, client}
}

// GetCert returns the auth server's token-signing certificate, cached in
// memcached so the auth server is not hit on every introspection.
func (r *repository) GetCert(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Token.Repository.GetCert")
	defer span.End()

	item, err := r.mc.Get(certCacheKey)
	if err == nil {
		return string(item.Value), nil
	}

	cert, err := r.client.GetCert(ctx)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	err = r.mc.Set(&memcache.Item{Key: certCacheKey, Value: []byte(cert), Expiration: certCacheTTL})
	if err != nil {
		// cache failure is not fatal, the cert is already in hand
		span.RecordError(err)
	}

	return cert, nil
}
