package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
)

var tracer = otel.Tracer("revocation")

const (
	revokedKeyPrefix = "rs-proxy:revoked:"
	cacheTTL         = 30 * time.Minute
)

type Repository interface {
	Get(ctx context.Context, clientID string) (time.Time, bool, error)
	Upsert(ctx context.Context, revoked core.RevokedClient) error
}

type repository struct {
	rdb *redis.Client
	db  *gorm.DB
}

func NewRepository(rdb *redis.Client, db *gorm.DB) Repository {
	return &repository{rdb, db}
}

// Get returns the revocation timestamp for a client id. The second return
// value is false when no revocation record exists.
func (r *repository) Get(ctx context.Context, clientID string) (time.Time, bool, error) {
	ctx, span := tracer.Start(ctx, "Revocation.Repository.Get")
	defer span.End()

	val, err := r.rdb.Get(ctx, revokedKeyPrefix+clientID).Result()
	if err == nil {
		revokedAt, err := time.Parse(time.RFC3339, val)
		if err == nil {
			return revokedAt, true, nil
		}
		span.RecordError(err)
	} else if !errors.Is(err, redis.Nil) {
		// cache trouble falls through to the store
		span.RecordError(err)
	}

	var record core.RevokedClient
	err = r.db.Where("client_id = ?", clientID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		span.RecordError(err)
		return time.Time{}, false, err
	}

	err = r.rdb.Set(ctx, revokedKeyPrefix+clientID, record.RevokedAt.Format(time.RFC3339), cacheTTL).Err()
	if err != nil {
		span.RecordError(err)
	}

	return record.RevokedAt, true, nil
}

// Upsert writes a revocation record and refreshes its cache entry
func (r *repository) Upsert(ctx context.Context, revoked core.RevokedClient) error {
	ctx, span := tracer.Start(ctx, "Revocation.Repository.Upsert")
	defer span.End()

	err := r.db.Save(&revoked).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = r.rdb.Set(ctx, revokedKeyPrefix+revoked.ClientID, revoked.RevokedAt.Format(time.RFC3339), cacheTTL).Err()
	if err != nil {
		span.RecordError(err)
	}

	return nil
}
