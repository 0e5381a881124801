package metering

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
)

var tracer = otel.Tracer("metering")

// AuditChannel is the redis channel audit records are published on for
// downstream metering consumers.
const AuditChannel = "rs-proxy:audit"

type service struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewService creates a new metering service
func NewService(db *gorm.DB, rdb *redis.Client) core.MeteringService {
	return &service{
		db:  db,
		rdb: rdb,
	}
}

// ValidateAuditParams checks the query parameters of a consumer or
// provider audit request before it is forwarded.
func (s *service) ValidateAuditParams(params map[string]string) error {
	if params["userid"] == "" {
		return fmt.Errorf("userid is missing")
	}

	timeRel := params["timerel"]
	if timeRel != "during" && timeRel != "between" {
		return fmt.Errorf("timerel must be during or between, got %q", timeRel)
	}

	start, err := time.Parse(time.RFC3339, repairPlus(params["time"]))
	if err != nil {
		return fmt.Errorf("invalid time parameter: %w", err)
	}
	end, err := time.Parse(time.RFC3339, repairPlus(params["endTime"]))
	if err != nil {
		return fmt.Errorf("invalid endTime parameter: %w", err)
	}

	if end.Sub(start) < time.Minute {
		return fmt.Errorf("endTime must be at least a minute after time")
	}

	return nil
}

// repairPlus undoes url decoding of the offset sign: a literal + in a
// query parameter arrives as a space.
func repairPlus(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '+'
		}
		return r
	}, strings.TrimSpace(s))
}

// Record persists one audit entry and publishes it for any subscribed
// metering consumers. The publish is best effort.
func (s *service) Record(ctx context.Context, log core.AuditLog) error {
	ctx, span := tracer.Start(ctx, "Metering.Service.Record")
	defer span.End()

	if log.ID == "" {
		log.ID = xid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	err := s.db.WithContext(ctx).Create(&log).Error
	if err != nil {
		span.RecordError(err)
		return err
	}

	payload, err := json.Marshal(log)
	if err != nil {
		span.RecordError(err)
		return err
	}

	err = s.rdb.Publish(ctx, AuditChannel, payload).Err()
	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "failed to publish audit record", slog.String("error", err.Error()))
	}

	return nil
}
