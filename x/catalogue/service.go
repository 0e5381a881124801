package catalogue

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/client"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/x/cache"
)

var tracer = otel.Tracer("catalogue")

const (
	defaultCacheCapacity = 1000
	defaultCacheTTL      = 30 * time.Minute
)

type service struct {
	client client.Client

	// groupCache holds the access policy of every resource group seen so
	// far; resourceCache holds the effective policy of confirmed resource
	// ids. A resourceCache hit always implies the resource exists.
	groupCache    *cache.Cache[string, string]
	resourceCache *cache.Cache[string, string]
}

// NewService creates a new catalogue service
func NewService(client client.Client, config util.Config) core.CatalogueService {
	capacity := config.Proxy.CacheCapacity
	if capacity == 0 {
		capacity = defaultCacheCapacity
	}
	ttl := time.Duration(config.Proxy.CacheTTLMinutes) * time.Minute
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &service{
		client:        client,
		groupCache:    cache.New[string, string](capacity, ttl),
		resourceCache: cache.New[string, string](capacity, ttl),
	}
}

// Resolve classifies a resource id as OPEN or SECURE. The group policy and
// the resource's existence are validated independently because group and
// item lookups hit different catalogue endpoints.
func (s *service) Resolve(ctx context.Context, id string) (core.ResourcePolicy, error) {
	ctx, span := tracer.Start(ctx, "Catalogue.Service.Resolve")
	defer span.End()

	if acl, ok := s.resourceCache.Get(id); ok {
		return core.ResourcePolicy{ID: id, AccessPolicy: acl}, nil
	}

	slog.DebugContext(ctx, "resource cache miss, calling catalogue server", slog.String("id", id))

	item, found, err := s.client.GetItem(ctx, id)
	if err != nil {
		span.RecordError(err)
		return core.ResourcePolicy{}, core.NewErrorUpstreamUnavailable(err)
	}
	if !found {
		return core.ResourcePolicy{}, core.NewErrorNotFound(id)
	}

	// the item's declared group, or the id itself when the item is its
	// own group
	groupID := item.ResourceGroup
	if groupID == "" {
		groupID = id
	}

	acl, err := s.resolveGroupPolicy(ctx, groupID)
	if err != nil {
		return core.ResourcePolicy{}, err
	}

	err = s.confirmResource(ctx, id, acl)
	if err != nil {
		return core.ResourcePolicy{}, err
	}

	return core.ResourcePolicy{ID: id, AccessPolicy: acl, GroupID: groupID}, nil
}

func (s *service) resolveGroupPolicy(ctx context.Context, groupID string) (string, error) {
	ctx, span := tracer.Start(ctx, "Catalogue.Service.ResolveGroupPolicy")
	defer span.End()

	if acl, ok := s.groupCache.Get(groupID); ok {
		return acl, nil
	}

	response, err := s.client.Search(ctx, core.SearchQuery{
		Property: "id",
		Value:    groupID,
		Filter:   "accessPolicy",
	})
	if err != nil {
		span.RecordError(err)
		return "", core.NewErrorUpstreamUnavailable(err)
	}
	if !response.Succeeded() || len(response.Results) == 0 {
		return "", core.NewErrorNotFound(groupID)
	}

	acl := response.Results[0].AccessPolicy
	if acl == "" {
		acl = core.PolicySecure
	}

	s.groupCache.Put(groupID, acl)

	return acl, nil
}

// confirmResource re-checks that the resource id itself exists as a
// catalogue entry. Only this step populates the resource cache, storing
// the group's resolved policy as the resource's effective policy.
func (s *service) confirmResource(ctx context.Context, id string, groupACL string) error {
	ctx, span := tracer.Start(ctx, "Catalogue.Service.ConfirmResource")
	defer span.End()

	if _, ok := s.resourceCache.Get(id); ok {
		return nil
	}

	response, err := s.client.Search(ctx, core.SearchQuery{
		Property: "id",
		Value:    id,
		Filter:   "id,accessPolicy",
	})
	if err != nil {
		span.RecordError(err)
		return core.NewErrorUpstreamUnavailable(err)
	}
	if !response.Succeeded() {
		slog.ErrorContext(ctx, "resource id invalid, catalogue item not found", slog.String("id", id))
		return core.NewErrorNotFound(id)
	}

	s.resourceCache.Put(id, groupACL)

	return nil
}
