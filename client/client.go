//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

const (
	defaultTimeout = 10 * time.Second
)

var tracer = otel.Tracer("client")

// Client is the outbound surface towards the DX catalogue and auth server
type Client interface {
	Search(ctx context.Context, query core.SearchQuery) (core.CatalogueResponse, error)
	GetItem(ctx context.Context, id string) (core.CatalogueItem, bool, error)
	GetCert(ctx context.Context) (string, error)
}

type client struct {
	searchURL string
	itemURL   string
	certURL   string
}

func NewClient(config util.Config) Client {
	catBase := fmt.Sprintf("https://%s:%d%s", config.Proxy.CatServerHost, config.Proxy.CatServerPort, config.Proxy.DxCatalogueBasePath)
	return &client{
		searchURL: catBase + core.CatSearchPath,
		itemURL:   catBase + core.CatItemPath,
		certURL:   "https://" + config.Proxy.AuthServerHost + config.Proxy.DxAuthBasePath + core.AuthCertificatePath,
	}
}

// Search runs a catalogue search by property/value with a result filter
func (c *client) Search(ctx context.Context, query core.SearchQuery) (core.CatalogueResponse, error) {
	ctx, span := tracer.Start(ctx, "Client.Search")
	defer span.End()

	params := url.Values{}
	params.Set("property", "["+query.Property+"]")
	params.Set("value", "[["+query.Value+"]]")
	params.Set("filter", "["+query.Filter+"]")

	req, err := http.NewRequestWithContext(ctx, "GET", c.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueResponse{}, err
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueResponse{}, errors.Wrap(err, "catalogue search failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.CatalogueResponse{}, fmt.Errorf("catalogue search returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueResponse{}, err
	}

	var response core.CatalogueResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueResponse{}, errors.Wrap(err, "malformed catalogue response")
	}

	return response, nil
}

// GetItem fetches a single catalogue item by id. The second return value
// reports whether the item exists.
func (c *client) GetItem(ctx context.Context, id string) (core.CatalogueItem, bool, error) {
	ctx, span := tracer.Start(ctx, "Client.GetItem")
	defer span.End()

	params := url.Values{}
	params.Set("id", id)

	req, err := http.NewRequestWithContext(ctx, "GET", c.itemURL+"?"+params.Encode(), nil)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueItem{}, false, err
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueItem{}, false, errors.Wrap(err, "catalogue item lookup failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.CatalogueItem{}, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return core.CatalogueItem{}, false, fmt.Errorf("catalogue item lookup returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueItem{}, false, err
	}

	var response core.CatalogueResponse
	err = json.Unmarshal(body, &response)
	if err != nil {
		span.RecordError(err)
		return core.CatalogueItem{}, false, errors.Wrap(err, "malformed catalogue response")
	}

	if response.Type != core.CatSuccessURN || len(response.Results) == 0 {
		return core.CatalogueItem{}, false, nil
	}

	return response.Results[0], true, nil
}

// GetCert fetches the token-signing certificate from the auth server
func (c *client) GetCert(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Client.GetCert")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, "GET", c.certURL, nil)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	httpClient := new(http.Client)
	httpClient.Timeout = defaultTimeout
	resp, err := httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "failed to get token certificate from auth server")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth server cert endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	var payload struct {
		Cert string `json:"cert"`
	}
	err = json.Unmarshal(body, &payload)
	if err != nil {
		span.RecordError(err)
		return "", errors.Wrap(err, "malformed cert response")
	}

	if payload.Cert == "" {
		return "", fmt.Errorf("auth server returned empty certificate")
	}

	return payload.Cert, nil
}
