package introspect

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Middleware authenticates and authorizes every proxied request. On
// success, the claim bundle and decoded token are stored on the echo
// context for the forwarding layer; on failure, the request is answered
// with a problem body and never reaches the upstream.
func Middleware(service core.IntrospectService, config util.Config) echo.MiddlewareFunc {
	api := core.NewApi(config.Proxy.DxApiBasePath)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "Introspect.Middleware")
			defer span.End()
			c.SetRequest(c.Request().WithContext(ctx))

			token := c.Request().Header.Get(core.TokenHeader)
			if token == "" {
				return respondProblem(c, core.NewErrorInvalidToken("missing token header"))
			}

			endpoint := api.NormalizePath(c.Request().URL.Path)
			if endpoint == "" {
				endpoint = c.Request().URL.Path
			}

			id, err := extractID(c)
			if err != nil {
				span.RecordError(err)
				return respondProblem(c, core.NewErrorInvalidToken("unreadable request body"))
			}

			authCtx := core.AuthContext{
				Endpoint: endpoint,
				Method:   c.Request().Method,
				Token:    token,
				ID:       id,
			}

			span.SetAttributes(
				attribute.String("endpoint", endpoint),
				attribute.String("id", id),
			)

			var jwtData core.JwtData
			bundle, err := service.Introspect(ctx, authCtx, &jwtData)
			if err != nil {
				span.RecordError(err)
				slog.InfoContext(ctx, "request rejected",
					slog.String("endpoint", endpoint),
					slog.String("error", err.Error()),
				)
				return respondProblem(c, err)
			}

			c.Set(core.AuthInfoCtxKey, bundle)
			c.Set(core.JwtDataCtxKey, jwtData)

			return next(c)
		}
	}
}

// extractID resolves the requested resource id, preferring the query
// parameter and falling back to the first entity id in the body. The body
// is restored so the proxy can still forward it.
func extractID(c echo.Context) (string, error) {
	if id := c.QueryParam("id"); id != "" {
		return id, nil
	}

	if c.Request().Body == nil || c.Request().Method == http.MethodGet {
		return "", nil
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return "", err
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	if len(body) == 0 {
		return "", nil
	}

	var payload struct {
		Entities []struct {
			ID string `json:"id"`
		} `json:"entities"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		// non-JSON bodies simply carry no id
		return "", nil
	}
	if len(payload.Entities) == 0 {
		return "", nil
	}

	return payload.Entities[0].ID, nil
}

// respondProblem maps a pipeline error onto the externally visible
// outcome. Not-found classifications become 404; everything else is
// collapsed into 401 so the reason does not leak to clients.
func respondProblem(c echo.Context, err error) error {
	status := http.StatusUnauthorized
	urn := core.InvalidTokenURN

	if _, ok := err.(core.ErrorNotFound); ok || strings.Contains(err.Error(), "Not Found") {
		status = http.StatusNotFound
		urn = core.ResourceNotFoundURN
	}

	text := http.StatusText(status)
	return c.JSON(status, problem{Type: urn, Title: text, Detail: text})
}
