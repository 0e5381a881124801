package introspect

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	mock_core "github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core/mock"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

func newMiddlewareHarness(t *testing.T) (*echo.Echo, *mock_core.MockIntrospectService) {
	ctrl := gomock.NewController(t)
	mockService := mock_core.NewMockIntrospectService(ctrl)

	config := util.Config{}
	config.Proxy.Audience = testAudience
	config.Proxy.DxApiBasePath = testBasePath

	e := echo.New()
	e.Use(Middleware(mockService, config))
	e.Any("/*", func(c echo.Context) error {
		bundle := c.Get(core.AuthInfoCtxKey).(core.ClaimBundle)
		return c.JSON(http.StatusOK, bundle)
	})

	return e, mockService
}

func TestMiddlewarePassesClaims(t *testing.T) {

	e, mockService := newMiddlewareHarness(t)

	mockService.EXPECT().
		Introspect(gomock.Any(), core.AuthContext{
			Endpoint: testBasePath + "/entities",
			Method:   http.MethodGet,
			Token:    "test-token",
			ID:       testResource,
		}, gomock.Any()).
		Return(core.ClaimBundle{UserID: "c1", Role: "consumer"}, nil)

	req := httptest.NewRequest(http.MethodGet, testBasePath+"/entities?id="+testResource, nil)
	req.Header.Set(core.TokenHeader, "test-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var bundle core.ClaimBundle
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	assert.Equal(t, "c1", bundle.UserID)
}

func TestMiddlewareMissingToken(t *testing.T) {

	e, _ := newMiddlewareHarness(t)

	req := httptest.NewRequest(http.MethodGet, testBasePath+"/entities", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body problem
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, core.InvalidTokenURN, body.Type)
	assert.Equal(t, "Unauthorized", body.Title)
}

func TestMiddlewareNotFound(t *testing.T) {

	e, mockService := newMiddlewareHarness(t)

	mockService.EXPECT().
		Introspect(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(core.ClaimBundle{}, core.NewErrorNotFound(testResource))

	req := httptest.NewRequest(http.MethodGet, testBasePath+"/entities?id="+testResource, nil)
	req.Header.Set(core.TokenHeader, "test-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body problem
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, core.ResourceNotFoundURN, body.Type)
}

func TestMiddlewareDenied(t *testing.T) {

	e, mockService := newMiddlewareHarness(t)

	mockService.EXPECT().
		Introspect(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(core.ClaimBundle{}, core.NewErrorAuthorizationDenied())

	req := httptest.NewRequest(http.MethodGet, testBasePath+"/entities?id="+testResource, nil)
	req.Header.Set(core.TokenHeader, "test-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareBodyID(t *testing.T) {

	e, mockService := newMiddlewareHarness(t)

	mockService.EXPECT().
		Introspect(gomock.Any(), core.AuthContext{
			Endpoint: testBasePath + "/entityOperations/query",
			Method:   http.MethodPost,
			Token:    "test-token",
			ID:       testResource,
		}, gomock.Any()).
		Return(core.ClaimBundle{UserID: "c1"}, nil)

	body := `{"entities":[{"id":"` + testResource + `"}]}`
	req := httptest.NewRequest(http.MethodPost, testBasePath+"/entityOperations/query", strings.NewReader(body))
	req.Header.Set(core.TokenHeader, "test-token")
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
