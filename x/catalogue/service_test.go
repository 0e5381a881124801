package catalogue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_client "github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/client/mock"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/util"
)

const (
	testGroupID    = "datakaveri.org/b8bd3e9dd5/rs.example.org/pune-env-flood"
	testResourceID = testGroupID + "/FWR055"
)

func newTestService(t *testing.T) (core.CatalogueService, *mock_client.MockClient) {
	ctrl := gomock.NewController(t)
	mockClient := mock_client.NewMockClient(ctrl)

	config := util.Config{}
	config.Proxy.CacheCapacity = 100
	config.Proxy.CacheTTLMinutes = 30

	return NewService(mockClient, config), mockClient
}

func TestResolveOpenResource(t *testing.T) {

	service, mockClient := newTestService(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetItem(gomock.Any(), testResourceID).
		Return(core.CatalogueItem{ID: testResourceID, ResourceGroup: testGroupID}, true, nil).
		Times(1)

	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testGroupID, Filter: "accessPolicy"}).
		Return(core.CatalogueResponse{
			Type:      core.CatSuccessURN,
			TotalHits: 1,
			Results:   []core.CatalogueItem{{ID: testGroupID, AccessPolicy: core.PolicyOpen}},
		}, nil).
		Times(1)

	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testResourceID, Filter: "id,accessPolicy"}).
		Return(core.CatalogueResponse{
			Type:      core.CatSuccessURN,
			TotalHits: 1,
			Results:   []core.CatalogueItem{{ID: testResourceID}},
		}, nil).
		Times(1)

	policy, err := service.Resolve(ctx, testResourceID)
	assert.NoError(t, err)
	assert.Equal(t, core.PolicyOpen, policy.AccessPolicy)
	assert.True(t, policy.IsOpen())
	assert.Equal(t, testGroupID, policy.GroupID)

	// second resolve must come from the resource cache; the Times(1)
	// expectations above fail the test if the client is called again
	policy, err = service.Resolve(ctx, testResourceID)
	assert.NoError(t, err)
	assert.Equal(t, core.PolicyOpen, policy.AccessPolicy)
}

func TestResolveUnknownItem(t *testing.T) {

	service, mockClient := newTestService(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetItem(gomock.Any(), testResourceID).
		Return(core.CatalogueItem{}, false, nil)

	_, err := service.Resolve(ctx, testResourceID)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

func TestResolveFailedExistenceCheck(t *testing.T) {

	service, mockClient := newTestService(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetItem(gomock.Any(), testResourceID).
		Return(core.CatalogueItem{ID: testResourceID, ResourceGroup: testGroupID}, true, nil)

	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testGroupID, Filter: "accessPolicy"}).
		Return(core.CatalogueResponse{
			Type:      core.CatSuccessURN,
			TotalHits: 1,
			Results:   []core.CatalogueItem{{ID: testGroupID, AccessPolicy: core.PolicySecure}},
		}, nil)

	// the group exists but the resource id itself is not a catalogue entry
	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testResourceID, Filter: "id,accessPolicy"}).
		Return(core.CatalogueResponse{Type: "urn:dx:cat:ItemNotFound"}, nil)

	_, err := service.Resolve(ctx, testResourceID)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorNotFound{}, err)
}

func TestResolveSelfGroupedItem(t *testing.T) {

	service, mockClient := newTestService(t)
	ctx := context.Background()

	// no resourceGroup on the item: the id is its own group
	mockClient.EXPECT().
		GetItem(gomock.Any(), testGroupID).
		Return(core.CatalogueItem{ID: testGroupID}, true, nil)

	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testGroupID, Filter: "accessPolicy"}).
		Return(core.CatalogueResponse{
			Type:      core.CatSuccessURN,
			TotalHits: 1,
			Results:   []core.CatalogueItem{{ID: testGroupID, AccessPolicy: core.PolicySecure}},
		}, nil)

	mockClient.EXPECT().
		Search(gomock.Any(), core.SearchQuery{Property: "id", Value: testGroupID, Filter: "id,accessPolicy"}).
		Return(core.CatalogueResponse{
			Type:      core.CatSuccessURN,
			TotalHits: 1,
			Results:   []core.CatalogueItem{{ID: testGroupID}},
		}, nil)

	policy, err := service.Resolve(ctx, testGroupID)
	assert.NoError(t, err)
	assert.Equal(t, core.PolicySecure, policy.AccessPolicy)
	assert.False(t, policy.IsOpen())
}

func TestResolveCatalogueDown(t *testing.T) {

	service, mockClient := newTestService(t)
	ctx := context.Background()

	mockClient.EXPECT().
		GetItem(gomock.Any(), testResourceID).
		Return(core.CatalogueItem{}, false, errors.New("connection refused"))

	_, err := service.Resolve(ctx, testResourceID)
	assert.Error(t, err)
	assert.IsType(t, core.ErrorUpstreamUnavailable{}, err)
}
