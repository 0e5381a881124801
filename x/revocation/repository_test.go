package revocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/core"
	"github.com/DivyaSreeMunagavalasa/iudx-rs-proxy/internal/testutil"
)

func TestRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping docker-backed test in short mode")
	}

	var ctx = context.Background()

	db, cleanup_db := testutil.CreateDB()
	defer cleanup_db()

	rdb, cleanup_rdb := testutil.CreateRDB()
	defer cleanup_rdb()

	test_repo := NewRepository(rdb, db)

	// Test1. unknown client has no revocation record
	_, found, err := test_repo.Get(ctx, "c-unknown")
	assert.NoError(t, err)
	assert.False(t, found)

	// Test2. revocation is visible after upsert
	revokedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err = test_repo.Upsert(ctx, core.RevokedClient{ClientID: "c1", RevokedAt: revokedAt})
	assert.NoError(t, err)

	got, found, err := test_repo.Get(ctx, "c1")
	if assert.NoError(t, err) {
		assert.True(t, found)
		assert.True(t, got.Equal(revokedAt))
	}

	// Test3. second read is served from the cache tier
	err = db.Where("client_id = ?", "c1").Delete(&core.RevokedClient{}).Error
	assert.NoError(t, err)

	got, found, err = test_repo.Get(ctx, "c1")
	if assert.NoError(t, err) {
		assert.True(t, found)
		assert.True(t, got.Equal(revokedAt))
	}
}
