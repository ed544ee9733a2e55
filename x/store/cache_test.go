package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_core "github.com/hashsign/hashsign/core/mock"
	"github.com/hashsign/hashsign/internal/testutil"
)

// Repeated reads within the TTL hit memcached, and a submission invalidates
// the entry so the next read goes back to the ledger.
func TestReadStoreCaching(t *testing.T) {
	mc, cleanupMC := testutil.CreateMC()
	defer cleanupMC()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	stored := core.DocumentStore{Owner: "alice", DocumentCounter: 1}
	raw, err := json.Marshal(stored)
	assert.NoError(t, err)

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Read(gomock.Any(), "alice", core.ResourceDocumentStore).
		Return(json.RawMessage(raw), nil).
		Times(1)

	service := NewService(mockLedger, mc)

	first, err := service.ReadStore(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), first.DocumentCounter)

	// served from cache, no second ledger read
	second, err := service.ReadStore(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, first.Owner, second.Owner)

	signed := core.DocumentStore{Owner: "alice", DocumentCounter: 1}
	signedRaw, err := json.Marshal(signed)
	assert.NoError(t, err)

	mockLedger.EXPECT().
		Submit(gomock.Any(), "alice", core.FnSignDocument, []any{uint(1), "bob"}).
		Return(json.RawMessage(`{}`), nil)
	mockLedger.EXPECT().
		Read(gomock.Any(), "alice", core.ResourceDocumentStore).
		Return(json.RawMessage(signedRaw), nil).
		Times(1)

	err = service.SubmitSign(ctx, "alice", 1, "bob")
	assert.NoError(t, err)

	// invalidated, so this read reaches the ledger again
	third, err := service.ReadStore(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", third.Owner)
}
