package workflow

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_core "github.com/hashsign/hashsign/core/mock"
	"github.com/hashsign/hashsign/internal/testutil"
)

// A successful sign publishes a lifecycle event on the owner's channel, and
// the completing signature additionally publishes a completed event.
func TestSignPublishesLifecycleEvents(t *testing.T) {
	rdb, cleanupRDB := testutil.CreateRDB()
	defer cleanupRDB()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	completed := core.DocumentStore{
		Owner:           "alice",
		DocumentCounter: 1,
		Documents: []core.Document{
			{
				ID:      1,
				Owner:   "alice",
				Signers: []string{"bob"},
				Signatures: []core.Signature{
					{Owner: "alice", DocumentID: 1, Signer: "bob"},
				},
			},
		},
	}

	mockStore := mock_core.NewMockStoreService(ctrl)
	mockStore.EXPECT().SubmitSign(gomock.Any(), "alice", uint(1), "bob").Return(nil)
	mockStore.EXPECT().ReadStoreFresh(gomock.Any(), "alice").Return(completed, nil)

	sub := rdb.Subscribe(ctx, "hashsign:alice")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	assert.NoError(t, err)

	service := NewService(nil, mockStore, rdb)
	err = service.SignDocument(ctx, "bob", "alice", 1)
	assert.NoError(t, err)

	actions := []string{}
	deadline, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	for len(actions) < 2 {
		msg, err := sub.ReceiveMessage(deadline)
		if !assert.NoError(t, err) {
			break
		}
		var event core.Event
		if assert.NoError(t, json.Unmarshal([]byte(msg.Payload), &event)) {
			assert.Equal(t, "alice", event.Owner)
			assert.Equal(t, uint(1), event.DocumentID)
			actions = append(actions, event.Action)
		}
	}

	assert.Equal(t, []string{core.EventDocumentSigned, core.EventDocumentCompleted}, actions)
}
