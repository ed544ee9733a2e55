package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_core "github.com/hashsign/hashsign/core/mock"
)

func TestEmbeddedRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)
	mockDocument.EXPECT().
		GetStore(gomock.Any(), "alice").
		Return(core.DocumentStore{Owner: "alice", DocumentCounter: 2}, nil)

	l := NewEmbedded(mockDocument)
	raw, err := l.Read(context.Background(), "alice", core.ResourceDocumentStore)
	assert.NoError(t, err)

	var store core.DocumentStore
	err = json.Unmarshal(raw, &store)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), store.DocumentCounter)
}

func TestEmbeddedReadUnregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)
	mockDocument.EXPECT().
		GetStore(gomock.Any(), "nobody").
		Return(core.DocumentStore{}, core.NewErrorNotRegistered())

	l := NewEmbedded(mockDocument)
	_, err := l.Read(context.Background(), "nobody", core.ResourceDocumentStore)
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}

func TestEmbeddedReadUnknownResource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)

	l := NewEmbedded(mockDocument)
	_, err := l.Read(context.Background(), "alice", "unknown_resource")
	assert.ErrorAs(t, err, &core.ErrorNotFound{})
}

func TestEmbeddedSubmitCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)
	mockDocument.EXPECT().
		CreateDocument(gomock.Any(), "alice", "QmTest", []string{"alice", "bob"}).
		Return(core.Document{ID: 1, Owner: "alice"}, nil)

	l := NewEmbedded(mockDocument)

	// args arrive as []any when the submission was decoded from JSON
	raw, err := l.Submit(context.Background(), "alice", core.FnCreateDocument, []any{"QmTest", []any{"alice", "bob"}})
	assert.NoError(t, err)

	var created core.Document
	err = json.Unmarshal(raw, &created)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

func TestEmbeddedSubmitSign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)
	mockDocument.EXPECT().
		SignDocument(gomock.Any(), "alice", uint(7), "bob").
		Return(core.Document{ID: 7, Owner: "alice"}, nil)

	l := NewEmbedded(mockDocument)

	// JSON numbers decode as float64
	_, err := l.Submit(context.Background(), "alice", core.FnSignDocument, []any{float64(7), "bob"})
	assert.NoError(t, err)
}

func TestEmbeddedSubmitBadArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocument := mock_core.NewMockDocumentService(ctrl)

	l := NewEmbedded(mockDocument)

	_, err := l.Submit(context.Background(), "alice", core.FnCreateDocument, []any{"QmTest"})
	assert.ErrorAs(t, err, &core.ErrorTransactionRejected{})

	_, err = l.Submit(context.Background(), "alice", core.FnSignDocument, []any{"not-a-number", "bob"})
	assert.ErrorAs(t, err, &core.ErrorTransactionRejected{})

	_, err = l.Submit(context.Background(), "alice", "mint_tokens", []any{})
	assert.ErrorAs(t, err, &core.ErrorTransactionRejected{})
}
