package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_document "github.com/hashsign/hashsign/x/document/mock"
)

func TestServiceCreateDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_document.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		CreateDocument(gomock.Any(), "alice", "QmTest", []string{"alice", "bob"}).
		Return(core.Document{ID: 1, Owner: "alice", ContentID: "QmTest", Signers: []string{"alice", "bob"}}, nil)

	s := NewService(mockRepo)
	created, err := s.CreateDocument(context.Background(), "alice", "QmTest", []string{"alice", "bob"})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
}

func TestServiceCreateDocumentEmptySigners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the repository must not be reached, no id is allocated
	mockRepo := mock_document.NewMockRepository(ctrl)

	s := NewService(mockRepo)
	_, err := s.CreateDocument(context.Background(), "alice", "QmTest", []string{})

	assert.ErrorAs(t, err, &core.ErrorSignerListEmpty{})
}

func TestServiceCreateDocumentDuplicateSigner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_document.NewMockRepository(ctrl)

	s := NewService(mockRepo)
	_, err := s.CreateDocument(context.Background(), "alice", "QmTest", []string{"bob", "bob"})

	assert.ErrorAs(t, err, &core.ErrorDuplicateSigner{})
}

func TestServiceSignDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock_document.NewMockRepository(ctrl)
	mockRepo.EXPECT().
		AppendSignature(gomock.Any(), "alice", uint(1), "bob").
		Return(core.Document{
			ID:         1,
			Owner:      "alice",
			Signers:    []string{"bob"},
			Signatures: []core.Signature{{Signer: "bob"}},
		}, nil)

	s := NewService(mockRepo)
	signed, err := s.SignDocument(context.Background(), "alice", 1, "bob")

	assert.NoError(t, err)
	assert.True(t, signed.IsCompleted())
}
