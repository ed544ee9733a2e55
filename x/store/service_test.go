package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hashsign/hashsign/core"
	mock_core "github.com/hashsign/hashsign/core/mock"
)

func TestReadStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw, _ := json.Marshal(core.DocumentStore{Owner: "alice", DocumentCounter: 3})

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Read(gomock.Any(), "alice", core.ResourceDocumentStore).
		Return(json.RawMessage(raw), nil)

	s := NewService(mockLedger, nil)
	store, err := s.ReadStore(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Equal(t, uint(3), store.DocumentCounter)
}

func TestReadStoreNotRegistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Read(gomock.Any(), "nobody", core.ResourceDocumentStore).
		Return(nil, core.NewErrorNotFound())

	s := NewService(mockLedger, nil)
	_, err := s.ReadStore(context.Background(), "nobody")

	// true absence, not a flaky network
	assert.ErrorAs(t, err, &core.ErrorNotRegistered{})
	assert.False(t, errors.As(err, &core.ErrorTransport{}))
}

func TestReadStoreTransportFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Read(gomock.Any(), "alice", core.ResourceDocumentStore).
		Return(nil, core.NewErrorTransport(errors.New("connection refused")))

	s := NewService(mockLedger, nil)
	_, err := s.ReadStore(context.Background(), "alice")

	assert.ErrorAs(t, err, &core.ErrorTransport{})
	assert.False(t, errors.As(err, &core.ErrorNotRegistered{}))
}

func TestRegisterAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Submit(gomock.Any(), "alice", core.FnInitializeStore, []any{}).
		Return(json.RawMessage(`{}`), nil)

	s := NewService(mockLedger, nil)
	err := s.RegisterAccount(context.Background(), "alice")

	assert.NoError(t, err)
}

func TestRegisterAccountTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Submit(gomock.Any(), "alice", core.FnInitializeStore, []any{}).
		Return(nil, core.NewErrorAlreadyRegistered())

	s := NewService(mockLedger, nil)
	err := s.RegisterAccount(context.Background(), "alice")

	assert.ErrorAs(t, err, &core.ErrorAlreadyRegistered{})
}

func TestSubmitCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	raw, _ := json.Marshal(core.Document{ID: 5, Owner: "alice"})

	mockLedger := mock_core.NewMockLedger(ctrl)
	mockLedger.EXPECT().
		Submit(gomock.Any(), "alice", core.FnCreateDocument, []any{"QmTest", []string{"bob"}}).
		Return(json.RawMessage(raw), nil)

	s := NewService(mockLedger, nil)
	id, err := s.SubmitCreate(context.Background(), "alice", "QmTest", []string{"bob"})

	assert.NoError(t, err)
	assert.Equal(t, uint(5), id)
}

func TestSubmitCreateEmptySigners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// nothing is submitted
	mockLedger := mock_core.NewMockLedger(ctrl)

	s := NewService(mockLedger, nil)
	_, err := s.SubmitCreate(context.Background(), "alice", "QmTest", []string{})

	assert.ErrorAs(t, err, &core.ErrorSignerListEmpty{})
}

func TestSubmitSignErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		ledger error
		expect any
	}{
		{"document not found", core.NewErrorDocumentNotFound(), &core.ErrorDocumentNotFound{}},
		{"not a signer", core.NewErrorNotASigner(), &core.ErrorNotASigner{}},
		{"already signed", core.NewErrorAlreadySigned(), &core.ErrorAlreadySigned{}},
		{"already completed", core.NewErrorAlreadyCompleted(), &core.ErrorAlreadyCompleted{}},
		{"opaque rejection", errors.New("out of gas"), &core.ErrorTransactionRejected{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLedger := mock_core.NewMockLedger(ctrl)
			mockLedger.EXPECT().
				Submit(gomock.Any(), "alice", core.FnSignDocument, []any{uint(1), "bob"}).
				Return(nil, tc.ledger)

			s := NewService(mockLedger, nil)
			err := s.SubmitSign(context.Background(), "alice", 1, "bob")

			assert.ErrorAs(t, err, tc.expect)
		})
	}
}
