//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
	"encoding/json"
)

// Ledger is the narrow identity/transaction layer contract. The account id
// names the DocumentStore being read or transitioned. Read returns
// ErrorNotFound when the resource does not exist, distinguishable from
// ErrorTransport.
type Ledger interface {
	Read(ctx context.Context, account string, resourceType string) (json.RawMessage, error)
	Submit(ctx context.Context, account string, function string, args []any) (json.RawMessage, error)
}

// BlobClient is the opaque content-addressed blob store contract.
type BlobClient interface {
	Upload(ctx context.Context, payload []byte) (string, error)
	Download(ctx context.Context, contentID string) ([]byte, error)
}

// DocumentService is the document lifecycle engine.
type DocumentService interface {
	InitializeStore(ctx context.Context, owner string) (DocumentStore, error)
	CreateDocument(ctx context.Context, owner string, contentID string, signers []string) (Document, error)
	SignDocument(ctx context.Context, owner string, documentID uint, signer string) (Document, error)

	GetStore(ctx context.Context, owner string) (DocumentStore, error)
	GetDocument(ctx context.Context, owner string, documentID uint) (Document, error)
	TotalDocuments(ctx context.Context) (int64, error)
}

// RegistrarService uploads payloads to the blob store and fetches them back.
type RegistrarService interface {
	Store(ctx context.Context, payload []byte) (string, error)
	Fetch(ctx context.Context, contentID string) ([]byte, error)
}

// StoreService is the document store accessor. It reaches the ledger only
// through the Ledger contract and translates rejections into typed errors.
type StoreService interface {
	ReadStore(ctx context.Context, account string) (DocumentStore, error)
	ReadStoreFresh(ctx context.Context, account string) (DocumentStore, error)
	RegisterAccount(ctx context.Context, account string) error
	SubmitCreate(ctx context.Context, account string, contentID string, signers []string) (uint, error)
	SubmitSign(ctx context.Context, owner string, documentID uint, signer string) error
}

// WorkflowService is the surface exposed to the presentation layer. No other
// mutation path into the document store is permitted.
type WorkflowService interface {
	Onboard(ctx context.Context, account string) error
	CreateDocument(ctx context.Context, account string, payload []byte, signers []string) (uint, error)
	SignDocument(ctx context.Context, signer string, owner string, documentID uint) error
	ViewDocument(ctx context.Context, contentID string) ([]byte, error)
	ListDocuments(ctx context.Context, account string) ([]Document, error)
}
