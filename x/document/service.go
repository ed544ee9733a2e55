// Package document is the document lifecycle engine. It owns the transition
// logic for the per-account document store: create, sign, and the invariants
// between the signer list and the signature set.
package document

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/hashsign/hashsign/core"
)

var tracer = otel.Tracer("document")

type service struct {
	repo Repository
}

// NewService creates a new document service
func NewService(repo Repository) core.DocumentService {
	return &service{repo: repo}
}

// InitializeStore creates the account's document store. Re-registration
// fails with ErrorAlreadyRegistered.
func (s *service) InitializeStore(ctx context.Context, owner string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.InitializeStore")
	defer span.End()

	store, err := s.repo.CreateStore(ctx, owner)
	if err != nil {
		span.RecordError(err)
		return core.DocumentStore{}, err
	}

	slog.InfoContext(ctx, "document store initialized",
		slog.String("owner", owner),
		slog.String("module", "document"),
	)

	return store, nil
}

// CreateDocument validates the signer list and applies the create transition.
func (s *service) CreateDocument(ctx context.Context, owner string, contentID string, signers []string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.CreateDocument")
	defer span.End()

	if len(signers) == 0 {
		return core.Document{}, core.NewErrorSignerListEmpty()
	}

	seen := make(map[string]bool)
	for _, signer := range signers {
		if seen[signer] {
			return core.Document{}, core.NewErrorDuplicateSigner(signer)
		}
		seen[signer] = true
	}

	created, err := s.repo.CreateDocument(ctx, owner, contentID, signers)
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}

	slog.InfoContext(ctx, "document created",
		slog.String("owner", owner),
		slog.Any("id", created.ID),
		slog.String("module", "document"),
	)

	return created, nil
}

// SignDocument applies the sign transition. Completed documents are
// terminal; a signer may sign at most once.
func (s *service) SignDocument(ctx context.Context, owner string, documentID uint, signer string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.SignDocument")
	defer span.End()

	signed, err := s.repo.AppendSignature(ctx, owner, documentID, signer)
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}

	if signed.IsCompleted() {
		slog.InfoContext(ctx, "document completed",
			slog.String("owner", owner),
			slog.Any("id", documentID),
			slog.String("module", "document"),
		)
	}

	return signed, nil
}

// GetStore returns the account's store with documents and signatures.
func (s *service) GetStore(ctx context.Context, owner string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.GetStore")
	defer span.End()

	return s.repo.GetStore(ctx, owner)
}

// GetDocument returns one document by id.
func (s *service) GetDocument(ctx context.Context, owner string, documentID uint) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.GetDocument")
	defer span.End()

	return s.repo.GetDocument(ctx, owner, documentID)
}

// TotalDocuments returns the count number of documents
func (s *service) TotalDocuments(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Service.TotalDocuments")
	defer span.End()

	return s.repo.Total(ctx)
}
