//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mock/repository.go
package document

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hashsign/hashsign/core"
)

// Repository persists document stores, documents and signatures. Every
// transition runs in one postgres transaction that locks the owning store
// row, so transitions against a given store are serialized and either fully
// apply or not at all.
type Repository interface {
	CreateStore(ctx context.Context, owner string) (core.DocumentStore, error)
	GetStore(ctx context.Context, owner string) (core.DocumentStore, error)
	CreateDocument(ctx context.Context, owner string, contentID string, signers []string) (core.Document, error)
	AppendSignature(ctx context.Context, owner string, documentID uint, signer string) (core.Document, error)
	GetDocument(ctx context.Context, owner string, documentID uint) (core.Document, error)
	Total(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new document repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateStore creates the per-account document store. Exactly once per
// account: a second call fails with ErrorAlreadyRegistered and never
// creates a second store.
func (r *repository) CreateStore(ctx context.Context, owner string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.CreateStore")
	defer span.End()

	store := core.DocumentStore{
		Owner:     owner,
		Documents: []core.Document{},
	}

	err := r.db.WithContext(ctx).Create(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.DocumentStore{}, core.NewErrorAlreadyRegistered()
		}
		span.RecordError(err)
		return core.DocumentStore{}, err
	}

	return store, nil
}

// GetStore returns the store with its documents and their signatures filled.
func (r *repository) GetStore(ctx context.Context, owner string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.GetStore")
	defer span.End()

	var store core.DocumentStore
	if err := r.db.WithContext(ctx).First(&store, "owner = ?", owner).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.DocumentStore{}, core.NewErrorNotRegistered()
		}
		span.RecordError(err)
		return core.DocumentStore{}, err
	}

	var documents []core.Document
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("id asc").Find(&documents).Error
	if err != nil {
		span.RecordError(err)
		return core.DocumentStore{}, err
	}

	var signatures []core.Signature
	err = r.db.WithContext(ctx).Where("owner = ?", owner).Order("id asc").Find(&signatures).Error
	if err != nil {
		span.RecordError(err)
		return core.DocumentStore{}, err
	}

	byDocument := make(map[uint][]core.Signature)
	for _, s := range signatures {
		byDocument[s.DocumentID] = append(byDocument[s.DocumentID], s)
	}
	for i := range documents {
		documents[i].Signatures = byDocument[documents[i].ID]
		if documents[i].Signatures == nil {
			documents[i].Signatures = []core.Signature{}
		}
	}

	store.Documents = documents
	return store, nil
}

// CreateDocument allocates the next id from the owner's counter and inserts
// the document, all under the store row lock. Ids are dense and strictly
// increasing; a failed transaction leaves the counter untouched.
func (r *repository) CreateDocument(ctx context.Context, owner string, contentID string, signers []string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.CreateDocument")
	defer span.End()

	var created core.Document
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store core.DocumentStore
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&store, "owner = ?", owner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotRegistered()
			}
			return err
		}

		next := store.DocumentCounter + 1
		created = core.Document{
			ID:         next,
			Owner:      owner,
			Creator:    owner,
			ContentID:  contentID,
			Signers:    signers,
			Signatures: []core.Signature{},
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		return tx.Model(&core.DocumentStore{}).
			Where("owner = ?", owner).
			Update("document_counter", next).Error
	})
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}

	return created, nil
}

// AppendSignature validates the sign transition against current committed
// state and appends the signature. Checks run in order: document exists,
// not completed, signer membership, no prior signature.
func (r *repository) AppendSignature(ctx context.Context, owner string, documentID uint, signer string) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.AppendSignature")
	defer span.End()

	var document core.Document
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var store core.DocumentStore
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&store, "owner = ?", owner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorNotRegistered()
			}
			return err
		}

		err = tx.First(&document, "owner = ? AND id = ?", owner, documentID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return core.NewErrorDocumentNotFound()
			}
			return err
		}

		err = tx.Where("owner = ? AND document_id = ?", owner, documentID).
			Order("id asc").Find(&document.Signatures).Error
		if err != nil {
			return err
		}

		if document.IsCompleted() {
			return core.NewErrorAlreadyCompleted()
		}
		if !document.IsSigner(signer) {
			return core.NewErrorNotASigner()
		}
		if document.HasSigned(signer) {
			return core.NewErrorAlreadySigned()
		}

		signature := core.Signature{
			Owner:      owner,
			DocumentID: documentID,
			Signer:     signer,
		}
		if err := tx.Create(&signature).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return core.NewErrorAlreadySigned()
			}
			return err
		}

		document.Signatures = append(document.Signatures, signature)
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}

	return document, nil
}

// GetDocument returns one document with its signatures filled.
func (r *repository) GetDocument(ctx context.Context, owner string, documentID uint) (core.Document, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.GetDocument")
	defer span.End()

	var document core.Document
	err := r.db.WithContext(ctx).First(&document, "owner = ? AND id = ?", owner, documentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Document{}, core.NewErrorDocumentNotFound()
		}
		span.RecordError(err)
		return core.Document{}, err
	}

	err = r.db.WithContext(ctx).Where("owner = ? AND document_id = ?", owner, documentID).
		Order("id asc").Find(&document.Signatures).Error
	if err != nil {
		span.RecordError(err)
		return core.Document{}, err
	}

	return document, nil
}

// Total returns the count number of documents
func (r *repository) Total(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Document.Repository.Total")
	defer span.End()

	var count int64
	err := r.db.WithContext(ctx).Model(&core.Document{}).Count(&count).Error
	return count, err
}
