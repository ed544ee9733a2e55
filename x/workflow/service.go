// Package workflow sequences the registrar and the store accessor into the
// operations exposed to the presentation layer. This is the entire surface
// the UI may call; there is no other mutation path into the document store.
package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"

	"github.com/hashsign/hashsign/core"
)

var tracer = otel.Tracer("workflow")

type service struct {
	registrar core.RegistrarService
	store     core.StoreService
	rdb       *redis.Client
}

// NewService creates a new workflow service
func NewService(registrar core.RegistrarService, store core.StoreService, rdb *redis.Client) core.WorkflowService {
	return &service{registrar: registrar, store: store, rdb: rdb}
}

// Onboard registers the account's document store if it does not exist yet.
// Idempotent from the caller's perspective: an existing registration, or a
// registration lost to a concurrent onboard, both succeed.
func (s *service) Onboard(ctx context.Context, account string) error {
	ctx, span := tracer.Start(ctx, "Workflow.Service.Onboard")
	defer span.End()

	_, err := s.store.ReadStore(ctx, account)
	if err == nil {
		return nil
	}
	if !errors.As(err, &core.ErrorNotRegistered{}) {
		span.RecordError(err)
		return err
	}

	err = s.store.RegisterAccount(ctx, account)
	if err != nil {
		if errors.As(err, &core.ErrorAlreadyRegistered{}) {
			return nil
		}
		span.RecordError(err)
		return err
	}

	return nil
}

// CreateDocument uploads the payload and submits the create transition.
// The two phases cross independent systems and are not atomic: when the
// submission fails after a successful upload the blob is left orphaned,
// which is harmless beyond storage cost because the store is
// content-addressed. No rollback is attempted; the operation fails as a
// whole and no document is created.
func (s *service) CreateDocument(ctx context.Context, account string, payload []byte, signers []string) (uint, error) {
	ctx, span := tracer.Start(ctx, "Workflow.Service.CreateDocument")
	defer span.End()

	contentID, err := s.registrar.Store(ctx, payload)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}

	documentID, err := s.store.SubmitCreate(ctx, account, contentID, signers)
	if err != nil {
		slog.ErrorContext(ctx, "create transition failed after upload, blob orphaned",
			slog.String("contentId", contentID),
			slog.String("account", account),
			slog.String("error", err.Error()),
			slog.String("module", "workflow"),
		)
		span.RecordError(err)
		return 0, err
	}

	s.publish(ctx, account, core.EventDocumentCreated, documentID, "")

	return documentID, nil
}

// SignDocument submits the sign transition against the owner's store on
// behalf of the signer.
func (s *service) SignDocument(ctx context.Context, signer string, owner string, documentID uint) error {
	ctx, span := tracer.Start(ctx, "Workflow.Service.SignDocument")
	defer span.End()

	err := s.store.SubmitSign(ctx, owner, documentID, signer)
	if err != nil {
		span.RecordError(err)
		return err
	}

	s.publish(ctx, owner, core.EventDocumentSigned, documentID, signer)

	if s.rdb != nil {
		fresh, err := s.store.ReadStoreFresh(ctx, owner)
		if err == nil {
			for _, d := range fresh.Documents {
				if d.ID == documentID && d.IsCompleted() {
					s.publish(ctx, owner, core.EventDocumentCompleted, documentID, signer)
					break
				}
			}
		}
	}

	return nil
}

// ViewDocument returns the payload bytes for local rendering.
func (s *service) ViewDocument(ctx context.Context, contentID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Workflow.Service.ViewDocument")
	defer span.End()

	return s.registrar.Fetch(ctx, contentID)
}

// ListDocuments reads the account's current documents. Always a fresh read,
// so a caller refreshing after a submission observes its own write.
func (s *service) ListDocuments(ctx context.Context, account string) ([]core.Document, error) {
	ctx, span := tracer.Start(ctx, "Workflow.Service.ListDocuments")
	defer span.End()

	fresh, err := s.store.ReadStoreFresh(ctx, account)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return fresh.Documents, nil
}

// publish emits a lifecycle event on the account's channel. Event delivery
// is best effort and never fails the operation.
func (s *service) publish(ctx context.Context, owner string, action string, documentID uint, signer string) {
	if s.rdb == nil {
		return
	}

	event := core.Event{
		ID:         xid.New().String(),
		Owner:      owner,
		Action:     action,
		DocumentID: documentID,
		Signer:     signer,
		Timestamp:  time.Now(),
	}

	raw, err := json.Marshal(event)
	if err != nil {
		return
	}

	err = s.rdb.Publish(ctx, "hashsign:"+owner, raw).Err()
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish lifecycle event to Redis",
			slog.String("error", err.Error()),
			slog.String("module", "workflow"),
		)
	}
}
