// Package store is the document store accessor. It reads and writes the
// authoritative per-account document collection exclusively through the
// ledger contract, translating rejections into typed errors the callers can
// branch on.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel"

	"github.com/hashsign/hashsign/core"
)

var tracer = otel.Tracer("store")

// Store reads are cached briefly; the ledger never guarantees
// read-your-writes anyway, so callers needing fresh state use
// ReadStoreFresh.
const cacheTTL = 10 // seconds

type service struct {
	ledger core.Ledger
	mc     *memcache.Client
}

// NewService creates a new store accessor service
func NewService(ledger core.Ledger, mc *memcache.Client) core.StoreService {
	return &service{ledger: ledger, mc: mc}
}

func cacheKey(account string) string {
	return "store:" + account
}

// ReadStore returns the account's store, possibly from cache.
func (s *service) ReadStore(ctx context.Context, account string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.ReadStore")
	defer span.End()

	if s.mc != nil {
		item, err := s.mc.Get(cacheKey(account))
		if err == nil {
			var store core.DocumentStore
			if err := json.Unmarshal(item.Value, &store); err == nil {
				return store, nil
			}
		}
	}

	return s.ReadStoreFresh(ctx, account)
}

// ReadStoreFresh bypasses the cache and reads current ledger state.
func (s *service) ReadStoreFresh(ctx context.Context, account string) (core.DocumentStore, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.ReadStoreFresh")
	defer span.End()

	raw, err := s.ledger.Read(ctx, account, core.ResourceDocumentStore)
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return core.DocumentStore{}, core.NewErrorNotRegistered()
		}
		if errors.As(err, &core.ErrorTransport{}) {
			return core.DocumentStore{}, err
		}
		span.RecordError(err)
		return core.DocumentStore{}, core.NewErrorTransport(err)
	}

	var store core.DocumentStore
	if err := json.Unmarshal(raw, &store); err != nil {
		span.RecordError(err)
		return core.DocumentStore{}, core.NewErrorTransport(err)
	}

	if s.mc != nil {
		if raw, err := json.Marshal(store); err == nil {
			err = s.mc.Set(&memcache.Item{Key: cacheKey(account), Value: raw, Expiration: cacheTTL})
			if err != nil {
				slog.DebugContext(ctx, "failed to cache store", slog.String("error", err.Error()), slog.String("module", "store"))
			}
		}
	}

	return store, nil
}

// RegisterAccount submits the initialize transition. An already-registered
// account fails with ErrorAlreadyRegistered; a second store is never
// created. Idempotency, where wanted, belongs to the orchestrator.
func (s *service) RegisterAccount(ctx context.Context, account string) error {
	ctx, span := tracer.Start(ctx, "Store.Service.RegisterAccount")
	defer span.End()

	_, err := s.ledger.Submit(ctx, account, core.FnInitializeStore, []any{})
	if err != nil {
		span.RecordError(err)
		return mapSubmitError(err)
	}

	s.invalidate(ctx, account)
	return nil
}

// SubmitCreate submits the create transition and returns the assigned
// document id. The empty signer list is rejected before any submission.
func (s *service) SubmitCreate(ctx context.Context, account string, contentID string, signers []string) (uint, error) {
	ctx, span := tracer.Start(ctx, "Store.Service.SubmitCreate")
	defer span.End()

	if len(signers) == 0 {
		return 0, core.NewErrorSignerListEmpty()
	}

	raw, err := s.ledger.Submit(ctx, account, core.FnCreateDocument, []any{contentID, signers})
	if err != nil {
		span.RecordError(err)
		return 0, mapSubmitError(err)
	}

	var created core.Document
	if err := json.Unmarshal(raw, &created); err != nil {
		span.RecordError(err)
		return 0, core.NewErrorTransport(err)
	}

	s.invalidate(ctx, account)
	return created.ID, nil
}

// SubmitSign submits the sign transition against the owner's store.
func (s *service) SubmitSign(ctx context.Context, owner string, documentID uint, signer string) error {
	ctx, span := tracer.Start(ctx, "Store.Service.SubmitSign")
	defer span.End()

	_, err := s.ledger.Submit(ctx, owner, core.FnSignDocument, []any{documentID, signer})
	if err != nil {
		span.RecordError(err)
		return mapSubmitError(err)
	}

	s.invalidate(ctx, owner)
	return nil
}

func (s *service) invalidate(ctx context.Context, account string) {
	if s.mc == nil {
		return
	}
	err := s.mc.Delete(cacheKey(account))
	if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
		slog.WarnContext(ctx, "failed to invalidate store cache", slog.String("error", err.Error()), slog.String("module", "store"))
	}
}

// mapSubmitError keeps the typed rejections and transport failures intact
// and folds everything else into ErrorTransactionRejected, opaque to this
// layer.
func mapSubmitError(err error) error {
	switch {
	case errors.As(err, &core.ErrorNotRegistered{}),
		errors.As(err, &core.ErrorAlreadyRegistered{}),
		errors.As(err, &core.ErrorDocumentNotFound{}),
		errors.As(err, &core.ErrorNotASigner{}),
		errors.As(err, &core.ErrorAlreadySigned{}),
		errors.As(err, &core.ErrorAlreadyCompleted{}),
		errors.As(err, &core.ErrorSignerListEmpty{}),
		errors.As(err, &core.ErrorDuplicateSigner{}),
		errors.As(err, &core.ErrorTransport{}):
		return err
	case errors.As(err, &core.ErrorTransactionRejected{}):
		return err
	default:
		return core.NewErrorTransactionRejected(err.Error())
	}
}
