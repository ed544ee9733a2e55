// Package ledger is the identity/transaction layer boundary. The rest of the
// system reaches it only through the core.Ledger contract: a state read and a
// transition submission. The embedded implementation executes transitions
// in-process through the document lifecycle engine; the remote client speaks
// the same contract over HTTP.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"

	"github.com/hashsign/hashsign/core"
)

var tracer = otel.Tracer("ledger")

type embedded struct {
	document core.DocumentService
}

// NewEmbedded creates a ledger that applies transitions in-process. The
// engine's store-row lock serializes transitions per document store, so a
// submission either fully applies or is rejected as a unit.
func NewEmbedded(document core.DocumentService) core.Ledger {
	return &embedded{document: document}
}

// Read returns the named resource of the account. A missing resource is
// ErrorNotFound, never conflated with a transport failure.
func (l *embedded) Read(ctx context.Context, account string, resourceType string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Embedded.Read")
	defer span.End()

	switch resourceType {
	case core.ResourceDocumentStore:
		store, err := l.document.GetStore(ctx, account)
		if err != nil {
			if errors.As(err, &core.ErrorNotRegistered{}) {
				return nil, core.NewErrorNotFound()
			}
			span.RecordError(err)
			return nil, err
		}
		return json.Marshal(store)
	default:
		return nil, core.NewErrorNotFound()
	}
}

// Submit applies one transition against the account's store. Arguments are
// positional, per function:
//
//	initialize_store()
//	create_document(contentID string, signers []string)
//	sign_document(documentID uint, signer string)
func (l *embedded) Submit(ctx context.Context, account string, function string, args []any) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Embedded.Submit")
	defer span.End()

	switch function {
	case core.FnInitializeStore:
		store, err := l.document.InitializeStore(ctx, account)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return json.Marshal(store)

	case core.FnCreateDocument:
		if len(args) != 2 {
			return nil, core.NewErrorTransactionRejected(fmt.Sprintf("create_document expects 2 args, got %d", len(args)))
		}
		contentID, err := argString(args[0])
		if err != nil {
			return nil, core.NewErrorTransactionRejected(err.Error())
		}
		signers, err := argStringSlice(args[1])
		if err != nil {
			return nil, core.NewErrorTransactionRejected(err.Error())
		}
		created, err := l.document.CreateDocument(ctx, account, contentID, signers)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return json.Marshal(created)

	case core.FnSignDocument:
		if len(args) != 2 {
			return nil, core.NewErrorTransactionRejected(fmt.Sprintf("sign_document expects 2 args, got %d", len(args)))
		}
		documentID, err := argUint(args[0])
		if err != nil {
			return nil, core.NewErrorTransactionRejected(err.Error())
		}
		signer, err := argString(args[1])
		if err != nil {
			return nil, core.NewErrorTransactionRejected(err.Error())
		}
		signed, err := l.document.SignDocument(ctx, account, documentID, signer)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		return json.Marshal(signed)

	default:
		return nil, core.NewErrorTransactionRejected(fmt.Sprintf("unknown function: %s", function))
	}
}

func argString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected string argument, got %T", v)
	}
	return s, nil
}

// argStringSlice accepts both []string from in-process callers and []any
// from a decoded JSON submission.
func argStringSlice(v any) ([]string, error) {
	switch arg := v.(type) {
	case []string:
		return arg, nil
	case []any:
		out := make([]string, 0, len(arg))
		for _, e := range arg {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list element, got %T", e)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list argument, got %T", v)
	}
}

func argUint(v any) (uint, error) {
	switch arg := v.(type) {
	case uint:
		return arg, nil
	case int:
		if arg < 0 {
			return 0, fmt.Errorf("expected non-negative integer argument, got %d", arg)
		}
		return uint(arg), nil
	case float64:
		if arg < 0 || arg != float64(uint(arg)) {
			return 0, fmt.Errorf("expected non-negative integer argument, got %v", arg)
		}
		return uint(arg), nil
	default:
		return 0, fmt.Errorf("expected integer argument, got %T", v)
	}
}
