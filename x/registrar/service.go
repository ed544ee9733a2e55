// Package registrar uploads document payloads to the content-addressed blob
// store and fetches them back for viewing. It holds no state of its own.
package registrar

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/hashsign/hashsign/core"
)

var tracer = otel.Tracer("registrar")

type service struct {
	blob core.BlobClient
}

// NewService creates a new registrar service
func NewService(blob core.BlobClient) core.RegistrarService {
	return &service{blob: blob}
}

// Store uploads the payload and returns its content identifier. Oversized
// payloads are rejected before any network call. Upload failures are not
// retried here; the caller decides whether to re-invoke, and re-uploading
// the same payload is safe because the store is content-addressed.
func (s *service) Store(ctx context.Context, payload []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Service.Store")
	defer span.End()

	if int64(len(payload)) > core.MaxUploadBytes {
		return "", core.NewErrorPayloadTooLarge(int64(len(payload)), core.MaxUploadBytes)
	}

	contentID, err := s.blob.Upload(ctx, payload)
	if err != nil {
		span.RecordError(err)
		return "", core.NewErrorUploadFailed(err)
	}

	slog.InfoContext(ctx, "payload stored",
		slog.String("contentId", contentID),
		slog.Int("size", len(payload)),
		slog.String("module", "registrar"),
	)

	return contentID, nil
}

// Fetch retrieves the payload for a previously stored identifier.
func (s *service) Fetch(ctx context.Context, contentID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Service.Fetch")
	defer span.End()

	payload, err := s.blob.Download(ctx, contentID)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorFetchFailed(err)
	}

	return payload, nil
}
