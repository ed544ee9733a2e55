package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hashsign/hashsign/core"
)

const defaultTimeout = 10 * time.Second

type remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote creates a ledger client for a transaction layer running
// elsewhere. Network failures surface as ErrorTransport; rejections come
// back as the same typed errors the embedded ledger returns.
func NewRemote(endpoint string) core.Ledger {
	return &remote{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type remoteResponse struct {
	Status  string          `json:"status"`
	Content json.RawMessage `json:"content"`
	Error   *wireError      `json:"error"`
}

func (l *remote) Read(ctx context.Context, account string, resourceType string) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Remote.Read")
	defer span.End()

	url := fmt.Sprintf("%s/api/v1/ledger/%s/resources/%s", l.endpoint, account, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	var response remoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	if response.Status != "ok" {
		if response.Error != nil && response.Error.Code == codeNotFound {
			return nil, core.NewErrorNotFound()
		}
		return nil, core.NewErrorTransport(fmt.Errorf("ledger read failed: %s", string(body)))
	}

	return response.Content, nil
}

func (l *remote) Submit(ctx context.Context, account string, function string, args []any) (json.RawMessage, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Remote.Submit")
	defer span.End()

	payload, err := json.Marshal(transitionRequest{Function: function, Args: args})
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	url := fmt.Sprintf("%s/api/v1/ledger/%s/transitions", l.endpoint, account)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	var response remoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		span.RecordError(err)
		return nil, core.NewErrorTransport(err)
	}

	if response.Status != "ok" {
		if response.Error != nil {
			return nil, fromWireError(*response.Error)
		}
		return nil, core.NewErrorTransactionRejected(string(body))
	}

	return response.Content, nil
}
