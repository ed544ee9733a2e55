package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/hashsign/hashsign/core"
)

// PinningConfig holds the IPFS pinning service settings. The API is
// Pinata-compatible: a multipart pin endpoint and a public gateway for
// retrieval.
type PinningConfig struct {
	APIURL     string `yaml:"apiUrl"`
	GatewayURL string `yaml:"gatewayUrl"`
	APIKey     string `yaml:"apiKey"`
	SecretKey  string `yaml:"secretKey"`
}

type pinningClient struct {
	config PinningConfig
	client *http.Client
}

// NewPinningClient creates a blob client backed by an IPFS pinning service.
func NewPinningClient(cfg PinningConfig) core.BlobClient {
	return &pinningClient{
		config: cfg,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

type pinResponse struct {
	IpfsHash string `json:"IpfsHash"`
}

// Upload pins the payload and returns the content identifier assigned by
// the service.
func (c *pinningClient) Upload(ctx context.Context, payload []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Pinning.Upload")
	defer span.End()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "document")
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	if _, err := part.Write(payload); err != nil {
		span.RecordError(err)
		return "", err
	}
	if err := writer.Close(); err != nil {
		span.RecordError(err)
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL+"/pinning/pinFileToIPFS", &body)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("pinata_api_key", c.config.APIKey)
	req.Header.Set("pinata_secret_api_key", c.config.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("pinning service returned %d: %s", resp.StatusCode, string(respBody))
		span.RecordError(err)
		return "", err
	}

	var pinned pinResponse
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		span.RecordError(err)
		return "", err
	}

	return pinned.IpfsHash, nil
}

// Download fetches the payload through the gateway.
func (c *pinningClient) Download(ctx context.Context, contentID string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Registrar.Pinning.Download")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.GatewayURL+"/ipfs/"+contentID, nil)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, core.NewErrorNotFound()
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("gateway returned %d", resp.StatusCode)
		span.RecordError(err)
		return nil, err
	}

	return io.ReadAll(resp.Body)
}
