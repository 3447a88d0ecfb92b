// Package parsing implements the client for the external resume parsing provider.
package parsing

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"linkup/config"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// parseRequest is the provider's wire format. The document travels base64
// encoded inside a JSON envelope.
type parseRequest struct {
	DocumentAsBase64String string `json:"documentAsBase64String"`
	DocumentLastModified   string `json:"documentLastModified"`
	ContentType            string `json:"contentType,omitempty"`
}

// client is a pass-through client for the parsing provider's HTTP API.
// It does not interpret the provider's response.
type client struct {
	endpoint   string
	accountID  string
	serviceKey string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient is the constructor for the resume parsing client.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.ResumeParser, error) {
	if cfg.Parsing == nil || cfg.Parsing.Endpoint == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("parsing provider endpoint must be provided")
	}

	timeout := cfg.Parsing.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		endpoint:   cfg.Parsing.Endpoint,
		accountID:  cfg.Parsing.AccountID,
		serviceKey: cfg.Parsing.ServiceKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Parse submits the document to the provider and returns its JSON response verbatim.
func (c *client) Parse(ctx context.Context, document []byte, contentType string) (*service.ParsedResume, error) {
	payload, err := json.Marshal(parseRequest{
		DocumentAsBase64String: base64.StdEncoding.EncodeToString(document),
		DocumentLastModified:   time.Now().Format("2006-01-02"),
		ContentType:            contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode parse request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build parse request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Account-Id", c.accountID)
	req.Header.Set("Service-Key", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Parsing provider unreachable", slog.Any("error", err))

		return nil, domainerrors.ErrParsingUnavailable.WrapMessage("failed to reach parsing provider")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read parse response")
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Parsing provider returned an error",
			slog.Int("status", resp.StatusCode), slog.Int("bodyBytes", len(body)))

		return nil, domainerrors.ErrParsingUnavailable.WrapMessage("parsing provider rejected the document")
	}

	return &service.ParsedResume{Raw: body}, nil
}
