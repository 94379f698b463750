package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"medsum/internal/services"
	"medsum/internal/summary"
)

const (
	// FieldName is the multipart part that carries the document.
	FieldName = "file"
	// DefaultEndpointPath is the summarize route on the backend.
	DefaultEndpointPath = "/summarize"
	// FallbackServerMessage is used when a failed response carries no error text.
	FallbackServerMessage = "Server error"

	requestIDHeader = "X-Request-ID"
	component       = "summarizer"
)

// ErrMissingData reports a successful response without a data object.
var ErrMissingData = errors.New("response missing data")

// Config captures the runtime settings required to talk to the backend.
type Config struct {
	BaseURL        string
	EndpointPath   string
	TimeoutSeconds int
}

// Document is one file to summarize.
type Document struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Client posts documents to the summarize backend.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a summarizer client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	var timeout time.Duration
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		cfg: Config{
			BaseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			EndpointPath:   strings.TrimSpace(cfg.EndpointPath),
			TimeoutSeconds: cfg.TimeoutSeconds,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.EndpointPath == "" {
		client.cfg.EndpointPath = DefaultEndpointPath
	}
	return client
}

// Endpoint returns the absolute summarize URL.
func (c *Client) Endpoint() (string, error) {
	if c.cfg.BaseURL == "" {
		return "", services.Wrap(services.ErrConfiguration, component, "endpoint", "base url required", nil)
	}
	endpoint, err := url.JoinPath(c.cfg.BaseURL, c.cfg.EndpointPath)
	if err != nil {
		return "", services.Wrap(services.ErrConfiguration, component, "endpoint", "build url", err)
	}
	return endpoint, nil
}

// StatusError is a failure reported by the backend through a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("summarizer: http %d: %s", e.StatusCode, e.Reason())
}

// Reason is the user-facing failure text.
func (e *StatusError) Reason() string {
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	return FallbackServerMessage
}

// Unwrap tags status failures with the server marker.
func (e *StatusError) Unwrap() error { return services.ErrServer }

// Summarize uploads doc and returns the decoded summary record.
func (c *Client) Summarize(ctx context.Context, doc Document) (summary.Record, error) {
	var empty summary.Record
	if doc.Body == nil {
		return empty, services.Wrap(services.ErrValidation, component, "summarize", "document body required", nil)
	}
	endpoint, err := c.Endpoint()
	if err != nil {
		return empty, err
	}

	body, contentType, err := encodeForm(doc)
	if err != nil {
		return empty, services.Wrap(services.ErrValidation, component, "encode form", "", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return empty, services.Wrap(services.ErrConfiguration, component, "new request", "", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	if rid, ok := services.RequestIDFromContext(ctx); ok {
		req.Header.Set(requestIDHeader, rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return empty, services.Wrap(transportMarker(ctx, err), component, "post", "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return empty, services.Wrap(transportMarker(ctx, err), component, "read body", "", err)
	}

	var envelope summary.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return empty, services.Wrap(services.ErrParse, component, "decode body", fmt.Sprintf("http %d", resp.StatusCode), err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return empty, &StatusError{StatusCode: resp.StatusCode, Message: envelope.Error}
	}
	if envelope.Data == nil {
		return empty, services.Wrap(services.ErrParse, component, "decode body", "", ErrMissingData)
	}
	return *envelope.Data, nil
}

// Ping reports whether the backend answers HTTP at all. Any status counts as
// reachable; only transport failures are returned.
func (c *Client) Ping(ctx context.Context) error {
	if c.cfg.BaseURL == "" {
		return services.Wrap(services.ErrConfiguration, component, "ping", "base url required", nil)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL, nil)
	if err != nil {
		return services.Wrap(services.ErrConfiguration, component, "ping", "new request", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Wrap(transportMarker(ctx, err), component, "ping", "", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func encodeForm(doc Document) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	name := strings.TrimSpace(doc.Name)
	if name == "" {
		name = "document.pdf"
	}
	contentType := strings.TrimSpace(doc.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldName, escapeQuotes(name)))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, doc.Body); err != nil {
		return nil, "", fmt.Errorf("copy document: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func transportMarker(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return services.ErrTimeout
	}
	return services.ErrTransient
}
