package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production generation endpoint. The app talks to a
// single fixed service; overriding the base URL is intended for tests and
// local development against skygend.
const DefaultBaseURL = "https://api.skygen.app"

// Options configures a Client. The zero value targets production with no
// request timeout, matching the app's original behavior of waiting on the
// service indefinitely.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client issues the two generation calls plus raw image downloads.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client from Options, applying defaults.
func NewClient(opts Options) *Client {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{httpClient: client, baseURL: base}
}

type submitRequest struct {
	Query string `json:"q"`
}

// envelope is the response shape shared by /gen and /check. Only one of the
// nested fields is populated per call.
type envelope struct {
	Results struct {
		ID   string   `json:"id"`
		URLs []string `json:"urls"`
	} `json:"results"`
}

// Submit posts a prompt to the service and returns the assigned job id.
func (c *Client) Submit(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(submitRequest{Query: prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/gen", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	out, err := c.doEnvelope(req)
	if err != nil {
		return "", err
	}
	id := strings.TrimSpace(out.Results.ID)
	if id == "" {
		return "", fmt.Errorf("%w: missing results.id", ErrMalformedResponse)
	}
	return id, nil
}

// FetchResult polls the service once for the given job and returns the first
// result URL. The service may return several URLs; the app only ever shows
// the first.
func (c *Client) FetchResult(ctx context.Context, jobID string) (string, error) {
	endpoint := c.baseURL + "/check?id=" + url.QueryEscape(jobID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	out, err := c.doEnvelope(req)
	if err != nil {
		return "", err
	}
	if len(out.Results.URLs) == 0 {
		return "", fmt.Errorf("%w: empty results.urls", ErrMalformedResponse)
	}
	first := strings.TrimSpace(out.Results.URLs[0])
	if first == "" {
		return "", fmt.Errorf("%w: blank result url", ErrMalformedResponse)
	}
	return first, nil
}

// Download fetches the raw image bytes behind a result URL.
func (c *Client) Download(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: http %d fetching image", ErrTransport, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return data, nil
}

func (c *Client) doEnvelope(req *http.Request) (*envelope, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: http %d", ErrTransport, resp.StatusCode)
	}
	var out envelope
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &out, nil
}
