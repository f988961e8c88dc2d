// Package bridge is the HTTP client for the qontinui runner's UI Bridge API.
// It covers both surfaces: the runner's own webview (control mode, under
// /ui-bridge/control/*) and an SDK-integrated external app (under /sdk/*).
package bridge

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the runner's UI Bridge port.
	DefaultPort = 9876
	// DefaultTimeout bounds ordinary API calls.
	DefaultTimeout = 30 * time.Second
	// DiscoveryTimeout bounds element discovery, which can rescan a full page.
	DiscoveryTimeout = 60 * time.Second
)

// Response is the runner's standard envelope.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Screenshot is a raw capture with the surface's reported logical size.
// Image bytes are decoded from the wire's base64 form.
type Screenshot struct {
	Image  []byte
	Width  float64
	Height float64
}

// Client talks to one runner instance.
type Client struct {
	baseURL          string
	http             *http.Client
	timeout          time.Duration
	discoveryTimeout time.Duration
}

// Options override the client's default timeouts. Zero values keep the
// defaults.
type Options struct {
	Timeout          time.Duration
	DiscoveryTimeout time.Duration
}

// DetectHost returns the runner host: QONTINUI_RUNNER_HOST if set, the WSL2
// Windows-host nameserver from /etc/resolv.conf if present, else localhost.
func DetectHost() string {
	if host := os.Getenv("QONTINUI_RUNNER_HOST"); host != "" {
		return host
	}
	if data, err := os.ReadFile("/etc/resolv.conf"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			fields := strings.Fields(line)
			if len(fields) >= 2 && fields[0] == "nameserver" {
				return fields[1]
			}
		}
	}
	return "localhost"
}

// DetectPort returns QONTINUI_RUNNER_PORT if set and numeric, else fallback.
func DetectPort(fallback int) int {
	if v := os.Getenv("QONTINUI_RUNNER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	if fallback == 0 {
		return DefaultPort
	}
	return fallback
}

// New creates a client for the runner at host:port with default timeouts.
// Empty host and zero port fall back to environment detection and the
// default port.
func New(host string, port int) *Client {
	return NewWithOptions(host, port, Options{})
}

// NewWithOptions creates a client with configured timeouts.
func NewWithOptions(host string, port int, opts Options) *Client {
	if host == "" {
		host = DetectHost()
	}
	if port == 0 {
		port = DetectPort(0)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.DiscoveryTimeout <= 0 {
		opts.DiscoveryTimeout = DiscoveryTimeout
	}
	return &Client{
		baseURL:          fmt.Sprintf("http://%s:%d", host, port),
		http:             &http.Client{},
		timeout:          opts.Timeout,
		discoveryTimeout: opts.DiscoveryTimeout,
	}
}

// BaseURL returns the runner base URL this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, endpoint string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) (*Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	// Apply the ordinary timeout unless the caller set a tighter or looser
	// deadline already (discovery uses its own, longer one).
	if _, ok := req.Context().Deadline(); !ok {
		ctx, cancel := context.WithTimeout(req.Context(), c.timeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to runner at %s (is qontinui-runner running?): %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("runner API error: %d - %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var envelope Response
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &envelope, nil
}

// call unwraps the envelope into out, surfacing runner-level failures as errors.
func (c *Client) call(resp *Response, err error, out any) error {
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Error != "" {
			return fmt.Errorf("runner: %s", resp.Error)
		}
		return fmt.Errorf("runner reported failure with no error message")
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}
	return nil
}

// Health checks that the runner is up.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/health")
	return c.call(resp, err, nil)
}

// screenshotWire is the runner's screenshot payload.
type screenshotWire struct {
	Screenshot string  `json:"screenshot"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

func decodeScreenshot(w screenshotWire) (*Screenshot, error) {
	if w.Screenshot == "" {
		return nil, fmt.Errorf("no screenshot data returned")
	}
	img, err := base64.StdEncoding.DecodeString(w.Screenshot)
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	return &Screenshot{Image: img, Width: w.Width, Height: w.Height}, nil
}
