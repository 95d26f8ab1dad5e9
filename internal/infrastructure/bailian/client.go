package bailian

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"haitch/internal/shared/config"
	"haitch/internal/shared/logger"
)

const defaultPollInterval = 3 * time.Second

// Client talks to the Bailian knowledge-base management API and the
// DashScope application API. Base URLs are overridable for tests.
type Client struct {
	cfg          *config.KnowledgeConfig
	httpClient   *http.Client
	baseURL      string
	appBaseURL   string
	pollInterval time.Duration
	logger       logger.Interface
}

type Option func(*Client)

// WithBaseURL overrides the management API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithAppBaseURL overrides the DashScope application API base URL.
func WithAppBaseURL(u string) Option {
	return func(c *Client) { c.appBaseURL = u }
}

// WithPollInterval overrides the parse-status polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func NewClient(cfg *config.KnowledgeConfig, log logger.Interface, opts ...Option) *Client {
	c := &Client{
		cfg:          cfg,
		httpClient:   &http.Client{Timeout: 60 * time.Second},
		baseURL:      "https://" + cfg.Endpoint,
		appBaseURL:   "https://dashscope.aliyuncs.com",
		pollInterval: defaultPollInterval,
		logger:       log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// doManagement performs one signed call against the management API and
// decodes the JSON response into out.
func (c *Client) doManagement(ctx context.Context, method, path, action string, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.sign(req, action, payload)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("%s failed: %s (%s)", action, apiErr.Message, apiErr.Code)
		}
		return fmt.Errorf("%s failed with status %d", action, resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", action, err)
		}
	}
	return nil
}

// sign applies the ACS V3 HMAC-SHA256 signature.
func (c *Client) sign(req *http.Request, action string, payload []byte) {
	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	nonce := uuid.NewString()
	contentHash := sha256Hex(payload)

	req.Header.Set("Host", req.URL.Host)
	req.Header.Set("x-acs-action", action)
	req.Header.Set("x-acs-version", "2023-12-29")
	req.Header.Set("x-acs-date", now)
	req.Header.Set("x-acs-signature-nonce", nonce)
	req.Header.Set("x-acs-content-sha256", contentHash)

	signedHeaders := []string{"host", "x-acs-action", "x-acs-content-sha256", "x-acs-date", "x-acs-signature-nonce", "x-acs-version"}
	var canonicalHeaders strings.Builder
	for _, h := range signedHeaders {
		canonicalHeaders.WriteString(h)
		canonicalHeaders.WriteString(":")
		canonicalHeaders.WriteString(strings.TrimSpace(req.Header.Get(h)))
		canonicalHeaders.WriteString("\n")
	}

	canonicalRequest := strings.Join([]string{
		req.Method,
		req.URL.EscapedPath(),
		canonicalQuery(req.URL),
		canonicalHeaders.String(),
		strings.Join(signedHeaders, ";"),
		contentHash,
	}, "\n")

	stringToSign := "ACS3-HMAC-SHA256\n" + sha256Hex([]byte(canonicalRequest))

	mac := hmac.New(sha256.New, []byte(c.cfg.AccessKeySecret))
	mac.Write([]byte(stringToSign))
	signature := hex.EncodeToString(mac.Sum(nil))

	req.Header.Set("Authorization", fmt.Sprintf(
		"ACS3-HMAC-SHA256 Credential=%s,SignedHeaders=%s,Signature=%s",
		c.cfg.AccessKeyID, strings.Join(signedHeaders, ";"), signature))
}

func canonicalQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}
	values, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return u.RawQuery
	}
	return values.Encode()
}

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
