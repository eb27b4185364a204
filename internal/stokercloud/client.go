package stokercloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL   = "http://www.stokercloud.dk/"
	defaultUserAgent = "stoker/0.1"
	defaultCacheTime = 10 * time.Second
	defaultTimeout   = 10 * time.Second

	loginPath  = "v2/dataout2/login.php"
	statusPath = "v16bckbeta/dataout2/controllerdata2.php"

	// screenSelector chooses the telemetry fields the status endpoint returns.
	screenSelector = "b1,17,b2,5,b3,4,b4,6,b5,12,b6,14,b7,15,b8,16,b9,9,b10,7," +
		"d1,3,d2,4,d3,4,d4,0,d5,0,d6,0,d7,0,d8,0,d9,0,d10,0," +
		"h1,2,h2,3,h3,5,h4,13,h5,4,h6,1,h7,9,h8,10,h9,7,h10,8," +
		"w1,2,w2,3,w3,9,w4,4,w5,5"

	// maxTokenRefreshes bounds re-authentication within a single fetch.
	maxTokenRefreshes = 1
)

// ClientOptions configure a Client. Only User is required.
type ClientOptions struct {
	User     string
	Password string // held for endpoints that need it; login does not send it

	// CacheTime is how long a fetched document is served without a new
	// request. Nil means the default of 10s, zero disables the cache and
	// negative values are rejected. See CacheFor.
	CacheTime *time.Duration
	// Timeout bounds each HTTP request when HTTPClient is nil.
	Timeout time.Duration
	BaseURL string

	HTTPClient *http.Client
	Logger     zerolog.Logger
	Now        func() time.Time
}

// CacheFor returns a CacheTime option of d.
func CacheFor(d time.Duration) *time.Duration {
	return &d
}

// Client keeps a session token and a short-lived cache of the status
// document. A mutex serializes FetchStatus and RefreshToken, so at most one
// request is in flight per Client.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	user      string
	password  string
	cacheTime time.Duration
	log       zerolog.Logger
	now       func() time.Time

	mu          sync.Mutex
	token       string
	credentials json.RawMessage
	cached      *Document
	fetchedAt   time.Time
}

// NewClient validates opts and builds a Client.
func NewClient(opts ClientOptions) (*Client, error) {
	user := strings.TrimSpace(opts.User)
	if user == "" {
		return nil, fmt.Errorf("stokercloud: user is required")
	}
	cacheTime := defaultCacheTime
	if opts.CacheTime != nil {
		cacheTime = *opts.CacheTime
	}
	if cacheTime < 0 {
		return nil, fmt.Errorf("stokercloud: cache time must not be negative, got %s", cacheTime)
	}
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Client{
		baseURL:   base,
		http:      httpClient,
		userAgent: defaultUserAgent,
		user:      user,
		password:  opts.Password,
		cacheTime: cacheTime,
		log:       opts.Logger.With().Str("component", "stokercloud").Logger(),
		now:       now,
	}, nil
}

// User returns the account the client logs in as.
func (c *Client) User() string {
	return c.user
}

// RefreshToken logs in and replaces the session token.
func (c *Client) RefreshToken(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshTokenLocked(ctx)
}

type loginResponse struct {
	Token       string          `json:"token"`
	Credentials json.RawMessage `json:"credentials"`
}

func (c *Client) refreshTokenLocked(ctx context.Context) error {
	values := url.Values{}
	values.Set("user", c.user)
	rel := &url.URL{Path: loginPath, RawQuery: values.Encode()}

	var payload loginResponse
	if err := c.getJSON(ctx, rel, &payload); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if strings.TrimSpace(payload.Token) == "" {
		return fmt.Errorf("login returned no token: %w", ErrTokenInvalid)
	}
	c.token = payload.Token
	c.credentials = payload.Credentials
	c.log.Debug().Str("user", c.user).Msg("session token refreshed")
	return nil
}

// Credentials returns the read-only state blob the login endpoint sent with
// the current token, or nil before the first login.
func (c *Client) Credentials() json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.credentials == nil {
		return nil
	}
	dup := make(json.RawMessage, len(c.credentials))
	copy(dup, c.credentials)
	return dup
}

// CachedAt returns when the cached document was fetched; zero if none.
func (c *Client) CachedAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

// Invalidate drops the cached document so the next FetchStatus goes to the
// network. The session token is kept.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
	c.fetchedAt = time.Time{}
}

// FetchStatus returns a view over the status document. The cached document
// is reused while it is younger than the cache time unless force is set.
func (c *Client) FetchStatus(ctx context.Context, force bool) (*Status, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.cacheFresh() {
		c.log.Debug().Time("fetched_at", c.fetchedAt).Msg("serving cached status")
		return NewStatus(c.cached)
	}

	doc, err := c.fetchDocumentLocked(ctx)
	if err != nil {
		return nil, err
	}
	c.cached = doc
	c.fetchedAt = c.now()
	return NewStatus(doc)
}

func (c *Client) cacheFresh() bool {
	if c.cacheTime == 0 || c.cached == nil || c.fetchedAt.IsZero() {
		return false
	}
	return c.now().Sub(c.fetchedAt) <= c.cacheTime
}

// fetchDocumentLocked requests the status document, re-authenticating at most
// maxTokenRefreshes times when the token is missing or rejected.
func (c *Client) fetchDocumentLocked(ctx context.Context) (*Document, error) {
	for refreshes := 0; ; refreshes++ {
		doc, err := c.requestStatusLocked(ctx)
		if !errors.Is(err, ErrTokenInvalid) {
			return doc, err
		}
		if refreshes >= maxTokenRefreshes {
			return nil, fmt.Errorf("status request after token refresh: %w", err)
		}
		c.log.Debug().Err(err).Msg("refreshing session token")
		c.token = ""
		if err := c.refreshTokenLocked(ctx); err != nil {
			return nil, err
		}
	}
}

func (c *Client) requestStatusLocked(ctx context.Context) (*Document, error) {
	if c.token == "" {
		return nil, ErrTokenInvalid
	}
	values := url.Values{}
	values.Set("screen", screenSelector)
	values.Set("token", c.token)
	rel := &url.URL{Path: statusPath, RawQuery: values.Encode()}

	var doc Document
	err := c.getJSON(ctx, rel, &doc)
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
		c.log.Warn().Int("status", httpErr.StatusCode).Msg("status endpoint rejected session token")
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) getJSON(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Debug().Str("url", redactToken(reqURL)).Msg("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{Path: rel.Path, StatusCode: resp.StatusCode}
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func redactToken(u *url.URL) string {
	q := u.Query()
	if q.Get("token") == "" {
		return u.String()
	}
	q.Set("token", "REDACTED")
	dup := *u
	dup.RawQuery = q.Encode()
	return dup.String()
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
