package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ytget/rm-browser/internal/model"
)

const (
	userAgent       = "rm-browser/1.0"
	requestIDHeader = "X-Request-ID"

	// Query parameter names understood by the directory
	ParamPage   = "page"
	ParamName   = "name"
	ParamStatus = "status"
)

// pageResponse mirrors the directory's JSON page
type pageResponse struct {
	Info struct {
		Count int     `json:"count"`
		Pages int     `json:"pages"`
		Next  *string `json:"next"`
		Prev  *string `json:"prev"`
	} `json:"info"`
	Results []model.Character `json:"results"`
}

// Client fetches character pages from the remote directory
type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL *url.URL
	limiter *rate.Limiter
}

// Options tune the client's transport behaviour
type Options struct {
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	HTTPClient        *http.Client
}

// NewClient creates a client for the directory at baseURL
func NewClient(baseURL string, opts Options, log *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("empty base url specified")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url must start with http:// or https://")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		log:     log.Named("directory"),
		client:  httpClient,
		baseURL: parsed,
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// BuildURL returns the request URL for query. Name is sent only when non-empty
// after trimming; status only when a filter is active.
func (c *Client) BuildURL(query model.Query) string {
	u := *c.baseURL
	params := u.Query()

	page := query.Page
	if page < 1 {
		page = 1
	}
	params.Set(ParamPage, strconv.Itoa(page))

	if name := strings.TrimSpace(query.Name); name != "" {
		params.Set(ParamName, name)
	}
	if query.Status.IsActive() {
		params.Set(ParamStatus, string(query.Status))
	}

	u.RawQuery = params.Encode()
	return u.String()
}

// FetchPage performs the GET for query. A 404 is a successful empty page.
func (c *Client) FetchPage(ctx context.Context, query model.Query) (model.PageResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return model.PageResult{}, &TransportError{Err: err}
	}

	target := c.BuildURL(query)
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return model.PageResult{}, &TransportError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("directory request failed",
			zap.String("url", target),
			zap.String("request_id", requestID),
			zap.Error(err))
		return model.PageResult{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("directory response",
		zap.String("url", target),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))

	if resp.StatusCode == http.StatusNotFound {
		return model.EmptyPage(), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return model.PageResult{}, &RequestFailedError{StatusCode: resp.StatusCode, URL: target}
	}

	var body pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return model.PageResult{}, &TransportError{Err: ctx.Err()}
		}
		return model.PageResult{}, &DecodeError{Err: err}
	}

	characters := body.Results
	if characters == nil {
		characters = []model.Character{}
	}

	return model.PageResult{
		Characters: characters,
		Info: model.PageInfo{
			HasNext:    body.Info.Next != nil,
			HasPrev:    body.Info.Prev != nil,
			TotalPages: body.Info.Pages,
			TotalCount: body.Info.Count,
		},
	}, nil
}
