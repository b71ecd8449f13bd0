package rankersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/homespice/backend/internal/domain"
	"golang.org/x/time/rate"
)

// rankResponse is the wire format of the ranking service
type rankResponse struct {
	Recommendations []domain.MenuItem `json:"recommendations"`
}

// Client calls the external ranking service. Failures are reported as plain
// errors without retries; the fallback wrapper decides what happens next.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a ranking service client with a strict per-request
// timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		// Keep a hard ceiling on outbound calls so a recommendation storm
		// cannot hammer the ranking service
		rateLimiter: rate.NewLimiter(rate.Limit(50), 100),
		debug:       false,
	}
}

// SetDebug toggles request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Rank implements domain.Ranker by POSTing the request to the ranking
// service. Any transport error, timeout or non-200 status is returned as
// ErrRankerUnavailable.
func (c *Client) Rank(ctx context.Context, req *domain.RankRequest) ([]domain.MenuItem, error) {
	if req == nil {
		return nil, domain.ErrInvalidRequest
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding rank request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/recommend", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating rank request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", "HomeSpice/1.0")

	if c.debug {
		log.Printf("[RANKER] POST %s user=%s limit=%d", reqURL, req.UserID, req.Limit)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRankerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[RANKER] status %d, body: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrRankerUnavailable, resp.StatusCode)
	}

	var rankResp rankResponse
	if err := json.NewDecoder(resp.Body).Decode(&rankResp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrRankerUnavailable, err)
	}

	if c.debug {
		log.Printf("[RANKER] got %d recommendations", len(rankResp.Recommendations))
	}

	return rankResp.Recommendations, nil
}
