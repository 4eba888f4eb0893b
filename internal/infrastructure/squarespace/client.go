package squarespace

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/tanneryrow/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Squarespace Commerce API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a new Squarespace API client
func NewClient(apiKey, baseURL string) *Client {
	// Squarespace allows 300 requests per minute; stay well under it
	limiter := rate.NewLimiter(rate.Limit(4), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// doRequest executes an HTTP GET request with auth headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "TanneryRow/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSquarespaceAPIFailure, err)
	}

	return resp, nil
}

// FetchOrders pages through the orders listing until limit orders are
// collected or the listing ends. A cursor already encodes the filter, so the
// status param is only sent on the first page.
func (c *Client) FetchOrders(ctx context.Context, status string, limit int) ([]domain.Order, error) {
	log.Printf("[SQSP] FetchOrders called with status=%s limit=%d", status, limit)

	var orders []domain.Order
	cursor := ""

	for {
		params := url.Values{}
		if cursor != "" {
			params.Add("cursor", cursor)
		} else if status != "" {
			params.Add("fulfillmentStatus", status)
		}

		reqURL := fmt.Sprintf("%s/1.0/commerce/orders?%s", c.baseURL, params.Encode())

		page, err := c.fetchPage(ctx, reqURL)
		if err != nil {
			return nil, err
		}

		orders = append(orders, page.Result...)
		if limit > 0 && len(orders) >= limit {
			orders = orders[:limit]
			break
		}

		if !page.Pagination.HasNextPage {
			break
		}
		cursor = page.Pagination.NextPageCursor
	}

	log.Printf("[SQSP] Fetched %d orders", len(orders))
	return orders, nil
}

// fetchPage retrieves a single page, retrying transient failures up to 3 times.
func (c *Client) fetchPage(ctx context.Context, reqURL string) (*domain.OrdersPage, error) {
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			log.Printf("[SQSP] Request error (attempt %d): %v", attempt, err)
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			log.Printf("[SQSP] Rate limited by API (attempt %d)", attempt)
			lastErr = domain.ErrRateLimited
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("[SQSP] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSquarespaceAPIFailure, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var page domain.OrdersPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("failed to decode orders page: %w", err)
		}
		return &page, nil
	}

	return nil, fmt.Errorf("all retry attempts failed: %w", lastErr)
}
