package squarespace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanneryrow/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func ordersPage(orders []domain.Order, nextCursor string) domain.OrdersPage {
	var page domain.OrdersPage
	page.Result = orders
	page.Pagination.HasNextPage = nextCursor != ""
	page.Pagination.NextPageCursor = nextCursor
	return page
}

func TestFetchOrders_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.0/commerce/orders", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "PENDING", r.URL.Query().Get("fulfillmentStatus"))

		json.NewEncoder(w).Encode(ordersPage([]domain.Order{
			{ID: "a", OrderNumber: "1001"},
			{ID: "b", OrderNumber: "1002"},
		}, ""))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	orders, err := client.FetchOrders(context.Background(), "PENDING", 0)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "1001", orders[0].OrderNumber)
}

func TestFetchOrders_Pagination(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := atomic.AddInt32(&calls, 1)
		switch call {
		case 1:
			// First page carries the status filter, no cursor
			assert.Equal(t, "FULFILLED", r.URL.Query().Get("fulfillmentStatus"))
			assert.Empty(t, r.URL.Query().Get("cursor"))
			json.NewEncoder(w).Encode(ordersPage([]domain.Order{{ID: "a"}}, "next-1"))
		case 2:
			// Cursor pages must not repeat the filter
			assert.Empty(t, r.URL.Query().Get("fulfillmentStatus"))
			assert.Equal(t, "next-1", r.URL.Query().Get("cursor"))
			json.NewEncoder(w).Encode(ordersPage([]domain.Order{{ID: "b"}}, ""))
		}
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	orders, err := client.FetchOrders(context.Background(), "FULFILLED", 0)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchOrders_LimitStopsPaging(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(ordersPage([]domain.Order{{ID: "a"}, {ID: "b"}}, "more"))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	orders, err := client.FetchOrders(context.Background(), "PENDING", 2)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "should stop after the first page")
}

func TestFetchOrders_RetriesTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(ordersPage([]domain.Order{{ID: "a"}}, ""))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	orders, err := client.FetchOrders(context.Background(), "PENDING", 0)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchOrders_GivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)
	_, err := client.FetchOrders(context.Background(), "PENDING", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSquarespaceAPIFailure)
}
