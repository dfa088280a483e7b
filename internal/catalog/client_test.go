package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"id":1,"title":"iPhone 9","category":"smartphones","brand":"Apple","rating":4.69},
			{"id":2,"title":"Dog Food","category":"pets","rating":null}
		]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, DefaultLimit, 5*time.Second)
	entries, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, 1, entries[0].ID)
	assert.Equal(t, "Apple", entries[0].Brand)
	require.NotNil(t, entries[0].Rating)
	assert.Equal(t, 4.69, *entries[0].Rating)

	// Missing brand and null rating decode to zero values.
	assert.Equal(t, "", entries[1].Brand)
	assert.Nil(t, entries[1].Rating)
}

func TestFetchProductsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, DefaultLimit, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchProductsMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, DefaultLimit, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestFetchProductsUnreachable(t *testing.T) {
	// A server that is immediately closed guarantees a connection error.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewHTTPClient(server.URL, DefaultLimit, time.Second)
	_, err := client.FetchProducts(context.Background())
	assert.Error(t, err)
}

// A configured limit must reach the query string instead of the default.
func TestFetchProductsConfiguredLimit(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"products":[]}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, 30, 5*time.Second)
	_, err := client.FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "30", gotLimit)
}

func TestNewHTTPClientDefaults(t *testing.T) {
	client := NewHTTPClient("https://dummyjson.com/products", 0, 0)
	assert.Equal(t, DefaultLimit, client.Limit)
	assert.Equal(t, DefaultTimeout, client.Client.Timeout)
}
