package directory

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ytget/rm-browser/internal/model"
)

const twoRicks = `{
  "info": {"count": 2, "pages": 1, "next": null, "prev": null},
  "results": [
    {"id": 1, "name": "Rick Sanchez", "status": "Alive", "species": "Human", "image": "https://example.test/1.jpeg"},
    {"id": 8, "name": "Adjudicator Rick", "status": "Dead", "species": "Human", "image": "https://example.test/8.jpeg"}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL+"/api/character", Options{Timeout: 2 * time.Second}, zap.NewNop())
	require.NoError(t, err)
	return client, server
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient("", Options{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewClient("ftp://example.test", Options{}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewClient("https://rickandmortyapi.com/api/character", Options{}, zap.NewNop())
	assert.NoError(t, err)
}

func TestBuildURL(t *testing.T) {
	client, err := NewClient("https://rickandmortyapi.com/api/character", Options{}, zap.NewNop())
	require.NoError(t, err)

	tests := []struct {
		name     string
		query    model.Query
		expected url.Values
	}{
		{"page only", model.Query{Page: 1}, url.Values{"page": {"1"}}},
		{"blank name omitted", model.Query{Page: 2, Name: "   "}, url.Values{"page": {"2"}}},
		{"name trimmed", model.Query{Page: 1, Name: " rick "}, url.Values{"page": {"1"}, "name": {"rick"}}},
		{"status", model.Query{Page: 3, Status: model.StatusDead}, url.Values{"page": {"3"}, "status": {"dead"}}},
		{"all", model.Query{Page: 1, Name: "morty", Status: model.StatusAlive},
			url.Values{"page": {"1"}, "name": {"morty"}, "status": {"alive"}}},
		{"page clamped", model.Query{Page: 0}, url.Values{"page": {"1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := url.Parse(client.BuildURL(tt.query))
			require.NoError(t, err)
			assert.Equal(t, "/api/character", parsed.Path)
			assert.Equal(t, tt.expected, parsed.Query())
		})
	}
}

func TestFetchPage_Success(t *testing.T) {
	var got *http.Request
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, twoRicks)
	})

	result, err := client.FetchPage(context.Background(), model.Query{Page: 1, Name: "rick"})
	require.NoError(t, err)

	require.Len(t, result.Characters, 2)
	assert.Equal(t, model.CharacterID(1), result.Characters[0].ID)
	assert.Equal(t, "Rick Sanchez", result.Characters[0].Name)
	assert.Equal(t, "Alive", result.Characters[0].Status)
	assert.Equal(t, "https://example.test/8.jpeg", result.Characters[1].Image)
	assert.Equal(t, model.PageInfo{TotalPages: 1, TotalCount: 2}, result.Info)

	require.NotNil(t, got)
	assert.Equal(t, "rick", got.URL.Query().Get("name"))
	assert.Equal(t, "1", got.URL.Query().Get("page"))
	assert.NotEmpty(t, got.Header.Get(requestIDHeader))
	assert.Equal(t, userAgent, got.Header.Get("User-Agent"))
}

func TestFetchPage_PaginationFlagsFromService(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"info":{"count":826,"pages":42,"next":"https://x/?page=3","prev":"https://x/?page=1"},"results":[{"id":21}]}`)
	})

	result, err := client.FetchPage(context.Background(), model.Query{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, model.PageInfo{HasNext: true, HasPrev: true, TotalPages: 42, TotalCount: 826}, result.Info)
}

func TestFetchPage_NotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"There is nothing here"}`)
	})

	result, err := client.FetchPage(context.Background(), model.Query{Page: 1, Name: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, result.Characters)
	assert.NotNil(t, result.Characters)
	assert.Equal(t, model.PageInfo{}, result.Info)
}

func TestFetchPage_RequestFailed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchPage(context.Background(), model.Query{Page: 1})
	require.Error(t, err)
	assert.True(t, IsRequestFailed(err))
	assert.False(t, IsTransport(err))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
}

func TestFetchPage_DecodeFailed(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"info": [`)
	})

	_, err := client.FetchPage(context.Background(), model.Query{Page: 1})
	require.Error(t, err)
	assert.True(t, IsDecode(err))
	assert.Equal(t, 0, StatusCode(err))
}

func TestFetchPage_TransportFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client, err := NewClient(base, Options{Timeout: time.Second}, zap.NewNop())
	require.NoError(t, err)

	_, err = client.FetchPage(context.Background(), model.Query{Page: 1})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestFetchPage_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, twoRicks)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchPage(ctx, model.Query{Page: 1})
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestErrorHelpers(t *testing.T) {
	wrapped := fmt.Errorf("loading page: %w", &RequestFailedError{StatusCode: 502})
	assert.True(t, IsRequestFailed(wrapped))
	assert.Equal(t, 502, StatusCode(wrapped))
	assert.Contains(t, wrapped.Error(), "502")

	decode := &DecodeError{Err: fmt.Errorf("unexpected EOF")}
	assert.Contains(t, decode.Error(), "unexpected EOF")
	assert.False(t, IsTransport(decode))
}
