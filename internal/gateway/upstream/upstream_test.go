package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"productboard-gitlab-relay/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestDoSendsHeadersAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/things", r.URL.Path)
		require.Equal(t, "v", r.Header.Get("X-Test"))
		require.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "bar", in["foo"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7}`))
	}))
	t.Cleanup(srv.Close)

	c := New("test", time.Second)
	var out struct {
		ID int `json:"id"`
	}
	err := c.Do(context.Background(), "create", Request{
		Method:  http.MethodPost,
		URL:     srv.URL + "/things",
		Headers: map[string]string{"X-Test": "v"},
		Body:    map[string]string{"foo": "bar"},
	}, &out)
	require.NoError(t, err)
	require.Equal(t, 7, out.ID)
}

func TestDoKeepsEscapedPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects/group%2Fapp/issues", r.RequestURI)
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	err := New("test", time.Second).Do(context.Background(), "create", Request{
		Method: http.MethodPost,
		URL:    srv.URL + "/projects/group%2Fapp/issues",
	}, nil)
	require.NoError(t, err)
}

func TestDoNon2xxIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	err := New("test", 0).Do(context.Background(), "get", Request{Method: http.MethodGet, URL: srv.URL}, nil)
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.Contains(t, err.Error(), "status 401")
}

func TestDoTransportFailureIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := New("test", time.Second).Do(context.Background(), "get", Request{Method: http.MethodGet, URL: url}, nil)
	require.ErrorIs(t, err, entities.ErrUpstream)
}

func TestDoCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New("test", 0).Do(ctx, "get", Request{Method: http.MethodGet, URL: "http://127.0.0.1:1"}, nil)
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.ErrorIs(t, err, context.Canceled)
}

func TestDoBadJSONIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	t.Cleanup(srv.Close)

	var out map[string]any
	err := New("test", 0).Do(context.Background(), "get", Request{Method: http.MethodGet, URL: srv.URL}, &out)
	require.ErrorIs(t, err, entities.ErrUpstream)
}

func TestCallTimeoutUsesEarlierDeadline(t *testing.T) {
	c := New("test", time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.LessOrEqual(t, c.callTimeout(ctx), time.Second)
	require.Equal(t, time.Minute, c.callTimeout(context.Background()))
	require.Equal(t, time.Duration(0), New("test", 0).callTimeout(context.Background()))
}
