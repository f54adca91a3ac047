package gitlab

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productboard-gitlab-relay/config"
	"productboard-gitlab-relay/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, projectID string, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return New(zap.NewNop().Sugar(), &config.Config{GitLab: config.GitLabConfig{
		ProjectID: projectID,
		Token:     "gl-secret",
		BaseURL:   srv.URL,
	}})
}

func TestCreateIssue(t *testing.T) {
	c := testClient(t, "77", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/projects/77/issues", r.URL.Path)
		require.Equal(t, "gl-secret", r.Header.Get("PRIVATE-TOKEN"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{"title": "Foo", "description": "Bar"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"iid":3,"title":"Foo","state":"opened","web_url":"http://tracker/42"}`))
	})

	issue, err := c.CreateIssue(context.Background(), "Foo", "Bar")
	require.NoError(t, err)
	require.Equal(t, entities.Issue{ID: 42, Title: "Foo", State: "opened", URL: "http://tracker/42"}, *issue)
}

func TestCreateIssueNamespacedProject(t *testing.T) {
	c := testClient(t, "group/app", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/projects/group%2Fapp/issues", r.URL.EscapedPath())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	})

	_, err := c.CreateIssue(context.Background(), "t", "d")
	require.NoError(t, err)
}

func TestCreateIssueRejected(t *testing.T) {
	c := testClient(t, "77", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"403 Forbidden"}`))
	})

	_, err := c.CreateIssue(context.Background(), "Foo", "Bar")
	require.ErrorIs(t, err, entities.ErrUpstream)
	require.Contains(t, err.Error(), "403")
}
