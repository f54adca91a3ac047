package mapper

import (
	"encoding/json"
	"testing"

	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromPluginRequest(t *testing.T) {
	var req dto.PluginRequest
	require.NoError(t, json.Unmarshal([]byte(
		`{"data":{"trigger":"button.push","integrationId":"int-1","feature":{"id":"f-1","links":{"html":"http://x"}}}}`,
	), &req))

	require.Equal(t, entities.PluginEvent{
		Trigger:       "button.push",
		IntegrationID: "int-1",
		FeatureID:     "f-1",
		FeatureLink:   "http://x",
	}, FromPluginRequest(req))
}

func TestFromIssueWebhook(t *testing.T) {
	var hook dto.IssueWebhook
	require.NoError(t, json.Unmarshal([]byte(
		`{"object_kind":"issue","object_attributes":{"id":42,"iid":3,"state":"closed","url":"http://tracker/42"}}`,
	), &hook))

	require.Equal(t, entities.IssueEvent{Kind: "issue", ID: 42, State: "closed", URL: "http://tracker/42"}, FromIssueWebhook(hook))
}

func TestConnectionEnvelopeOmitsEmptyFields(t *testing.T) {
	raw, err := json.Marshal(ToConnectionEnvelope(entities.Connection{State: entities.ConnectionProgress}))
	require.NoError(t, err)
	require.JSONEq(t, `{"data":{"connection":{"state":"progress"}}}`, string(raw))
}

func TestFromConnectionList(t *testing.T) {
	list := FromConnectionList(dto.ConnectionList{Data: []dto.ConnectionItem{
		{FeatureID: "f-1", Connection: dto.Connection{State: "connected", Tooltip: "Issue 42", Color: "blue"}},
		{FeatureID: "f-2", Connection: dto.Connection{State: "initial"}},
	}})

	require.Len(t, list, 2)
	require.Equal(t, "f-1", list[0].FeatureID)
	require.Equal(t, entities.ConnectionConnected, list[0].Connection.State)
	require.Equal(t, "Issue 42", list[0].Connection.Tooltip)
	require.Equal(t, entities.ConnectionInitial, list[1].Connection.State)
}
