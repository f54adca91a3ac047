// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"productboard-gitlab-relay/internal/dto"
	"productboard-gitlab-relay/internal/entities"
)

// FromPluginRequest builds an entities.PluginEvent from the plugin button body.
func FromPluginRequest(src dto.PluginRequest) entities.PluginEvent {
	return entities.PluginEvent{
		Trigger:       src.Data.Trigger,
		IntegrationID: src.Data.IntegrationID,
		FeatureID:     src.Data.Feature.ID,
		FeatureLink:   src.Data.Feature.Links.HTML,
	}
}

// FromIssueWebhook builds an entities.IssueEvent from a GitLab issue hook.
func FromIssueWebhook(src dto.IssueWebhook) entities.IssueEvent {
	return entities.IssueEvent{
		Kind:  src.ObjectKind,
		ID:    src.ObjectAttributes.ID,
		State: src.ObjectAttributes.State,
		URL:   src.ObjectAttributes.URL,
	}
}

// FromFeature maps a Productboard feature response to entities.Feature.
func FromFeature(src dto.Feature) entities.Feature {
	return entities.Feature{
		ID:          src.ID,
		Name:        src.Name,
		Description: src.Description,
		HTMLLink:    src.Links.HTML,
	}
}

// FromIssue maps a GitLab issue response to entities.Issue.
func FromIssue(src dto.Issue) entities.Issue {
	return entities.Issue{
		ID:    src.ID,
		Title: src.Title,
		State: src.State,
		URL:   src.WebURL,
	}
}

// ToConnection maps entities.Connection to its wire form.
func ToConnection(c entities.Connection) dto.Connection {
	return dto.Connection{
		State:      string(c.State),
		Label:      c.Label,
		HoverLabel: c.HoverLabel,
		Tooltip:    c.Tooltip,
		Color:      c.Color,
		TargetURL:  c.TargetURL,
	}
}

// FromConnection maps a wire connection to entities.Connection.
func FromConnection(c dto.Connection) entities.Connection {
	return entities.Connection{
		State:      entities.ConnectionState(c.State),
		Label:      c.Label,
		HoverLabel: c.HoverLabel,
		Tooltip:    c.Tooltip,
		Color:      c.Color,
		TargetURL:  c.TargetURL,
	}
}

// ToConnectionEnvelope wraps a connection for a response or a connection write.
func ToConnectionEnvelope(c entities.Connection) dto.ConnectionEnvelope {
	return dto.ConnectionEnvelope{Data: dto.ConnectionData{Connection: ToConnection(c)}}
}

// FromConnectionList maps a listed page to entities.FeatureConnection values.
func FromConnectionList(src dto.ConnectionList) []entities.FeatureConnection {
	res := make([]entities.FeatureConnection, 0, len(src.Data))
	for _, item := range src.Data {
		res = append(res, entities.FeatureConnection{
			FeatureID:  item.FeatureID,
			Connection: FromConnection(item.Connection),
		})
	}
	return res
}
