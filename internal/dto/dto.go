// Package dto holds the JSON shapes exchanged with Productboard and GitLab.
package dto

import "productboard-gitlab-relay/internal/entities"

// PluginRequest is the body Productboard posts when a plugin button is used.
type PluginRequest struct {
	Data PluginRequestData `json:"data"`
}

// PluginRequestData is the payload of a plugin button event.
type PluginRequestData struct {
	Trigger       string        `json:"trigger"`
	IntegrationID string        `json:"integrationId"`
	Feature       PluginFeature `json:"feature"`
}

// PluginFeature identifies the feature the button belongs to.
type PluginFeature struct {
	ID    string `json:"id"`
	Links Links  `json:"links"`
}

// Links is the Productboard links object.
type Links struct {
	HTML string `json:"html,omitempty"`
	Self string `json:"self,omitempty"`
	Next string `json:"next,omitempty"`
}

// ConnectionEnvelope wraps a connection for plugin responses and connection writes.
type ConnectionEnvelope struct {
	Data ConnectionData `json:"data"`
}

// ConnectionData holds a single connection.
type ConnectionData struct {
	Connection Connection `json:"connection"`
}

// Connection is the plugin integration connection object.
type Connection struct {
	State      string `json:"state"`
	Label      string `json:"label,omitempty"`
	HoverLabel string `json:"hoverLabel,omitempty"`
	Tooltip    string `json:"tooltip,omitempty"`
	Color      string `json:"color,omitempty"`
	TargetURL  string `json:"targetUrl,omitempty"`
}

// ConnectionList is a page of plugin integration connections.
type ConnectionList struct {
	Data  []ConnectionItem `json:"data"`
	Links Links            `json:"links"`
}

// ConnectionItem is one listed connection.
type ConnectionItem struct {
	FeatureID  string     `json:"featureId"`
	Connection Connection `json:"connection"`
}

// FeatureEnvelope is the Productboard feature response.
type FeatureEnvelope struct {
	Data Feature `json:"data"`
}

// Feature is the subset of a Productboard feature the relay reads.
type Feature struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Links       Links  `json:"links"`
}

// CreateIssueRequest is the GitLab new issue body.
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Issue is the subset of a GitLab issue response the relay reads.
type Issue struct {
	ID     int64  `json:"id"`
	IID    int64  `json:"iid"`
	Title  string `json:"title"`
	State  string `json:"state"`
	WebURL string `json:"web_url"`
}

// IssueWebhook is a GitLab issue hook payload.
type IssueWebhook struct {
	ObjectKind       string                 `json:"object_kind"`
	ObjectAttributes IssueWebhookAttributes `json:"object_attributes"`
}

// IssueWebhookAttributes carries the issue fields of a hook.
type IssueWebhookAttributes struct {
	ID    int64  `json:"id"`
	State string `json:"state"`
	URL   string `json:"url"`
}

// Deliveries is the journal listing response.
type Deliveries struct {
	Deliveries []entities.Delivery `json:"deliveries"`
}

// ErrorResponse is the body of a rejected inbound request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a rejected request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
