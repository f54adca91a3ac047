// Package entities contains core business entities.
package entities

// PushTrigger is the plugin button action that asks for an issue to be created.
const PushTrigger = "button.push"

// Feature is a Productboard work item as consumed by the relay.
type Feature struct {
	ID          string
	Name        string
	Description string
	HTMLLink    string
}

// PluginEvent is a Productboard plugin button event.
type PluginEvent struct {
	Trigger       string
	IntegrationID string
	FeatureID     string
	FeatureLink   string
}

// IsPush reports whether the event asks for an issue to be created.
// Any other trigger (dismiss, unlink) resets the connection.
func (e PluginEvent) IsPush() bool {
	return e.Trigger == PushTrigger
}
