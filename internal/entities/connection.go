// Package entities contains core business entities.
package entities

// ConnectionState enumerates plugin connection states.
type ConnectionState string

const (
	// ConnectionInitial shows the push button (not linked).
	ConnectionInitial ConnectionState = "initial"
	// ConnectionProgress is shown while the issue is being created.
	ConnectionProgress ConnectionState = "progress"
	// ConnectionConnected shows the linked issue.
	ConnectionConnected ConnectionState = "connected"
)

// Connection colors.
const (
	ColorBlue  = "blue"
	ColorGreen = "green"
)

// Connection is the plugin integration indicator on a feature.
type Connection struct {
	State      ConnectionState
	Label      string
	HoverLabel string
	Tooltip    string
	Color      string
	TargetURL  string
}

// FeatureConnection is a connection as listed by Productboard.
type FeatureConnection struct {
	FeatureID  string
	Connection Connection
}

// OpenedLabel is the label written when a pushed feature gets its issue.
const OpenedLabel = "Opened"

// LinkedConnection is written once an issue has been created for a feature.
func LinkedConnection(issue Issue) Connection {
	return Connection{
		State:      ConnectionConnected,
		Label:      OpenedLabel,
		HoverLabel: issue.Label(),
		Tooltip:    issue.Label(),
		Color:      ColorBlue,
		TargetURL:  issue.URL,
	}
}

// StatusConnection reflects a GitLab state change. Open issues are blue,
// every other state is green.
func StatusConnection(ev IssueEvent) Connection {
	color := ColorGreen
	if ev.State == IssueStateOpened {
		color = ColorBlue
	}
	label := IssueLabel(ev.ID)
	return Connection{
		State:      ConnectionConnected,
		Label:      ev.State,
		HoverLabel: label,
		Tooltip:    label,
		Color:      color,
		TargetURL:  ev.URL,
	}
}
