// Package entities contains core business entities.
package entities

import "strconv"

// IssueStateOpened is the GitLab state of an open issue.
const IssueStateOpened = "opened"

// Issue is a GitLab issue as seen by the relay.
type Issue struct {
	ID    int64
	Title string
	State string
	URL   string
}

// Label returns the "Issue <id>" text used for hover labels and tooltips.
func (i Issue) Label() string {
	return IssueLabel(i.ID)
}

// IssueLabel formats the tooltip that links a connection to an issue.
func IssueLabel(id int64) string {
	return "Issue " + strconv.FormatInt(id, 10)
}

// IssueEvent is a GitLab issue webhook reduced to what the relay uses.
type IssueEvent struct {
	Kind  string
	ID    int64
	State string
	URL   string
}

// Ignored reports whether the webhook is not an issue event.
// An empty kind is treated as an issue event.
func (e IssueEvent) Ignored() bool {
	return e.Kind != "" && e.Kind != "issue"
}
