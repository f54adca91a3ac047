// Package entities contains core business entities.
package entities

import "time"

// DeliveryKind names the relay path that handled a webhook.
type DeliveryKind string

const (
	// KindFeaturePush is a plugin button push.
	KindFeaturePush DeliveryKind = "feature_push"
	// KindFeatureUnlink is a dismiss/unlink trigger.
	KindFeatureUnlink DeliveryKind = "feature_unlink"
	// KindStatusSync is a GitLab issue webhook.
	KindStatusSync DeliveryKind = "status_sync"
)

// DeliveryOutcome is how a relay attempt ended.
type DeliveryOutcome string

const (
	OutcomeConnected DeliveryOutcome = "connected"
	OutcomeUpdated   DeliveryOutcome = "updated"
	OutcomeSkipped   DeliveryOutcome = "skipped"
	OutcomeFailed    DeliveryOutcome = "failed"
)

// Delivery is one journaled relay attempt.
type Delivery struct {
	ID         int64           `json:"id"`
	Kind       DeliveryKind    `json:"kind"`
	FeatureID  string          `json:"feature_id,omitempty"`
	IssueID    int64           `json:"issue_id,omitempty"`
	IssueState string          `json:"issue_state,omitempty"`
	Outcome    DeliveryOutcome `json:"outcome"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
