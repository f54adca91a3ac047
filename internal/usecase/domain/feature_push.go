package domain

import (
	"context"
	"fmt"

	"productboard-gitlab-relay/internal/entities"
)

const featureLinkTemplate = `<br><strong>Click <a href="%s" target="_blank">here</a> to see feature in Productboard</strong>`

// HandlePluginEvent acknowledges a plugin button event. A push answers
// "progress" at once and creates the issue in the background; any other
// trigger resets the connection to "initial" without calling out.
func (u *Usecase) HandlePluginEvent(_ context.Context, ev entities.PluginEvent) (entities.Connection, error) {
	u.log.Infow("plugin trigger", "trigger", ev.Trigger, "feature_id", ev.FeatureID)

	if !ev.IsPush() {
		u.record(entities.Delivery{
			Kind:      entities.KindFeatureUnlink,
			FeatureID: ev.FeatureID,
			Outcome:   entities.OutcomeSkipped,
		})
		u.log.Infow("feature is unlinked", "feature_id", ev.FeatureID)
		return entities.Connection{State: entities.ConnectionInitial}, nil
	}

	// Productboard still gets "progress"; there is nothing to fetch without an id.
	if ev.FeatureID == "" {
		u.log.Warnw("feature push without feature id", "integration_id", ev.IntegrationID)
		u.record(entities.Delivery{
			Kind:    entities.KindFeaturePush,
			Outcome: entities.OutcomeFailed,
			Error:   "feature id is missing",
		})
		return entities.Connection{State: entities.ConnectionProgress}, nil
	}

	u.dispatch("feature push", func(ctx context.Context) {
		u.pushFeature(ctx, ev)
	})
	return entities.Connection{State: entities.ConnectionProgress}, nil
}

// pushFeature runs fetch feature, create issue, write connection, stopping at the first failure.
func (u *Usecase) pushFeature(ctx context.Context, ev entities.PluginEvent) {
	delivery := entities.Delivery{Kind: entities.KindFeaturePush, FeatureID: ev.FeatureID}
	fail := func(step string, err error) {
		u.log.Errorw("feature push failed", "step", step, "feature_id", ev.FeatureID, "error", err)
		delivery.Outcome = entities.OutcomeFailed
		delivery.Error = fmt.Sprintf("%s: %v", step, err)
		u.record(delivery)
	}

	feature, err := u.gw.FetchFeature(ctx, ev.FeatureID)
	if err != nil {
		fail("fetch feature", err)
		return
	}
	u.log.Infow("feature fetched", "feature_id", ev.FeatureID, "name", feature.Name)

	link := ev.FeatureLink
	if link == "" {
		link = feature.HTMLLink
	}

	issue, err := u.gw.CreateIssue(ctx, feature.Name, IssueDescription(feature.Description, link))
	if err != nil {
		fail("create issue", err)
		return
	}
	delivery.IssueID = issue.ID
	delivery.IssueState = issue.State

	if err := u.gw.WriteConnection(ctx, ev.FeatureID, entities.LinkedConnection(*issue)); err != nil {
		fail("write connection", err)
		return
	}

	u.log.Infow("feature connected to gitlab", "feature_id", ev.FeatureID, "issue_id", issue.ID, "url", issue.URL)
	delivery.Outcome = entities.OutcomeConnected
	u.record(delivery)
}

// IssueDescription appends a link back to the feature to its description.
// The link is inserted as Productboard sent it.
func IssueDescription(description, featureLink string) string {
	return description + fmt.Sprintf(featureLinkTemplate, featureLink)
}
