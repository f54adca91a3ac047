package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"productboard-gitlab-relay/internal/entities"
)

// SyncIssueStatus copies a GitLab issue state onto the connection that
// links to the issue. No match is a no-op; several matches are rejected.
func (u *Usecase) SyncIssueStatus(ctx context.Context, ev entities.IssueEvent) error {
	if ev.Ignored() {
		u.log.Debugw("ignoring gitlab event", "object_kind", ev.Kind)
		return nil
	}
	if ev.ID == 0 {
		return fmt.Errorf("%w: issue id is required", entities.ErrInvalidArgument)
	}

	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	u.log.Infow("issue state changed", "issue_id", ev.ID, "state", ev.State)
	delivery := entities.Delivery{Kind: entities.KindStatusSync, IssueID: ev.ID, IssueState: ev.State}

	conns, err := u.gw.ListConnections(ctx)
	if err != nil {
		u.log.Errorw("failed to list connections", "issue_id", ev.ID, "error", err)
		delivery.Outcome = entities.OutcomeFailed
		delivery.Error = err.Error()
		u.record(delivery)
		return err
	}

	match, err := MatchConnection(conns, ev.ID)
	switch {
	case errors.Is(err, entities.ErrMatchNotFound):
		u.log.Infow("no feature linked to issue", "issue_id", ev.ID, "connections", len(conns))
		delivery.Outcome = entities.OutcomeSkipped
		u.record(delivery)
		return nil
	case err != nil:
		u.log.Warnw("issue linked to several features, not updating", "issue_id", ev.ID, "error", err)
		delivery.Outcome = entities.OutcomeFailed
		delivery.Error = err.Error()
		u.record(delivery)
		return err
	}
	delivery.FeatureID = match.FeatureID

	if err := u.gw.WriteConnection(ctx, match.FeatureID, entities.StatusConnection(ev)); err != nil {
		u.log.Errorw("failed to update connection", "issue_id", ev.ID, "feature_id", match.FeatureID, "error", err)
		delivery.Outcome = entities.OutcomeFailed
		delivery.Error = err.Error()
		u.record(delivery)
		return err
	}

	u.log.Infow("feature status updated", "feature_id", match.FeatureID, "issue_id", ev.ID, "state", ev.State)
	delivery.Outcome = entities.OutcomeUpdated
	u.record(delivery)
	return nil
}

// MatchConnection scans conns once for the connection whose tooltip is
// exactly "Issue <id>". Exact comparison keeps issue 2 from matching issue 12.
func MatchConnection(conns []entities.FeatureConnection, issueID int64) (entities.FeatureConnection, error) {
	tooltip := entities.IssueLabel(issueID)

	var found []entities.FeatureConnection
	for _, c := range conns {
		if c.Connection.Tooltip == tooltip {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return entities.FeatureConnection{}, fmt.Errorf("%w: %s", entities.ErrMatchNotFound, tooltip)
	case 1:
		return found[0], nil
	default:
		ids := make([]string, 0, len(found))
		for _, c := range found {
			ids = append(ids, c.FeatureID)
		}
		return entities.FeatureConnection{}, fmt.Errorf("%w: %s on features %s", entities.ErrAmbiguousMatch, tooltip, strings.Join(ids, ", "))
	}
}
