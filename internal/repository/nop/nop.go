// Package nop is the journal backend used when no storage is configured.
package nop

import (
	"context"

	"productboard-gitlab-relay/internal/entities"
)

// Nop discards deliveries.
type Nop struct{}

// New returns a journal that records nothing.
func New() *Nop { return &Nop{} }

func (*Nop) OnStart(_ context.Context) error { return nil }
func (*Nop) OnStop(_ context.Context) error  { return nil }

func (*Nop) RecordDelivery(_ context.Context, _ entities.Delivery) error { return nil }

func (*Nop) RecentDeliveries(_ context.Context, _ int) ([]entities.Delivery, error) {
	return []entities.Delivery{}, nil
}
