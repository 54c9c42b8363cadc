package catalog

import (
	"context"
	"time"
)

// RefreshTask adapts the store's refresh to the worker's task contract
type RefreshTask struct {
	store    *Store
	interval time.Duration
}

// NewRefreshTask creates the periodic refresh task
func NewRefreshTask(store *Store, interval time.Duration) *RefreshTask {
	return &RefreshTask{store: store, interval: interval}
}

// Name identifies the task in logs
func (t *RefreshTask) Name() string {
	return "catalog"
}

// Interval returns the refresh cadence
func (t *RefreshTask) Interval() time.Duration {
	return t.interval
}

// Run performs one refresh cycle
func (t *RefreshTask) Run(ctx context.Context) error {
	return t.store.Refresh(ctx)
}
