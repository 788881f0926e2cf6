package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/logger"
	"github.com/bnema/pillctl/internal/ports"
)

const dueNowFallbackMessage = "failed to fetch pills by time range"

// Dispenser caches what the store reports about the dispenser itself: its
// server info and the pills due in the current time window. Failures are kept
// as display messages next to the last good value.
type Dispenser struct {
	store ports.PillStore
	clock ports.Clock
	log   *logger.Logger

	mu       sync.RWMutex
	snapshot domain.DispenserSnapshot
}

func NewDispenser(store ports.PillStore, clock ports.Clock, log *logger.Logger) *Dispenser {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Dispenser{store: store, clock: clock, log: log}
}

// Refresh fetches server info and the due-now list. Both are attempted even
// if the first fails; the returned error is the first failure.
func (d *Dispenser) Refresh(ctx context.Context) error {
	infoErr := d.RefreshServerInfo(ctx)
	dueErr := d.RefreshDueNow(ctx)
	if infoErr != nil {
		return infoErr
	}
	return dueErr
}

func (d *Dispenser) RefreshServerInfo(ctx context.Context) error {
	info, err := d.store.ServerInfo(ctx)
	if err != nil {
		message := "failed to fetch server information: " + domain.ErrorMessage(err)
		d.log.Errorw("fetch server info failed", "err", err)

		d.mu.Lock()
		d.snapshot.ServerInfoError = message
		d.mu.Unlock()
		return fmt.Errorf("fetch server info: %w", err)
	}

	d.mu.Lock()
	d.snapshot.ServerInfo = info
	d.snapshot.ServerInfoError = ""
	d.snapshot.FetchedAt = d.clock.Now()
	d.mu.Unlock()
	return nil
}

func (d *Dispenser) RefreshDueNow(ctx context.Context) error {
	due, err := d.store.DueNow(ctx)
	if err != nil {
		d.log.Errorw("fetch pills by time range failed", "err", err)

		d.mu.Lock()
		d.snapshot.DueNowError = dueNowErrorMessage(err)
		d.mu.Unlock()
		return fmt.Errorf("fetch pills by time range: %w", err)
	}

	d.mu.Lock()
	d.snapshot.DueNow = due
	d.snapshot.DueNowError = ""
	d.snapshot.FetchedAt = d.clock.Now()
	d.mu.Unlock()
	return nil
}

// MarkServed acknowledges the current time window and re-reads the due list.
func (d *Dispenser) MarkServed(ctx context.Context) error {
	return d.toggleServed(ctx, d.store.MarkServed, "failed to mark time range as served: ")
}

func (d *Dispenser) UnmarkServed(ctx context.Context) error {
	return d.toggleServed(ctx, d.store.UnmarkServed, "failed to unmark time range as served: ")
}

func (d *Dispenser) toggleServed(ctx context.Context, call func(context.Context) error, prefix string) error {
	if err := call(ctx); err != nil {
		d.mu.Lock()
		d.snapshot.DueNowError = prefix + domain.ErrorMessage(err)
		d.mu.Unlock()
		return err
	}

	return d.RefreshDueNow(ctx)
}

// Invalidate forgets every cached value and message.
func (d *Dispenser) Invalidate() {
	d.mu.Lock()
	d.snapshot = domain.DispenserSnapshot{}
	d.mu.Unlock()
}

func (d *Dispenser) Snapshot() domain.DispenserSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := d.snapshot
	if snapshot.ServerInfo != nil {
		info := make(domain.ServerInfo, len(snapshot.ServerInfo))
		for key, value := range snapshot.ServerInfo {
			info[key] = value
		}
		snapshot.ServerInfo = info
	}
	if snapshot.DueNow != nil {
		due := make(domain.DueNow, len(snapshot.DueNow))
		copy(due, snapshot.DueNow)
		snapshot.DueNow = due
	}
	return snapshot
}

// dueNowErrorMessage shows the store's own reason when it sent one.
func dueNowErrorMessage(err error) string {
	if errors.Is(err, domain.ErrValidation) {
		return domain.ErrorMessage(err)
	}
	return dueNowFallbackMessage
}
