package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/logger"
	"github.com/bnema/pillctl/internal/ports"
)

type RegistryOptions struct {
	SlotCount int
	Clock     ports.Clock
	Logger    *logger.Logger
}

// Registry owns the box-keyed pill collection for one session. The remote
// store is authoritative; the collection is a cache that is fully replaced on
// every refresh.
//
// Mutations issued concurrently are not coordinated: whichever refresh
// completes last wins.
type Registry struct {
	store     ports.PillStore
	snapshots ports.RegistrySnapshotRepository
	slotCount int
	clock     ports.Clock
	log       *logger.Logger

	mu          sync.RWMutex
	pills       map[domain.BoxNumber]domain.Pill
	dirty       map[domain.BoxNumber]struct{}
	refreshedAt time.Time
}

// NewRegistry builds an empty registry. snapshots may be nil, in which case
// nothing outlives the process.
func NewRegistry(store ports.PillStore, snapshots ports.RegistrySnapshotRepository, opts RegistryOptions) *Registry {
	if opts.SlotCount <= 0 {
		opts.SlotCount = domain.DefaultSlotCount
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	return &Registry{
		store:     store,
		snapshots: snapshots,
		slotCount: opts.SlotCount,
		clock:     opts.Clock,
		log:       opts.Logger,
		pills:     map[domain.BoxNumber]domain.Pill{},
		dirty:     map[domain.BoxNumber]struct{}{},
	}
}

// Load restores the persisted snapshot, pending edits included. It reports
// whether a snapshot existed.
func (r *Registry) Load(ctx context.Context) (bool, error) {
	if r.snapshots == nil {
		return false, nil
	}

	snapshot, found, err := r.snapshots.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load registry snapshot: %w", err)
	}
	if !found {
		return false, nil
	}

	pills := make(map[domain.BoxNumber]domain.Pill, len(snapshot.Pills))
	for _, pill := range snapshot.Pills {
		pills[pill.BoxNumber] = pill.Clone()
	}
	dirty := make(map[domain.BoxNumber]struct{}, len(snapshot.Dirty))
	for _, box := range snapshot.Dirty {
		if _, ok := pills[box]; ok {
			dirty[box] = struct{}{}
		}
	}

	r.mu.Lock()
	r.pills = pills
	r.dirty = dirty
	r.refreshedAt = snapshot.RefreshedAt
	r.mu.Unlock()

	return true, nil
}

// Refresh replaces the whole collection with the store's current state.
// Unsaved local edits are discarded. On failure the collection is untouched.
// A snapshot that cannot be written is logged, not returned.
func (r *Registry) Refresh(ctx context.Context) error {
	remote, err := r.store.ListPills(ctx)
	if err != nil {
		r.log.Errorw("refresh registry failed", "err", err)
		return fmt.Errorf("list pills: %w", err)
	}

	pills := make(map[domain.BoxNumber]domain.Pill, len(remote))
	for _, entry := range remote {
		for _, unknown := range domain.UnknownTimeRanges(entry.Schedule) {
			r.log.Warnw("dropping unknown time range", "box", int(entry.BoxNumber), "time_range", unknown)
		}
		pills[entry.BoxNumber] = domain.Pill{
			BoxNumber: entry.BoxNumber,
			Name:      entry.Name,
			Schedule:  domain.ExpandSchedule(entry.Schedule),
		}
	}

	r.mu.Lock()
	r.pills = pills
	r.dirty = map[domain.BoxNumber]struct{}{}
	r.refreshedAt = r.clock.Now()
	r.mu.Unlock()

	r.log.Debugw("registry refreshed", "pills", len(pills))
	if err := r.persist(ctx); err != nil {
		r.log.Warnw("keeping refreshed registry in memory only", "err", err)
	}
	return nil
}

// AddPill asks the store to create a pill and then refreshes. Slot
// occupancy is decided by the store; its rejection is returned unchanged.
// A failed refresh after an accepted add wraps ErrRefreshAfterWrite.
func (r *Registry) AddPill(ctx context.Context, name string, box domain.BoxNumber) error {
	if err := domain.ValidateNewPill(name, box, r.slotCount); err != nil {
		return err
	}

	if err := r.store.AddPill(ctx, name, box); err != nil {
		return err
	}

	return r.refreshAfterWrite(ctx)
}

func (r *Registry) DeletePill(ctx context.Context, box domain.BoxNumber) error {
	if err := r.store.DeletePill(ctx, box); err != nil {
		return err
	}

	return r.refreshAfterWrite(ctx)
}

func (r *Registry) refreshAfterWrite(ctx context.Context) error {
	if err := r.Refresh(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshAfterWrite, err)
	}
	return nil
}

// UpdateSchedule sends the enabled windows of box to the store. The
// collection is not re-fetched; it already holds what was sent.
func (r *Registry) UpdateSchedule(ctx context.Context, box domain.BoxNumber) error {
	r.mu.RLock()
	pill, ok := r.pills[box]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: box %d", domain.ErrPillNotFound, box)
	}

	sparse := pill.Schedule.Collapse()
	if err := r.store.UpdateSchedule(ctx, box, sparse); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.dirty, box)
	r.mu.Unlock()

	return r.persist(ctx)
}

// SetWindow edits the local schedule only. UpdateSchedule must be called to
// send it to the store.
func (r *Registry) SetWindow(ctx context.Context, box domain.BoxNumber, key string, enabled bool, rawCount string) (domain.ScheduleEntry, error) {
	return r.editWindow(ctx, box, key, func(schedule domain.Schedule) (domain.Schedule, error) {
		return schedule.SetWindow(key, enabled, rawCount)
	})
}

// ToggleWindow flips a window on or off locally and keeps its dose count.
func (r *Registry) ToggleWindow(ctx context.Context, box domain.BoxNumber, key string, enabled bool) (domain.ScheduleEntry, error) {
	return r.editWindow(ctx, box, key, func(schedule domain.Schedule) (domain.Schedule, error) {
		return schedule.Toggle(key, enabled)
	})
}

func (r *Registry) editWindow(ctx context.Context, box domain.BoxNumber, key string, edit func(domain.Schedule) (domain.Schedule, error)) (domain.ScheduleEntry, error) {
	r.mu.Lock()
	pill, ok := r.pills[box]
	if !ok {
		r.mu.Unlock()
		return domain.ScheduleEntry{}, fmt.Errorf("%w: box %d", domain.ErrPillNotFound, box)
	}

	schedule, err := edit(pill.Schedule)
	if err != nil {
		r.mu.Unlock()
		return domain.ScheduleEntry{}, err
	}
	pill.Schedule = schedule
	r.pills[box] = pill
	r.dirty[box] = struct{}{}
	r.mu.Unlock()

	return schedule[key], r.persist(ctx)
}

// Pills returns copies sorted by box number.
func (r *Registry) Pills() []domain.Pill {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pills := make([]domain.Pill, 0, len(r.pills))
	for _, pill := range r.pills {
		pills = append(pills, pill.Clone())
	}
	domain.SortPills(pills)
	return pills
}

func (r *Registry) Pill(box domain.BoxNumber) (domain.Pill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pill, ok := r.pills[box]
	if !ok {
		return domain.Pill{}, fmt.Errorf("%w: box %d", domain.ErrPillNotFound, box)
	}
	return pill.Clone(), nil
}

func (r *Registry) FreeBoxes() []domain.BoxNumber {
	return domain.FreeBoxes(r.Pills(), r.slotCount)
}

// Dirty reports whether box has local edits not yet sent to the store.
func (r *Registry) Dirty(box domain.BoxNumber) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.dirty[box]
	return ok
}

func (r *Registry) RefreshedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.refreshedAt
}

func (r *Registry) SlotCount() int {
	return r.slotCount
}

func (r *Registry) persist(ctx context.Context) error {
	if r.snapshots == nil {
		return nil
	}

	r.mu.RLock()
	snapshot := ports.RegistrySnapshot{
		Pills:       make([]domain.Pill, 0, len(r.pills)),
		RefreshedAt: r.refreshedAt,
	}
	for _, pill := range r.pills {
		snapshot.Pills = append(snapshot.Pills, pill.Clone())
	}
	for box := range r.dirty {
		snapshot.Dirty = append(snapshot.Dirty, box)
	}
	r.mu.RUnlock()

	domain.SortPills(snapshot.Pills)
	sortBoxes(snapshot.Dirty)

	if err := r.snapshots.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("save registry snapshot: %w", err)
	}
	return nil
}

func sortBoxes(boxes []domain.BoxNumber) {
	sort.Slice(boxes, func(i, j int) bool { return boxes[i] < boxes[j] })
}
