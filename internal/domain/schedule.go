package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultDoseCount = 1

type ScheduleEntry struct {
	Enabled   bool
	DoseCount int
}

// Schedule is the dense form: every catalog window is always present.
type Schedule map[string]ScheduleEntry

// SparseEntry is the remote store's form, carrying only enabled windows.
type SparseEntry struct {
	TimeRange string `json:"timeRange" yaml:"timeRange"`
	Count     int    `json:"count" yaml:"count"`
}

func NewSchedule() Schedule {
	schedule := make(Schedule, len(catalog))
	for _, window := range catalog {
		schedule[window.Key] = ScheduleEntry{Enabled: false, DoseCount: DefaultDoseCount}
	}
	return schedule
}

// ExpandSchedule maps the sparse form onto the full catalog. Entries with a
// time range outside the catalog are dropped; see UnknownTimeRanges.
func ExpandSchedule(sparse []SparseEntry) Schedule {
	schedule := NewSchedule()
	for _, entry := range sparse {
		if _, ok := schedule[entry.TimeRange]; !ok {
			continue
		}
		schedule[entry.TimeRange] = ScheduleEntry{Enabled: true, DoseCount: normalizeDoseCount(entry.Count)}
	}
	return schedule
}

func UnknownTimeRanges(sparse []SparseEntry) []string {
	var unknown []string
	for _, entry := range sparse {
		if _, ok := LookupWindow(entry.TimeRange); !ok {
			unknown = append(unknown, entry.TimeRange)
		}
	}
	return unknown
}

// Collapse returns the enabled windows in catalog order.
func (s Schedule) Collapse() []SparseEntry {
	sparse := make([]SparseEntry, 0, len(catalog))
	for _, window := range catalog {
		entry, ok := s[window.Key]
		if !ok || !entry.Enabled {
			continue
		}
		sparse = append(sparse, SparseEntry{TimeRange: window.Key, Count: normalizeDoseCount(entry.DoseCount)})
	}
	return sparse
}

// SetWindow returns a copy of s with the window updated. The dose count is
// parsed from rawCount and is kept even when the window is disabled.
func (s Schedule) SetWindow(key string, enabled bool, rawCount string) (Schedule, error) {
	if _, ok := LookupWindow(key); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, key)
	}

	updated := s.Clone()
	updated[key] = ScheduleEntry{Enabled: enabled, DoseCount: ParseDoseCount(rawCount)}
	return updated, nil
}

// Toggle returns a copy of s with only the enabled flag of the window
// changed. The stored dose count is left as it was.
func (s Schedule) Toggle(key string, enabled bool) (Schedule, error) {
	if _, ok := LookupWindow(key); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWindow, key)
	}

	updated := s.Clone()
	entry := updated[key]
	entry.Enabled = enabled
	updated[key] = entry
	return updated, nil
}

// Clone copies s and fills in any missing catalog window with the default entry.
func (s Schedule) Clone() Schedule {
	cloned := NewSchedule()
	for key, entry := range s {
		if _, ok := cloned[key]; !ok {
			continue
		}
		entry.DoseCount = normalizeDoseCount(entry.DoseCount)
		cloned[key] = entry
	}
	return cloned
}

func (s Schedule) EnabledCount() int {
	count := 0
	for _, entry := range s {
		if entry.Enabled {
			count++
		}
	}
	return count
}

// ParseDoseCount never yields a value below DefaultDoseCount.
func ParseDoseCount(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultDoseCount
	}

	count, err := strconv.Atoi(trimmed)
	if err != nil {
		return DefaultDoseCount
	}

	return normalizeDoseCount(count)
}

func normalizeDoseCount(count int) int {
	if count < DefaultDoseCount {
		return DefaultDoseCount
	}
	return count
}
