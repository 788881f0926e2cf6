package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowsAreOrderedByTimeOfDay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"morning", "noon", "afternoon", "evening", "night"}, WindowKeys())

	windows := Windows()
	windows[0].Label = "changed"
	got, ok := LookupWindow(WindowMorning)
	require.True(t, ok)
	assert.Equal(t, "5AM-10AM", got.Label)
	assert.Equal(t, "morning (5AM-10AM)", got.String())

	_, ok = LookupWindow("brunch")
	assert.False(t, ok)
}

func TestExpandEmptyScheduleDisablesEveryWindow(t *testing.T) {
	t.Parallel()

	schedule := ExpandSchedule(nil)

	require.Len(t, schedule, len(WindowKeys()))
	for _, key := range WindowKeys() {
		assert.Equal(t, ScheduleEntry{Enabled: false, DoseCount: 1}, schedule[key], key)
	}
}

func TestExpandScheduleDropsUnknownTimeRanges(t *testing.T) {
	t.Parallel()

	sparse := []SparseEntry{
		{TimeRange: WindowNight, Count: 2},
		{TimeRange: "brunch", Count: 4},
		{TimeRange: WindowMorning, Count: 1},
		{TimeRange: WindowEvening, Count: 0},
	}

	schedule := ExpandSchedule(sparse)

	assert.Equal(t, ScheduleEntry{Enabled: true, DoseCount: 2}, schedule[WindowNight])
	assert.Equal(t, ScheduleEntry{Enabled: true, DoseCount: 1}, schedule[WindowMorning])
	assert.Equal(t, ScheduleEntry{Enabled: true, DoseCount: 1}, schedule[WindowEvening])
	assert.Equal(t, ScheduleEntry{Enabled: false, DoseCount: 1}, schedule[WindowNoon])
	assert.NotContains(t, schedule, "brunch")
	assert.Equal(t, []string{"brunch"}, UnknownTimeRanges(sparse))
}

func TestCollapseExpandKeepsKnownPairsInCatalogOrder(t *testing.T) {
	t.Parallel()

	sparse := []SparseEntry{
		{TimeRange: WindowNight, Count: 3},
		{TimeRange: "lunch", Count: 9},
		{TimeRange: WindowNoon, Count: 2},
	}

	got := ExpandSchedule(sparse).Collapse()

	assert.Equal(t, []SparseEntry{
		{TimeRange: WindowNoon, Count: 2},
		{TimeRange: WindowNight, Count: 3},
	}, got)
	assert.Equal(t, got, ExpandSchedule(got).Collapse())
}

func TestScheduleSetWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		enabled  bool
		rawCount string
		want     ScheduleEntry
	}{
		{name: "empty count defaults", enabled: true, rawCount: "", want: ScheduleEntry{Enabled: true, DoseCount: 1}},
		{name: "numeric count", enabled: true, rawCount: "3", want: ScheduleEntry{Enabled: true, DoseCount: 3}},
		{name: "disabling keeps count", enabled: false, rawCount: "3", want: ScheduleEntry{Enabled: false, DoseCount: 3}},
		{name: "non numeric defaults", enabled: true, rawCount: "abc", want: ScheduleEntry{Enabled: true, DoseCount: 1}},
		{name: "zero defaults", enabled: true, rawCount: "0", want: ScheduleEntry{Enabled: true, DoseCount: 1}},
		{name: "negative defaults", enabled: true, rawCount: "-2", want: ScheduleEntry{Enabled: true, DoseCount: 1}},
		{name: "whitespace is trimmed", enabled: true, rawCount: " 4 ", want: ScheduleEntry{Enabled: true, DoseCount: 4}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			original := NewSchedule()
			updated, err := original.SetWindow(WindowAfternoon, tc.enabled, tc.rawCount)
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated[WindowAfternoon])
			assert.Equal(t, ScheduleEntry{Enabled: false, DoseCount: 1}, original[WindowAfternoon])
		})
	}
}

func TestScheduleSetWindowRejectsUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := NewSchedule().SetWindow("brunch", true, "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestScheduleToggleKeepsDoseCount(t *testing.T) {
	t.Parallel()

	schedule, err := NewSchedule().SetWindow(WindowEvening, true, "3")
	require.NoError(t, err)

	disabled, err := schedule.Toggle(WindowEvening, false)
	require.NoError(t, err)
	assert.Equal(t, ScheduleEntry{Enabled: false, DoseCount: 3}, disabled[WindowEvening])
	assert.True(t, schedule[WindowEvening].Enabled)

	enabled, err := disabled.Toggle(WindowEvening, true)
	require.NoError(t, err)
	assert.Equal(t, ScheduleEntry{Enabled: true, DoseCount: 3}, enabled[WindowEvening])

	_, err = enabled.Toggle("brunch", true)
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestCollapseSendsOnlyEnabledWindows(t *testing.T) {
	t.Parallel()

	schedule, err := NewSchedule().SetWindow(WindowMorning, true, "2")
	require.NoError(t, err)
	schedule, err = schedule.SetWindow(WindowEvening, false, "5")
	require.NoError(t, err)

	assert.Equal(t, []SparseEntry{{TimeRange: WindowMorning, Count: 2}}, schedule.Collapse())
	assert.Equal(t, 1, schedule.EnabledCount())
}

func TestBoxNumberDecodesNumbersAndStrings(t *testing.T) {
	t.Parallel()

	var payload []struct {
		BoxNumber BoxNumber `json:"boxNumber"`
	}
	require.NoError(t, json.Unmarshal([]byte(`[{"boxNumber":3},{"boxNumber":"5"}]`), &payload))
	assert.Equal(t, BoxNumber(3), payload[0].BoxNumber)
	assert.Equal(t, BoxNumber(5), payload[1].BoxNumber)

	var invalid struct {
		BoxNumber BoxNumber `json:"boxNumber"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"boxNumber":"five"}`), &invalid))
}

func TestValidateNewPill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pill    string
		box     BoxNumber
		wantErr string
	}{
		{name: "valid", pill: "Aspirin", box: 1},
		{name: "last slot", pill: "Aspirin", box: 8},
		{name: "blank name", pill: "  ", box: 1, wantErr: "name is required"},
		{name: "box zero", pill: "Aspirin", box: 0, wantErr: "between 1 and 8"},
		{name: "box past slot count", pill: "Aspirin", box: 9, wantErr: "between 1 and 8"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateNewPill(tc.pill, tc.box, 8)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidPill)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestFreeBoxesSkipsOccupiedSlots(t *testing.T) {
	t.Parallel()

	pills := []Pill{{BoxNumber: 2}, {BoxNumber: 5}}
	assert.Equal(t, []BoxNumber{1, 3, 4, 6}, FreeBoxes(pills, 6))
}

func TestPillLabelFallsBackToEmpty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "empty", Pill{}.Label())
	assert.Equal(t, "Aspirin", Pill{Name: "Aspirin"}.Label())
}

func TestRemoteErrorKinds(t *testing.T) {
	t.Parallel()

	notFound := &RemoteError{Kind: ErrorKindNotFound, Message: "Pill not found"}
	wrapped := fmt.Errorf("delete pill: %w", notFound)

	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.ErrorIs(t, wrapped, ErrValidation)
	assert.False(t, errors.Is(wrapped, ErrTransport))
	assert.Equal(t, "Pill not found", ErrorMessage(wrapped))

	transport := &RemoteError{Kind: ErrorKindTransport, Message: "list pills failed: connection refused"}
	assert.ErrorIs(t, transport, ErrTransport)
	assert.False(t, errors.Is(transport, ErrValidation))

	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
	assert.Equal(t, "", ErrorMessage(nil))
}
