package application

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDispenser(t *testing.T) (*Dispenser, *mocks.MockPillStore) {
	t.Helper()

	store := mocks.NewMockPillStore(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(refreshTime).Maybe()
	return NewDispenser(store, clock, nil), store
}

func TestDispenserRefreshStoresBothViews(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	store.EXPECT().ServerInfo(mockAnyContext()).Return(domain.ServerInfo{"currentTimeRange": "morning"}, nil).Once()
	store.EXPECT().DueNow(mockAnyContext()).Return(domain.DueNow{json.RawMessage(`{"boxNumber":1,"count":2}`)}, nil).Once()

	require.NoError(t, dispenser.Refresh(context.Background()))

	snapshot := dispenser.Snapshot()
	assert.Equal(t, "morning", snapshot.ServerInfo["currentTimeRange"])
	require.Len(t, snapshot.DueNow, 1)
	assert.JSONEq(t, `{"boxNumber":1,"count":2}`, string(snapshot.DueNow[0]))
	assert.Empty(t, snapshot.ServerInfoError)
	assert.Empty(t, snapshot.DueNowError)
	assert.Equal(t, refreshTime, snapshot.FetchedAt)
}

func TestDispenserServerInfoFailureStillFetchesDueNow(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	transportErr := &domain.RemoteError{Kind: domain.ErrorKindTransport, Message: "fetch server info failed: connection refused"}
	store.EXPECT().ServerInfo(mockAnyContext()).Return(nil, transportErr).Once()
	store.EXPECT().DueNow(mockAnyContext()).Return(domain.DueNow{}, nil).Once()

	err := dispenser.Refresh(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)

	snapshot := dispenser.Snapshot()
	assert.Equal(t, "failed to fetch server information: fetch server info failed: connection refused", snapshot.ServerInfoError)
	assert.Empty(t, snapshot.DueNowError)
	assert.NotNil(t, snapshot.DueNow)
}

func TestDispenserDueNowErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "store message is shown",
			err:  &domain.RemoteError{Kind: domain.ErrorKindValidation, Message: "No pills scheduled for current time range"},
			want: "No pills scheduled for current time range",
		},
		{
			name: "missing message falls back",
			err:  &domain.RemoteError{Kind: domain.ErrorKindTransport, Message: "fetch pills by time range failed: status 500"},
			want: "failed to fetch pills by time range",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dispenser, store := newTestDispenser(t)
			store.EXPECT().DueNow(mockAnyContext()).Return(nil, tc.err).Once()

			require.Error(t, dispenser.RefreshDueNow(context.Background()))
			assert.Equal(t, tc.want, dispenser.Snapshot().DueNowError)
		})
	}
}

func TestDispenserDueNowFailureKeepsLastGoodList(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	store.EXPECT().DueNow(mockAnyContext()).Return(domain.DueNow{json.RawMessage(`"box 1"`)}, nil).Once()
	require.NoError(t, dispenser.RefreshDueNow(context.Background()))

	store.EXPECT().DueNow(mockAnyContext()).Return(nil, &domain.RemoteError{Kind: domain.ErrorKindTransport, Message: "down"}).Once()
	require.Error(t, dispenser.RefreshDueNow(context.Background()))

	snapshot := dispenser.Snapshot()
	assert.Len(t, snapshot.DueNow, 1)
	assert.NotEmpty(t, snapshot.DueNowError)
}

func TestDispenserMarkServedRefreshesDueNow(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	store.EXPECT().MarkServed(mockAnyContext()).Return(nil).Once()
	store.EXPECT().DueNow(mockAnyContext()).Return(domain.DueNow{}, nil).Once()

	require.NoError(t, dispenser.MarkServed(context.Background()))
	assert.Empty(t, dispenser.Snapshot().DueNowError)
}

func TestDispenserUnmarkServedFailureSkipsRefresh(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	store.EXPECT().UnmarkServed(mockAnyContext()).Return(&domain.RemoteError{Kind: domain.ErrorKindTransport, Message: "unmark served failed: status 502"}).Once()

	err := dispenser.UnmarkServed(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to unmark time range as served: unmark served failed: status 502", dispenser.Snapshot().DueNowError)
	store.AssertNotCalled(t, "DueNow", mockAnyContext())
}

func TestDispenserInvalidateAndSnapshotCopies(t *testing.T) {
	dispenser, store := newTestDispenser(t)

	store.EXPECT().ServerInfo(mockAnyContext()).Return(domain.ServerInfo{"served": false}, nil).Once()
	require.NoError(t, dispenser.RefreshServerInfo(context.Background()))

	snapshot := dispenser.Snapshot()
	snapshot.ServerInfo["served"] = true
	assert.Equal(t, false, dispenser.Snapshot().ServerInfo["served"])

	dispenser.Invalidate()
	assert.Equal(t, domain.DispenserSnapshot{}, dispenser.Snapshot())
}
