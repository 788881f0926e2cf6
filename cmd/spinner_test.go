package cmd

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteCallKeepsOutcomeAndClearsView(t *testing.T) {
	callErr := errors.New("boom")
	model := newRemoteCall(context.Background(), "Fetching pills...", func(context.Context) error {
		return callErr
	})
	assert.Contains(t, model.View(), "Fetching pills...")

	msg := model.invoke()
	finished, ok := msg.(remoteCallFinished)
	require.True(t, ok)
	assert.ErrorIs(t, finished.outcome, callErr)

	updated, cmd := model.Update(remoteCallFinished{outcome: callErr, elapsed: 2 * time.Second})
	require.NotNil(t, cmd)

	done, ok := updated.(remoteCall)
	require.True(t, ok)
	assert.True(t, done.finished)
	assert.ErrorIs(t, done.outcome, callErr)
	assert.Equal(t, 2*time.Second, done.elapsed)
	assert.Empty(t, done.View())
}
