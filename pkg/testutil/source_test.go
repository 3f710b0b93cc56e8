package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannZay/LibEvents/pkg/errors"
	"github.com/BannZay/LibEvents/pkg/testutil"
)

func TestRecordingSource(t *testing.T) {
	source := testutil.NewRecordingSource()

	require.NoError(t, source.Subscribe("PLAYER_LOGIN"))
	require.NoError(t, source.Subscribe("UNIT_DIED"))
	require.NoError(t, source.Unsubscribe("PLAYER_LOGIN"))

	assert.Equal(t, []string{"PLAYER_LOGIN", "UNIT_DIED"}, source.Subscribes())
	assert.Equal(t, []string{"PLAYER_LOGIN"}, source.Unsubscribes())
	assert.True(t, source.IsActive("UNIT_DIED"))
	assert.False(t, source.IsActive("PLAYER_LOGIN"))
	assert.Equal(t, 1, source.ActiveCount())
}

func TestRecordingSourceFailure(t *testing.T) {
	source := testutil.NewRecordingSource()
	source.FailSubscribe = true

	err := source.Subscribe("PLAYER_LOGIN")

	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Empty(t, source.Subscribes())
}

func TestCallRecorder(t *testing.T) {
	var rec testutil.CallRecorder

	rec.Record("owner-1", 1, "a")
	rec.Record("owner-2")

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "owner-1", calls[0].Owner)
	assert.Equal(t, []any{1, "a"}, calls[0].Args)
	assert.Empty(t, calls[1].Args)

	rec.Reset()
	assert.Zero(t, rec.Count())
}
