package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BannZay/LibEvents/pkg/events"
	"github.com/BannZay/LibEvents/pkg/testutil"
)

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(events.ResetDefault)

	t.Run("created_lazily_and_stable", func(t *testing.T) {
		events.ResetDefault()

		first := events.Default()
		require.NotNil(t, first)
		assert.Same(t, first, events.Default())
	})

	t.Run("set_default_replaces_instance", func(t *testing.T) {
		source := testutil.NewRecordingSource()
		reg := events.New(source)

		events.SetDefault(reg)
		assert.Same(t, reg, events.Default())

		events.ResetDefault()
		assert.NotSame(t, reg, events.Default())
	})

	t.Run("nil_registry_listener_uses_default", func(t *testing.T) {
		source := testutil.NewRecordingSource()
		events.SetDefault(events.New(source))

		l := events.NewListener(nil, nil)
		require.NoError(t, l.Set("PLAYER_LOGIN", func(target any, args ...any) {}))

		assert.Equal(t, []string{"PLAYER_LOGIN"}, source.Subscribes())
		assert.True(t, events.Default().IsEventRegistered(l, "PLAYER_LOGIN"))
	})
}
