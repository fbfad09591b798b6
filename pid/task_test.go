package pid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/species"
)

type fakeConsumer struct{ want []species.ID }

func (c fakeConsumer) RequiredSpecies() []species.ID { return c.want }

func someTracks() []event.Track {
	return []event.Track{
		{TPCInnerParam: 0.5, TPCSignal: 80},
		{TPCInnerParam: 1.2, TPCSignal: 55},
		{TPCInnerParam: 3.0, TPCSignal: 49},
	}
}

func TestAutoWithoutConsumersProducesNothing(t *testing.T) {
	task, err := NewTask(newResponse(t), DefaultConfig())
	require.NoError(t, err)

	task.Process(someTracks())
	for _, sp := range species.All() {
		assert.False(t, task.Enabled(sp), "species %s", sp)
		_, ok := task.Table(sp)
		assert.False(t, ok, "species %s", sp)
	}
}

func TestAutoEnablesRequestedSpecies(t *testing.T) {
	task, err := NewTask(newResponse(t), DefaultConfig(),
		fakeConsumer{want: []species.ID{species.Pion, species.Proton}})
	require.NoError(t, err)

	task.Process(someTracks())

	for _, sp := range []species.ID{species.Pion, species.Proton} {
		require.True(t, task.Enabled(sp))
		tab, ok := task.Table(sp)
		require.True(t, ok)
		assert.Equal(t, sp, tab.Species)
		assert.Len(t, tab.Records, 3)
	}
	assert.False(t, task.Enabled(species.Kaon))
}

func TestForcedOnOverridesConsumers(t *testing.T) {
	cfg := DefaultConfig()
	for i := range cfg.Toggles {
		cfg.Toggles[i] = Off
	}
	cfg.Toggles[species.Kaon] = On

	task, err := NewTask(newResponse(t), cfg,
		fakeConsumer{want: []species.ID{species.Pion}})
	require.NoError(t, err)

	// Forced-off pion stays off despite the consumer request.
	assert.False(t, task.Enabled(species.Pion))
	assert.True(t, task.Enabled(species.Kaon))
}

func TestRecordsMatchDirectIdentify(t *testing.T) {
	task, err := NewTask(newResponse(t), DefaultConfig(),
		fakeConsumer{want: []species.ID{species.Pion}})
	require.NoError(t, err)

	tracks := someTracks()
	task.Process(tracks)

	tab, ok := task.Table(species.Pion)
	require.True(t, ok)
	require.Len(t, tab.Records, len(tracks))
	for i := range tracks {
		assert.Equal(t, task.Identify(&tracks[i], species.Pion), tab.Records[i])
	}
}

func TestNewTaskRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Toggles[species.Pion] = Toggle(7)
	_, err := NewTask(newResponse(t), cfg)
	assert.Error(t, err)

	_, err = NewTask(newResponse(t), DefaultConfig(),
		fakeConsumer{want: []species.ID{species.ID(99)}})
	assert.Error(t, err)
}
