package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllOrderIsFixed(t *testing.T) {
	all := All()
	require.Len(t, all, N)
	want := []ID{Electron, Muon, Pion, Kaon, Proton, Deuteron, Triton, Helium3, Alpha}
	assert.Equal(t, want, all)
}

func TestMassesAndCharges(t *testing.T) {
	for _, sp := range All() {
		assert.Greater(t, sp.Mass(), 0.0, "mass of %s", sp)
		assert.Greater(t, sp.Charge(), 0.0, "charge of %s", sp)
	}
	assert.InDelta(t, 0.139570, Pion.Mass(), 1e-9)
	assert.InDelta(t, 0.938272, Proton.Mass(), 1e-9)
	assert.Equal(t, 2.0, Helium3.Charge())
	assert.Equal(t, 2.0, Alpha.Charge())
}

func TestFromLabel(t *testing.T) {
	for _, sp := range All() {
		got, err := FromLabel(sp.String())
		require.NoError(t, err)
		assert.Equal(t, sp, got)
	}

	_, err := FromLabel("Xi")
	assert.Error(t, err)
}

func TestInvalidIDPanics(t *testing.T) {
	assert.Panics(t, func() { ID(200).Mass() })
	assert.Panics(t, func() { ID(200).Charge() })
}
