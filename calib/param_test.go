package calib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetheBlochShape(t *testing.T) {
	bb := DefaultBetheBloch()
	require.NoError(t, bb.Validate())

	// Steep fall below the minimum, relativistic rise above it.
	low := bb.Eval(0.5)
	min := bb.Eval(3.5)
	high := bb.Eval(100)
	assert.Greater(t, low, min)
	assert.Greater(t, high, min)
	assert.Greater(t, min, 0.0)
}

func TestTPCReso(t *testing.T) {
	reso := DefaultTPCReso()
	require.NoError(t, reso.Validate())

	// Default is a 7% relative resolution.
	assert.InDelta(t, 3.5, reso.Eval(50), 1e-12)
	assert.InDelta(t, 7.0, reso.Eval(100), 1e-12)
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		param Parametrization
		ok    bool
	}{
		{"bethe-bloch", Parametrization{Name: "s", Kind: FuncBetheBloch, Params: make([]float64, 5)}, true},
		{"reso", Parametrization{Name: "r", Kind: FuncTPCReso, Params: make([]float64, 2)}, true},
		{"short", Parametrization{Name: "s", Kind: FuncBetheBloch, Params: make([]float64, 3)}, false},
		{"bad-kind", Parametrization{Name: "s", Kind: FuncKind(42), Params: nil}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.param.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func writeParamFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.json")
	data := `{
  "BetheBloch": {"kind": "BetheBloch", "params": [0.0320981, 19.9768, 2.52666e-16, 2.72123, 6.08092]},
  "TPCReso":    {"kind": "TPCReso", "params": [0.07, 0.0]}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeParamFile(t)

	p, err := LoadFile(path, "BetheBloch")
	require.NoError(t, err)
	assert.Equal(t, "BetheBloch", p.Name)
	assert.Equal(t, FuncBetheBloch, p.Kind)
	assert.Len(t, p.Params, 5)

	_, err = LoadFile(path, "TOFReso")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"), "BetheBloch")
	assert.Error(t, err)
}
