package pid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lfstrange/sigmakit/calib"
	"github.com/lfstrange/sigmakit/species"
)

func newResponse(t *testing.T) *Response {
	t.Helper()
	resp, err := NewResponse(calib.DefaultBetheBloch(), calib.DefaultTPCReso())
	require.NoError(t, err)
	return resp
}

func TestNewResponseRejectsWrongForms(t *testing.T) {
	_, err := NewResponse(calib.DefaultTPCReso(), calib.DefaultTPCReso())
	assert.Error(t, err)
	_, err = NewResponse(calib.DefaultBetheBloch(), calib.DefaultBetheBloch())
	assert.Error(t, err)
}

func TestSeparation(t *testing.T) {
	resp := newResponse(t)

	exp := resp.ExpectedSignal(species.Pion, 0.5)
	assert.Greater(t, exp, 0.0)

	// A measurement equal to the expectation sits at zero by construction.
	assert.InDelta(t, 0.0, resp.Separation(species.Pion, 0.5, exp), 1e-12)

	sigma := resp.ExpectedSigma(species.Pion, 0.5)
	assert.InDelta(t, 2.0, resp.Separation(species.Pion, 0.5, exp+2*sigma), 1e-9)
	assert.InDelta(t, -2.0, resp.Separation(species.Pion, 0.5, exp-2*sigma), 1e-9)
}

func TestExpectedSignalChargeScaling(t *testing.T) {
	resp := newResponse(t)

	// At equal beta*gamma a doubly charged hypothesis expects 4x the signal.
	const bg = 2.0
	pr := resp.ExpectedSignal(species.Proton, bg*species.Proton.Mass())
	he := resp.ExpectedSignal(species.Helium3, bg*species.Helium3.Mass())
	assert.InDelta(t, 4.0, he/pr, 1e-9)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	data := `{
  "BetheBloch": {"kind": "BetheBloch", "params": [0.0320981, 19.9768, 2.52666e-16, 2.72123, 6.08092]},
  "TPCReso":    {"kind": "TPCReso", "params": [0.07, 0.0]}
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg := DefaultLoadConfig()
	cfg.ParamFile = path
	resp, err := Load(context.Background(), cfg)
	require.NoError(t, err)
	assert.Greater(t, resp.ExpectedSignal(species.Pion, 0.5), 0.0)

	cfg.SigmaName = "TOFReso"
	_, err = Load(context.Background(), cfg)
	assert.Error(t, err)
}

func TestLoadFromStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Analysis/PID/TPC/BetheBloch":
			w.Write([]byte(`{"name": "BetheBloch", "kind": "BetheBloch", "params": [0.0320981, 19.9768, 2.52666e-16, 2.72123, 6.08092]}`))
		case "/Analysis/PID/TPC/TPCReso":
			w.Write([]byte(`{"name": "TPCReso", "kind": "TPCReso", "params": [0.07, 0.0]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	cfg := DefaultLoadConfig()
	cfg.StoreURL = srv.URL
	resp, err := Load(context.Background(), cfg)
	require.NoError(t, err)

	sigma := resp.ExpectedSigma(species.Pion, 0.5)
	assert.InDelta(t, 0.07*resp.ExpectedSignal(species.Pion, 0.5), sigma, 1e-9)
}
