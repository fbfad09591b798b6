package calib

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("timestamp") == "" {
			http.Error(w, "missing timestamp", http.StatusBadRequest)
			return
		}
		switch r.URL.Path {
		case "/Analysis/PID/TPC/BetheBloch":
			w.Write([]byte(`{"name": "BetheBloch", "kind": "BetheBloch", "params": [0.0320981, 19.9768, 2.52666e-16, 2.72123, 6.08092]}`))
		case "/Analysis/PID/TPC/Broken":
			w.Write([]byte(`{"name": "Broken", "kind": "BetheBloch", "params": [1.0]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGetForTimestamp(t *testing.T) {
	srv := newStoreServer(t)
	client := NewClient(srv.URL)

	p, err := client.GetForTimestamp(context.Background(), "Analysis/PID/TPC/BetheBloch", -1)
	require.NoError(t, err)
	assert.Equal(t, "BetheBloch", p.Name)
	assert.Len(t, p.Params, 5)
}

func TestClientNotFound(t *testing.T) {
	srv := newStoreServer(t)
	client := NewClient(srv.URL)

	_, err := client.GetForTimestamp(context.Background(), "Analysis/PID/TPC/TOFReso", -1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRejectsFutureTimestamp(t *testing.T) {
	srv := newStoreServer(t)
	client := NewClient(srv.URL)

	future := time.Now().Add(24 * time.Hour).UnixMilli()
	_, err := client.GetForTimestamp(context.Background(), "Analysis/PID/TPC/BetheBloch", future)
	assert.Error(t, err)
}

func TestClientValidatesPayload(t *testing.T) {
	srv := newStoreServer(t)
	client := NewClient(srv.URL)

	_, err := client.GetForTimestamp(context.Background(), "Analysis/PID/TPC/Broken", -1)
	assert.Error(t, err)
}
