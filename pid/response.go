// Package pid computes expected detector signal and identification
// significance per particle mass hypothesis from calibrated response
// parametrizations.
package pid

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/lfstrange/sigmakit/calib"
	"github.com/lfstrange/sigmakit/species"
)

// mip is the signal scale of a minimum-ionizing particle (A.U.).
const mip = 50.0

// Response evaluates the expected energy-loss signal and its resolution.
// Exactly one signal and one resolution parametrization are active at a time;
// both are loaded once and never mutated mid-run.
type Response struct {
	signal *calib.Parametrization
	sigma  *calib.Parametrization
}

// NewResponse pairs a signal and a resolution parametrization.
func NewResponse(signal, sigma *calib.Parametrization) (*Response, error) {
	if signal.Kind != calib.FuncBetheBloch {
		return nil, fmt.Errorf("pid: signal parametrization %q has form %v, want %v",
			signal.Name, signal.Kind, calib.FuncBetheBloch)
	}
	if sigma.Kind != calib.FuncTPCReso {
		return nil, fmt.Errorf("pid: resolution parametrization %q has form %v, want %v",
			sigma.Name, sigma.Kind, calib.FuncTPCReso)
	}
	return &Response{signal: signal, sigma: sigma}, nil
}

// ExpectedSignal returns the expected energy loss for the hypothesis at the
// given momentum. Pure: no state is touched.
func (r *Response) ExpectedSignal(sp species.ID, mom float64) float64 {
	bg := mom / sp.Mass()
	z := sp.Charge()
	return mip * r.signal.Eval(bg) * math.Pow(z, 2)
}

// ExpectedSigma returns the expected signal resolution for the hypothesis at
// the given momentum.
func (r *Response) ExpectedSigma(sp species.ID, mom float64) float64 {
	return r.sigma.Eval(r.ExpectedSignal(sp, mom))
}

// Separation returns the signed deviation of the measured signal from the
// expectation, in units of the expected resolution.
func (r *Response) Separation(sp species.ID, mom, measured float64) float64 {
	return (measured - r.ExpectedSignal(sp, mom)) / r.ExpectedSigma(sp, mom)
}

// LoadConfig selects where the response parametrizations come from. A
// non-empty ParamFile wins over the store.
type LoadConfig struct {
	ParamFile  string
	SignalName string
	SigmaName  string
	StoreURL   string
	StorePath  string
	// Validity timestamp in ms since epoch; negative means "now".
	Timestamp int64
	Log       *slog.Logger
}

// DefaultLoadConfig returns the standard parametrization names.
func DefaultLoadConfig() LoadConfig {
	return LoadConfig{
		SignalName: "BetheBloch",
		SigmaName:  "TPCReso",
		StorePath:  "Analysis/PID/TPC",
		Timestamp:  -1,
	}
}

// Load resolves both parametrizations according to cfg. Any failure is fatal
// to initialization; no partial response is returned.
func Load(ctx context.Context, cfg LoadConfig) (*Response, error) {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	var signal, sigma *calib.Parametrization
	var err error
	if cfg.ParamFile != "" {
		log.Info("loading response parametrizations from file",
			"file", cfg.ParamFile, "signal", cfg.SignalName, "sigma", cfg.SigmaName)
		if signal, err = calib.LoadFile(cfg.ParamFile, cfg.SignalName); err != nil {
			return nil, fmt.Errorf("pid: load signal parametrization: %w", err)
		}
		if sigma, err = calib.LoadFile(cfg.ParamFile, cfg.SigmaName); err != nil {
			return nil, fmt.Errorf("pid: load sigma parametrization: %w", err)
		}
	} else {
		client := calib.NewClient(cfg.StoreURL)
		path := cfg.StorePath + "/" + cfg.SignalName
		log.Info("loading response parametrization from store", "path", path, "timestamp", cfg.Timestamp)
		if signal, err = client.GetForTimestamp(ctx, path, cfg.Timestamp); err != nil {
			return nil, fmt.Errorf("pid: load signal parametrization: %w", err)
		}
		path = cfg.StorePath + "/" + cfg.SigmaName
		log.Info("loading response parametrization from store", "path", path, "timestamp", cfg.Timestamp)
		if sigma, err = client.GetForTimestamp(ctx, path, cfg.Timestamp); err != nil {
			return nil, fmt.Errorf("pid: load sigma parametrization: %w", err)
		}
	}
	return NewResponse(signal, sigma)
}
