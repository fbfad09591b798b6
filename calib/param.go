// Package calib models named, versioned detector-response parametrizations
// and their retrieval from offline files or a timestamp-indexed store.
package calib

import (
	"encoding/json"
	"fmt"
	"math"
)

// FuncKind selects the functional form of a parametrization.
type FuncKind int

const (
	// FuncBetheBloch is the five-parameter ALEPH energy-loss curve,
	// evaluated as a function of beta*gamma.
	FuncBetheBloch FuncKind = iota
	// FuncTPCReso is a two-parameter relative resolution, evaluated as a
	// function of the expected signal.
	FuncTPCReso
)

var kindNames = map[FuncKind]string{
	FuncBetheBloch: "BetheBloch",
	FuncTPCReso:    "TPCReso",
}

var nParams = map[FuncKind]int{
	FuncBetheBloch: 5,
	FuncTPCReso:    2,
}

func (k FuncKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FuncKind(%d)", int(k))
}

func (k FuncKind) MarshalJSON() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("calib: cannot marshal %v", k)
	}
	return json.Marshal(name)
}

func (k *FuncKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("calib: unknown functional form %q", name)
}

// Parametrization is one calibrated response function. It is loaded once at
// task initialization and never mutated afterwards.
type Parametrization struct {
	Name   string    `json:"name"`
	Kind   FuncKind  `json:"kind"`
	Params []float64 `json:"params"`
}

// Validate checks that the parameter vector matches the functional form.
func (p *Parametrization) Validate() error {
	want, ok := nParams[p.Kind]
	if !ok {
		return fmt.Errorf("calib: %q: unknown functional form", p.Name)
	}
	if len(p.Params) != want {
		return fmt.Errorf("calib: %q: %v wants %d parameters, got %d",
			p.Name, p.Kind, want, len(p.Params))
	}
	return nil
}

// Eval evaluates the parametrization. The meaning of x depends on the
// functional form: beta*gamma for the signal curve, expected signal for the
// resolution curve.
func (p *Parametrization) Eval(x float64) float64 {
	switch p.Kind {
	case FuncBetheBloch:
		return betheBloch(p.Params, x)
	case FuncTPCReso:
		return tpcReso(p.Params, x)
	default:
		panic(fmt.Sprintf("calib: %q: unknown functional form", p.Name))
	}
}

// betheBloch is the ALEPH parametrization
//
//	f(bg) = p0/beta^p3 * (p1 - beta^p3 - ln(p2 + 1/bg^p4))
func betheBloch(par []float64, bg float64) float64 {
	beta := bg / math.Sqrt(1+bg*bg)
	aa := math.Pow(beta, par[3])
	bb := math.Pow(1/bg, par[4])
	return par[0] / aa * (par[1] - aa - math.Log(par[2]+bb))
}

// tpcReso returns the absolute expected sigma for a given expected signal:
// a constant relative term plus a term growing at small signal.
func tpcReso(par []float64, signal float64) float64 {
	if signal <= 0 {
		return math.Hypot(par[0], par[1])
	}
	return signal * math.Hypot(par[0], par[1]/math.Sqrt(signal))
}

// DefaultBetheBloch returns the default signal parametrization, used when no
// calibration object can be fetched in standalone studies.
func DefaultBetheBloch() *Parametrization {
	return &Parametrization{
		Name:   "BetheBloch",
		Kind:   FuncBetheBloch,
		Params: []float64{0.0320981, 19.9768, 2.52666e-16, 2.72123, 6.08092},
	}
}

// DefaultTPCReso returns the default resolution parametrization.
func DefaultTPCReso() *Parametrization {
	return &Parametrization{
		Name:   "TPCReso",
		Kind:   FuncTPCReso,
		Params: []float64{0.07, 0.0},
	}
}
