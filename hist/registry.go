// Package hist provides a named histogram sink with binning fixed at
// declaration time. Filling is purely additive; each task instance owns its
// own registry.
package hist

import (
	"fmt"
	"sort"

	"go-hep.org/x/hep/hbook"
)

// Registry maps histogram names to their accumulators. Names must be
// declared before the first fill; filling an undeclared name is a
// programming error and panics.
type Registry struct {
	h1 map[string]*hbook.H1D
	h2 map[string]*hbook.H2D
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		h1: make(map[string]*hbook.H1D),
		h2: make(map[string]*hbook.H2D),
	}
}

// AddH1D declares a one-dimensional histogram.
func (r *Registry) AddH1D(name string, n int, lo, hi float64) {
	if _, dup := r.h1[name]; dup {
		panic(fmt.Sprintf("hist: duplicate histogram %q", name))
	}
	r.h1[name] = hbook.NewH1D(n, lo, hi)
}

// AddH2D declares a two-dimensional histogram.
func (r *Registry) AddH2D(name string, nx int, xlo, xhi float64, ny int, ylo, yhi float64) {
	if _, dup := r.h2[name]; dup {
		panic(fmt.Sprintf("hist: duplicate histogram %q", name))
	}
	r.h2[name] = hbook.NewH2D(nx, xlo, xhi, ny, ylo, yhi)
}

// Fill1D adds one entry to a declared one-dimensional histogram.
func (r *Registry) Fill1D(name string, x float64) {
	h, ok := r.h1[name]
	if !ok {
		panic(fmt.Sprintf("hist: fill of undeclared histogram %q", name))
	}
	h.Fill(x, 1)
}

// Fill2D adds one entry to a declared two-dimensional histogram.
func (r *Registry) Fill2D(name string, x, y float64) {
	h, ok := r.h2[name]
	if !ok {
		panic(fmt.Sprintf("hist: fill of undeclared histogram %q", name))
	}
	h.Fill(x, y, 1)
}

// H1D returns a declared one-dimensional histogram.
func (r *Registry) H1D(name string) *hbook.H1D {
	h, ok := r.h1[name]
	if !ok {
		panic(fmt.Sprintf("hist: undeclared histogram %q", name))
	}
	return h
}

// H2D returns a declared two-dimensional histogram.
func (r *Registry) H2D(name string) *hbook.H2D {
	h, ok := r.h2[name]
	if !ok {
		panic(fmt.Sprintf("hist: undeclared histogram %q", name))
	}
	return h
}

// Names returns all declared histogram names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.h1)+len(r.h2))
	for name := range r.h1 {
		names = append(names, name)
	}
	for name := range r.h2 {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
