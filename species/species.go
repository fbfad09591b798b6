// Package species defines the closed set of particle mass hypotheses used
// for detector-response evaluation and candidate building.
package species

import "fmt"

// ID identifies one mass hypothesis.
type ID uint8

const (
	Electron ID = iota
	Muon
	Pion
	Kaon
	Proton
	Deuteron
	Triton
	Helium3
	Alpha

	nSpecies
)

// N is the number of defined hypotheses.
const N = int(nSpecies)

// PDG masses in GeV/c^2.
var masses = [N]float64{
	Electron: 0.000510999,
	Muon:     0.105658,
	Pion:     0.139570,
	Kaon:     0.493677,
	Proton:   0.938272,
	Deuteron: 1.875613,
	Triton:   2.808921,
	Helium3:  2.808392,
	Alpha:    3.727379,
}

// Electric charge in units of e.
var charges = [N]float64{
	Electron: 1,
	Muon:     1,
	Pion:     1,
	Kaon:     1,
	Proton:   1,
	Deuteron: 1,
	Triton:   1,
	Helium3:  2,
	Alpha:    2,
}

var labels = [N]string{
	Electron: "El",
	Muon:     "Mu",
	Pion:     "Pi",
	Kaon:     "Ka",
	Proton:   "Pr",
	Deuteron: "De",
	Triton:   "Tr",
	Helium3:  "He",
	Alpha:    "Al",
}

// All returns every hypothesis in its fixed evaluation order.
func All() []ID {
	ids := make([]ID, N)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

func (id ID) valid() bool { return id < nSpecies }

// Mass returns the rest mass in GeV/c^2.
func (id ID) Mass() float64 {
	if !id.valid() {
		panic(fmt.Sprintf("species: invalid ID %d", id))
	}
	return masses[id]
}

// Charge returns the electric charge in units of e.
func (id ID) Charge() float64 {
	if !id.valid() {
		panic(fmt.Sprintf("species: invalid ID %d", id))
	}
	return charges[id]
}

func (id ID) String() string {
	if !id.valid() {
		return fmt.Sprintf("ID(%d)", id)
	}
	return labels[id]
}

// FromLabel resolves a short label such as "Pi" or "He".
func FromLabel(label string) (ID, error) {
	for i, l := range labels {
		if l == label {
			return ID(i), nil
		}
	}
	return 0, fmt.Errorf("species: unknown label %q", label)
}
