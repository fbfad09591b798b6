// Package sigma combinatorially reconstructs Sigma0 -> Lambda + gamma
// candidates from per-collision V0 tables, applying a fixed cut chain with a
// counted selection funnel.
package sigma

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Nominal masses in GeV/c^2.
const (
	MassPhoton = 0.0
	MassLambda = 1.115683
	MassSigma0 = 1.192642
)

func fourVec(px, py, pz, m float64) fmom.PxPyPzE {
	e := math.Sqrt(px*px + py*py + pz*pz + m*m)
	return fmom.NewPxPyPzE(px, py, pz, e)
}

// InvMass returns the invariant mass of two legs under their assumed rest
// masses, via the Minkowski invariant of the summed four-vectors.
func InvMass(px1, py1, pz1, m1, px2, py2, pz2, m2 float64) float64 {
	p1 := fourVec(px1, py1, pz1, m1)
	p2 := fourVec(px2, py2, pz2, m2)
	return fmom.InvMass(&p1, &p2)
}

// Rapidity returns the longitudinal rapidity of a three-momentum under an
// assumed rest mass.
func Rapidity(px, py, pz, m float64) float64 {
	e := math.Sqrt(px*px + py*py + pz*pz + m*m)
	return 0.5 * math.Log((e+pz)/(e-pz))
}

// Pt returns the transverse momentum of a summed three-momentum.
func Pt(px, py float64) float64 {
	return math.Hypot(px, py)
}
