package sigma

import (
	"fmt"
	"math"

	"github.com/lfstrange/sigmakit/event"
)

// ProcessMC runs the selection over Monte-Carlo data, filling the efficiency
// histograms and writing one truth classification per accepted candidate.
// MC tables carry no scorer columns, so the kinematic chain applies here
// regardless of the configured mode. Candidates are also recorded in the mass
// spectra before selection, so truth-matched losses stay visible.
func (b *Builder) ProcessMC(store *event.Store, w Writer) error {
	if !store.HasMC() {
		return fmt.Errorf("sigma: MC processing requested but provenance columns are absent")
	}

	for ci := range store.Collisions {
		coll := &store.Collisions[ci]
		cent := coll.CentFT0C
		idx := store.V0sOf(coll.ID)

		for _, gi := range idx {
			gamma := &store.V0s[gi]
			gammaMC := &store.MC[gi]
			b.fillSingleMC(gamma, gammaMC, cent)

			for _, li := range idx {
				lambda := &store.V0s[li]
				lambdaMC := &store.MC[li]

				mass := InvMass(
					gamma.Px, gamma.Py, gamma.Pz, MassPhoton,
					lambda.Px, lambda.Py, lambda.Pz, MassLambda,
				)
				pt := Pt(gamma.Px+lambda.Px, gamma.Py+lambda.Py)
				absRap := math.Abs(Rapidity(gamma.Px+lambda.Px, gamma.Py+lambda.Py, gamma.Pz+lambda.Pz, MassSigma0))

				b.fillMassSpectrum("h2dMassSigmasAll", cent, pt, mass)

				isSigma := gammaMC.PDGCode == pdgPhoton && gammaMC.PDGCodeMother == pdgSigma0 &&
					lambdaMC.PDGCode == pdgLambda && lambdaMC.PDGCodeMother == pdgSigma0 &&
					gammaMC.MotherID == lambdaMC.MotherID
				isAntiSigma := gammaMC.PDGCode == pdgPhoton && gammaMC.PDGCodeMother == -pdgSigma0 &&
					lambdaMC.PDGCode == -pdgLambda && lambdaMC.PDGCodeMother == -pdgSigma0 &&
					gammaMC.MotherID == lambdaMC.MotherID

				if isSigma && absRap < 0.5 {
					b.reg.Fill2D("Efficiency/h2dPtVsCentrality_Sigma0All", cent, pt)
					b.reg.Fill2D("Efficiency/h2dSigmaPtVsLambdaPt", pt, lambda.Pt())
					b.reg.Fill2D("Efficiency/h2dSigmaPtVsGammaPt", pt, gamma.Pt())
				}
				if isAntiSigma && absRap < 0.5 {
					b.reg.Fill2D("Efficiency/h2dPtVsCentrality_AntiSigma0All", cent, pt)
				}

				if !b.selectPairStandard(gamma, lambda) {
					continue
				}

				b.fillMassSpectrum("h2dMassSigmasAfterSel", cent, pt, mass)
				if isSigma {
					b.reg.Fill2D("Efficiency/h2dPtVsCentrality_Sigma0AfterSel", cent, pt)
				}
				if isAntiSigma {
					b.reg.Fill2D("Efficiency/h2dPtVsCentrality_AntiSigma0AfterSel", cent, pt)
				}
				w.MCCore(MCCoreRow{IsSigma: isSigma, IsAntiSigma: isAntiSigma})
			}
		}
	}
	return nil
}

// fillSingleMC fills the per-leg efficiency histograms for one V0 row.
func (b *Builder) fillSingleMC(v *event.V0, mc *event.MCTruth, cent float64) {
	ptMC := Pt(mc.PxMC, mc.PyMC)
	switch mc.PDGCode {
	case pdgPhoton:
		if math.Abs(Rapidity(v.Px, v.Py, v.Pz, MassPhoton)) >= 0.5 {
			return
		}
		b.reg.Fill2D("Efficiency/h2dPtVsCentrality_GammaAll", cent, v.Pt())
		b.reg.Fill2D("Efficiency/h2dGammaPtResolution", v.Pt(), v.Pt()-ptMC)
		if mc.PDGCodeMother == pdgSigma0 {
			b.reg.Fill2D("Efficiency/h2dPtVsCentrality_GammaSigma0", cent, v.Pt())
		}
		if mc.PDGCodeMother == -pdgSigma0 {
			b.reg.Fill2D("Efficiency/h2dPtVsCentrality_GammaAntiSigma0", cent, v.Pt())
		}
	case pdgLambda:
		if math.Abs(Rapidity(v.Px, v.Py, v.Pz, MassLambda)) >= 0.5 {
			return
		}
		b.reg.Fill2D("Efficiency/h2dPtVsCentrality_LambdaAll", cent, v.Pt())
		b.reg.Fill2D("Efficiency/h2dLambdaPtResolution", v.Pt(), v.Pt()-ptMC)
		if mc.PDGCodeMother == pdgSigma0 {
			b.reg.Fill2D("Efficiency/h2dPtVsCentrality_LambdaSigma0", cent, v.Pt())
		}
	case -pdgLambda:
		if math.Abs(Rapidity(v.Px, v.Py, v.Pz, MassLambda)) >= 0.5 {
			return
		}
		b.reg.Fill2D("Efficiency/h2dPtVsCentrality_AntiLambdaAll", cent, v.Pt())
		if mc.PDGCodeMother == -pdgSigma0 {
			b.reg.Fill2D("Efficiency/h2dPtVsCentrality_LambdaAntiSigma0", cent, v.Pt())
		}
	}
}
