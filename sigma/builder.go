package sigma

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/hist"
	"github.com/lfstrange/sigmakit/species"
)

// Mode selects how pairs are accepted: the standard kinematic/geometric cut
// chain, or thresholds on an attached confidence scorer. The mode is fixed at
// initialization; it is never inspected per row.
type Mode int

const (
	ModeStandard Mode = iota
	ModeML
)

// PDG codes used by the Monte-Carlo truth matching.
const (
	pdgPhoton = 22
	pdgLambda = 3122
	pdgSigma0 = 3212
)

// Config holds every selection parameter of the builder.
type Config struct {
	Mode Mode

	// Confidence-scorer thresholds (ModeML).
	GammaMLThreshold      float64
	LambdaMLThreshold     float64
	AntiLambdaMLThreshold float64

	// Photon leg criteria (ModeStandard).
	PhotonMaxMass     float64
	PhotonMaxDauEta   float64
	PhotonMinDCAToPV  float64
	PhotonMaxDCADau   float64
	PhotonMinRadius   float64
	PhotonMaxRadius   float64

	// Lambda leg criteria (ModeStandard).
	LambdaWindow      float64
	LambdaMaxDauEta   float64
	LambdaMinDCANegPV float64
	LambdaMinDCAPosPV float64
	LambdaMaxDCADau   float64
	LambdaMinRadius   float64
	LambdaMaxRadius   float64

	// Composite criteria.
	SigmaWindow float64
	SigmaMaxRap float64

	// Centrality class edges for the mass spectra.
	CentEdges []float64

	// Seed of the generator drawn once per accepted like-sign pair.
	Seed int64

	// Candidate-count progress logging period.
	ProgressEvery int

	Log *slog.Logger
}

// DefaultConfig returns the standard selection.
func DefaultConfig() Config {
	return Config{
		Mode:                  ModeStandard,
		GammaMLThreshold:      0.1,
		LambdaMLThreshold:     0.1,
		AntiLambdaMLThreshold: 0.1,
		PhotonMaxMass:         0.3,
		PhotonMaxDauEta:       1.0,
		PhotonMinDCAToPV:      0.001,
		PhotonMaxDCADau:       3.0,
		PhotonMinRadius:       0.5,
		PhotonMaxRadius:       250,
		LambdaWindow:          0.01,
		LambdaMaxDauEta:       1.0,
		LambdaMinDCANegPV:     0.01,
		LambdaMinDCAPosPV:     0.01,
		LambdaMaxDCADau:       3.5,
		LambdaMinRadius:       0.1,
		LambdaMaxRadius:       200,
		SigmaWindow:           0.05,
		SigmaMaxRap:           0.5,
		CentEdges:             []float64{0, 10, 30, 50, 100},
		Seed:                  1,
		ProgressEvery:         5000,
	}
}

// Builder reconstructs Sigma0 candidates within one collision at a time.
// One builder instance owns its funnel, histograms and generator; instances
// share nothing.
type Builder struct {
	cfg         Config
	funnel      *Funnel
	reg         *hist.Registry
	likeSign    *LikeSign
	rng         *rand.Rand
	log         *slog.Logger
	nCandidates int
}

// NewBuilder validates the configuration and declares all histograms.
func NewBuilder(cfg Config) (*Builder, error) {
	if cfg.Mode != ModeStandard && cfg.Mode != ModeML {
		return nil, fmt.Errorf("sigma: invalid selection mode %d", cfg.Mode)
	}
	if len(cfg.CentEdges) < 2 {
		return nil, fmt.Errorf("sigma: need at least two centrality edges, got %d", len(cfg.CentEdges))
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 5000
	}
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	b := &Builder{
		cfg:      cfg,
		funnel:   NewFunnel(),
		reg:      hist.NewRegistry(),
		likeSign: newLikeSign(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		log:      log,
	}

	b.reg.AddH1D("hEventVertexZ", 30, -15, 15)
	b.reg.AddH1D("hEventCentrality", 20, -100, 100)

	for _, name := range []string{
		"GammaAll", "LambdaAll", "AntiLambdaAll",
		"GammaSigma0", "LambdaSigma0", "GammaAntiSigma0", "LambdaAntiSigma0",
		"Sigma0All", "Sigma0AfterSel", "AntiSigma0All", "AntiSigma0AfterSel",
	} {
		b.reg.AddH2D("Efficiency/h2dPtVsCentrality_"+name, 20, 0, 100, 100, 0, 10)
	}
	b.reg.AddH2D("Efficiency/h2dSigmaPtVsLambdaPt", 100, 0, 10, 100, 0, 10)
	b.reg.AddH2D("Efficiency/h2dSigmaPtVsGammaPt", 100, 0, 10, 100, 0, 10)
	b.reg.AddH2D("Efficiency/h2dGammaPtResolution", 100, 0, 10, 100, -1, 1)
	b.reg.AddH2D("Efficiency/h2dLambdaPtResolution", 100, 0, 10, 100, -1, 1)

	for c := 0; c < len(cfg.CentEdges)-1; c++ {
		b.reg.AddH2D(massHistName("h2dMassSigmasAll", c), 100, 0, 10, 200, 1.16, 1.23)
		b.reg.AddH2D(massHistName("h2dMassSigmasAfterSel", c), 100, 0, 10, 200, 1.16, 1.23)
	}
	b.reg.AddH2D("h2dMassSigmasAll/overflow", 100, 0, 10, 200, 1.16, 1.23)
	b.reg.AddH2D("h2dMassSigmasAfterSel/overflow", 100, 0, 10, 200, 1.16, 1.23)

	return b, nil
}

func massHistName(prefix string, class int) string {
	return fmt.Sprintf("%s/c%d", prefix, class)
}

// centClass maps a centrality value to its class index, or -1 when outside
// the configured edges.
func (b *Builder) centClass(cent float64) int {
	edges := b.cfg.CentEdges
	for c := 0; c < len(edges)-1; c++ {
		if cent >= edges[c] && cent < edges[c+1] {
			return c
		}
	}
	return -1
}

// fillMassSpectrum routes one candidate into its centrality-class spectrum.
// Candidates outside the configured edges land in the overflow class, never
// on the floor.
func (b *Builder) fillMassSpectrum(prefix string, cent, pt, mass float64) {
	name := prefix + "/overflow"
	if c := b.centClass(cent); c >= 0 {
		name = massHistName(prefix, c)
	}
	b.reg.Fill2D(name, pt, mass)
}

// Funnel returns the builder's selection funnel.
func (b *Builder) Funnel() *Funnel { return b.funnel }

// Registry returns the builder's histogram sink.
func (b *Builder) Registry() *hist.Registry { return b.reg }

// LikeSignHists returns the like-sign background accumulators.
func (b *Builder) LikeSignHists() *LikeSign { return b.likeSign }

// NCandidates returns the number of accepted candidates so far.
func (b *Builder) NCandidates() int { return b.nCandidates }

// Process runs the selection over every collision in the store, emitting
// accepted candidates to w. Collisions are processed strictly sequentially.
func (b *Builder) Process(store *event.Store, w Writer) error {
	if b.cfg.Mode == ModeML && !store.HasScores() {
		return fmt.Errorf("sigma: ML selection configured but score columns are absent")
	}

	for ci := range store.Collisions {
		coll := &store.Collisions[ci]
		b.reg.Fill1D("hEventVertexZ", coll.PosZ)
		b.reg.Fill1D("hEventCentrality", coll.CentFT0C)
		w.Collision(CollisionRow{
			PosX: coll.PosX, PosY: coll.PosY, PosZ: coll.PosZ,
			CentFT0M: coll.CentFT0M, CentFT0A: coll.CentFT0A,
			CentFT0C: coll.CentFT0C, CentFV0A: coll.CentFV0A,
		})

		idx := store.V0sOf(coll.ID)
		for _, pair := range CombinationsFull(len(idx), len(idx)) {
			gamma := &store.V0s[idx[pair.I]]
			lambda := &store.V0s[idx[pair.J]]
			var gs, ls *event.MLScore
			if store.HasScores() {
				gs = &store.Scores[idx[pair.I]]
				ls = &store.Scores[idx[pair.J]]
			}
			if !b.selectPair(gamma, lambda, gs, ls) {
				continue
			}

			b.nCandidates++
			if b.nCandidates%b.cfg.ProgressEvery == 0 {
				b.log.Info("sigma0 candidates built", "n", b.nCandidates)
			}
			w.CollisionRef(coll.ID)
			b.fillTables(gamma, lambda, gs, ls, w)
		}
	}
	return nil
}

// selectPair applies the cut chain in its fixed order, charging one funnel
// stage per passed cut and abandoning the pair on the first failure.
func (b *Builder) selectPair(gamma, lambda *event.V0, gs, ls *event.MLScore) bool {
	if b.cfg.Mode == ModeML {
		if gamma.Type == 0 || lambda.Type == 0 {
			return false
		}
		if gs.Gamma <= b.cfg.GammaMLThreshold {
			return false
		}
		if ls.Lambda <= b.cfg.LambdaMLThreshold && ls.AntiLambda <= b.cfg.AntiLambdaMLThreshold {
			return false
		}
		return b.compositeCuts(gamma, lambda)
	}
	return b.selectPairStandard(gamma, lambda)
}

// selectPairStandard applies the kinematic/geometric chain regardless of the
// configured mode. MC-derived tables carry no scorer columns, so the MC path
// always selects this way.
func (b *Builder) selectPairStandard(gamma, lambda *event.V0) bool {
	if gamma.Type == 0 || lambda.Type == 0 {
		return false
	}
	if !b.photonCuts(gamma, true) {
		return false
	}
	if !b.lambdaCuts(lambda, true) {
		return false
	}
	return b.compositeCuts(gamma, lambda)
}

// compositeCuts applies the candidate mass window and rapidity criteria,
// charging the final funnel stage on acceptance.
func (b *Builder) compositeCuts(gamma, lambda *event.V0) bool {
	mass := InvMass(
		gamma.Px, gamma.Py, gamma.Pz, MassPhoton,
		lambda.Px, lambda.Py, lambda.Pz, MassLambda,
	)
	if math.Abs(mass-MassSigma0) > b.cfg.SigmaWindow {
		return false
	}
	rap := Rapidity(gamma.Px+lambda.Px, gamma.Py+lambda.Py, gamma.Pz+lambda.Pz, MassSigma0)
	if math.Abs(rap) > b.cfg.SigmaMaxRap {
		return false
	}
	b.funnel.Record(StageSigmaWindow)
	return true
}

func (b *Builder) photonCuts(gamma *event.V0, funnel bool) bool {
	record := func(s Stage) {
		if funnel {
			b.funnel.Record(s)
		}
	}
	if math.Abs(gamma.MGamma) > b.cfg.PhotonMaxMass {
		return false
	}
	record(StagePhotonMass)
	if math.Abs(gamma.NegativeEta) > b.cfg.PhotonMaxDauEta || math.Abs(gamma.PositiveEta) > b.cfg.PhotonMaxDauEta {
		return false
	}
	record(StagePhotonDauEta)
	if math.Abs(gamma.DCAPosToPV) < b.cfg.PhotonMinDCAToPV || math.Abs(gamma.DCANegToPV) < b.cfg.PhotonMinDCAToPV {
		return false
	}
	record(StagePhotonDCAToPV)
	if math.Abs(gamma.DCADaughters) > b.cfg.PhotonMaxDCADau {
		return false
	}
	record(StagePhotonDCADau)
	if gamma.Radius < b.cfg.PhotonMinRadius || gamma.Radius > b.cfg.PhotonMaxRadius {
		return false
	}
	record(StagePhotonRadius)
	return true
}

func (b *Builder) lambdaCuts(lambda *event.V0, funnel bool) bool {
	record := func(s Stage) {
		if funnel {
			b.funnel.Record(s)
		}
	}
	if math.Abs(lambda.MLambda-MassLambda) > b.cfg.LambdaWindow &&
		math.Abs(lambda.MAntiLambda-MassLambda) > b.cfg.LambdaWindow {
		return false
	}
	record(StageLambdaMass)
	if math.Abs(lambda.NegativeEta) > b.cfg.LambdaMaxDauEta || math.Abs(lambda.PositiveEta) > b.cfg.LambdaMaxDauEta {
		return false
	}
	record(StageLambdaDauEta)
	if math.Abs(lambda.DCAPosToPV) < b.cfg.LambdaMinDCAPosPV || math.Abs(lambda.DCANegToPV) < b.cfg.LambdaMinDCANegPV {
		return false
	}
	record(StageLambdaDCAToPV)
	if lambda.Radius < b.cfg.LambdaMinRadius || lambda.Radius > b.cfg.LambdaMaxRadius {
		return false
	}
	record(StageLambdaRadius)
	if math.Abs(lambda.DCADaughters) > b.cfg.LambdaMaxDCADau {
		return false
	}
	record(StageLambdaDCADau)
	return true
}

// fillTables writes the accepted candidate and the flat projection of both
// legs. Scores default to -1 when the scorer columns are absent.
func (b *Builder) fillTables(gamma, lambda *event.V0, gs, ls *event.MLScore, w Writer) {
	mass := InvMass(
		gamma.Px, gamma.Py, gamma.Pz, MassPhoton,
		lambda.Px, lambda.Py, lambda.Pz, MassLambda,
	)
	pt := Pt(gamma.Px+lambda.Px, gamma.Py+lambda.Py)
	rap := Rapidity(gamma.Px+lambda.Px, gamma.Py+lambda.Py, gamma.Pz+lambda.Pz, MassSigma0)
	w.Core(CoreRow{Pt: pt, Mass: mass, Rapidity: rap})

	gammaBDT, lambdaBDT, antiLambdaBDT := -1.0, -1.0, -1.0
	if gs != nil {
		gammaBDT = gs.Gamma
	}
	if ls != nil {
		lambdaBDT = ls.Lambda
		antiLambdaBDT = ls.AntiLambda
	}

	w.PhotonExtra(PhotonExtraRow{
		Pt:                gamma.Pt(),
		Mass:              gamma.MGamma,
		Qt:                gamma.Qt,
		Alpha:             gamma.Alpha,
		Radius:            gamma.Radius,
		CosPA:             gamma.CosPA,
		DCADau:            gamma.DCADaughters,
		DCANegPV:          gamma.DCANegToPV,
		DCAPosPV:          gamma.DCAPosToPV,
		ZConv:             gamma.ZConv,
		Eta:               gamma.Eta(),
		Y:                 Rapidity(gamma.Px, gamma.Py, gamma.Pz, MassPhoton),
		PosTPCNSigmaEl:    gamma.PosTPCNSigmaEl,
		NegTPCNSigmaEl:    gamma.NegTPCNSigmaEl,
		PosTPCCrossedRows: gamma.PosTPCCrossedRows,
		NegTPCCrossedRows: gamma.NegTPCCrossedRows,
		PosPt:             gamma.PositivePt,
		NegPt:             gamma.NegativePt,
		PosEta:            gamma.PositiveEta,
		NegEta:            gamma.NegativeEta,
		PosY:              Rapidity(gamma.PxPos, gamma.PyPos, gamma.PzPos, species.Electron.Mass()),
		NegY:              Rapidity(gamma.PxNeg, gamma.PyNeg, gamma.PzNeg, species.Electron.Mass()),
		PsiPair:           gamma.PsiPair,
		PosITSClusters:    gamma.PosITSClusters,
		NegITSClusters:    gamma.NegITSClusters,
		V0Type:            gamma.Type,
		BDTScore:          gammaBDT,
	})

	massProton := species.Proton.Mass()
	massPion := species.Pion.Mass()
	w.LambdaExtra(LambdaExtraRow{
		Pt:                lambda.Pt(),
		Mass:              lambda.MLambda,
		AntiMass:          lambda.MAntiLambda,
		Qt:                lambda.Qt,
		Alpha:             lambda.Alpha,
		Radius:            lambda.Radius,
		CosPA:             lambda.CosPA,
		DCADau:            lambda.DCADaughters,
		DCANegPV:          lambda.DCANegToPV,
		DCAPosPV:          lambda.DCAPosToPV,
		Eta:               lambda.Eta(),
		Y:                 Rapidity(lambda.Px, lambda.Py, lambda.Pz, MassLambda),
		PosPrTPCNSigma:    lambda.PosTPCNSigmaPr,
		PosPiTPCNSigma:    lambda.PosTPCNSigmaPi,
		NegPrTPCNSigma:    lambda.NegTPCNSigmaPr,
		NegPiTPCNSigma:    lambda.NegTPCNSigmaPi,
		PosTPCCrossedRows: lambda.PosTPCCrossedRows,
		NegTPCCrossedRows: lambda.NegTPCCrossedRows,
		PosPt:             lambda.PositivePt,
		NegPt:             lambda.NegativePt,
		PosEta:            lambda.PositiveEta,
		NegEta:            lambda.NegativeEta,
		PosPrY:            Rapidity(lambda.PxPos, lambda.PyPos, lambda.PzPos, massProton),
		PosPiY:            Rapidity(lambda.PxPos, lambda.PyPos, lambda.PzPos, massPion),
		NegPrY:            Rapidity(lambda.PxNeg, lambda.PyNeg, lambda.PzNeg, massProton),
		NegPiY:            Rapidity(lambda.PxNeg, lambda.PyNeg, lambda.PzNeg, massPion),
		PosITSClusters:    lambda.PosITSClusters,
		NegITSClusters:    lambda.NegITSClusters,
		V0Type:            lambda.Type,
		BDTScore:          lambdaBDT,
		AntiBDTScore:      antiLambdaBDT,
	})
}
