package sigma

// Output row schemas. Each accepted candidate is written as one core row plus
// one flat per-leg extras row per constituent; the projection copies values,
// it never references the input rows.

// CollisionRow characterises one processed collision.
type CollisionRow struct {
	PosX, PosY, PosZ                       float64
	CentFT0M, CentFT0A, CentFT0C, CentFV0A float64
}

// CoreRow is the accepted-candidate kinematic record.
type CoreRow struct {
	Pt       float64
	Mass     float64
	Rapidity float64
}

// PhotonExtraRow carries the photon leg's copied-through attributes.
type PhotonExtraRow struct {
	Pt, Mass, Qt, Alpha, Radius  float64
	CosPA, DCADau, DCANegPV      float64
	DCAPosPV, ZConv, Eta, Y      float64
	PosTPCNSigmaEl               float64
	NegTPCNSigmaEl               float64
	PosTPCCrossedRows            uint8
	NegTPCCrossedRows            uint8
	PosPt, NegPt, PosEta, NegEta float64
	PosY, NegY, PsiPair          float64
	PosITSClusters               int
	NegITSClusters               int
	V0Type                       uint8
	BDTScore                     float64
}

// LambdaExtraRow carries the lambda leg's copied-through attributes.
type LambdaExtraRow struct {
	Pt, Mass, AntiMass, Qt, Alpha  float64
	Radius, CosPA, DCADau          float64
	DCANegPV, DCAPosPV, Eta, Y     float64
	PosPrTPCNSigma, PosPiTPCNSigma float64
	NegPrTPCNSigma, NegPiTPCNSigma float64
	PosTPCCrossedRows              uint8
	NegTPCCrossedRows              uint8
	PosPt, NegPt, PosEta, NegEta   float64
	PosPrY, PosPiY, NegPrY, NegPiY float64
	PosITSClusters                 int
	NegITSClusters                 int
	V0Type                         uint8
	BDTScore                       float64
	AntiBDTScore                   float64
}

// MCCoreRow classifies one accepted candidate against Monte-Carlo truth.
type MCCoreRow struct {
	IsSigma     bool
	IsAntiSigma bool
}

// Writer is the append-only output sink. One row is written per emitted
// entity; schemas are fixed per entity type.
type Writer interface {
	Collision(CollisionRow)
	CollisionRef(collID int64)
	Core(CoreRow)
	PhotonExtra(PhotonExtraRow)
	LambdaExtra(LambdaExtraRow)
	MCCore(MCCoreRow)
}

// Tables is the in-memory Writer used by the analysis binaries and tests.
type Tables struct {
	Collisions   []CollisionRow
	Refs         []int64
	Cores        []CoreRow
	PhotonExtras []PhotonExtraRow
	LambdaExtras []LambdaExtraRow
	MCCores      []MCCoreRow
}

// NewTables returns an empty table set.
func NewTables() *Tables { return &Tables{} }

func (t *Tables) Collision(r CollisionRow)     { t.Collisions = append(t.Collisions, r) }
func (t *Tables) CollisionRef(collID int64)    { t.Refs = append(t.Refs, collID) }
func (t *Tables) Core(r CoreRow)               { t.Cores = append(t.Cores, r) }
func (t *Tables) PhotonExtra(r PhotonExtraRow) { t.PhotonExtras = append(t.PhotonExtras, r) }
func (t *Tables) LambdaExtra(r LambdaExtraRow) { t.LambdaExtras = append(t.LambdaExtras, r) }
func (t *Tables) MCCore(r MCCoreRow)           { t.MCCores = append(t.MCCores, r) }
