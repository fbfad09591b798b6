// Package event holds the tabular per-collision data model consumed by the
// analysis tasks: collisions, tracks and V0 decay candidates, grouped by
// collision with stable row identity.
package event

// Collision is one reconstructed interaction.
type Collision struct {
	ID       int64   `json:"id"`
	PosX     float64 `json:"posX"`
	PosY     float64 `json:"posY"`
	PosZ     float64 `json:"posZ"`
	CentFT0M float64 `json:"centFT0M"`
	CentFT0A float64 `json:"centFT0A"`
	CentFT0C float64 `json:"centFT0C"`
	CentFV0A float64 `json:"centFV0A"`
}

// Track is one reconstructed charged-particle trajectory. Rows are read-only
// inputs produced upstream.
type Track struct {
	CollisionID int64   `json:"collisionID"`
	P           float64 `json:"p"`
	Pt          float64 `json:"pt"`
	Eta         float64 `json:"eta"`
	// Momentum at the inner detector wall, used to evaluate the expected
	// energy loss.
	TPCInnerParam float64 `json:"tpcInnerParam"`
	// Measured specific energy loss (A.U.).
	TPCSignal float64 `json:"tpcSignal"`
}

// V0 is one two-prong decay-vertex candidate. The same row may enter
// candidate building under either a photon or a lambda hypothesis.
type V0 struct {
	ID          int64 `json:"id"`
	CollisionID int64 `json:"collisionID"`
	// Type is zero for rows that did not survive upstream reconstruction.
	Type uint8 `json:"type"`

	Px float64 `json:"px"`
	Py float64 `json:"py"`
	Pz float64 `json:"pz"`

	MGamma      float64 `json:"mGamma"`
	MLambda     float64 `json:"mLambda"`
	MAntiLambda float64 `json:"mAntiLambda"`

	Qt     float64 `json:"qt"`
	Alpha  float64 `json:"alpha"`
	Radius float64 `json:"radius"`
	CosPA  float64 `json:"cosPA"`
	ZConv  float64 `json:"zConv"`

	DCADaughters float64 `json:"dcaDaughters"`
	DCANegToPV   float64 `json:"dcaNegToPV"`
	DCAPosToPV   float64 `json:"dcaPosToPV"`
	PsiPair      float64 `json:"psiPair"`

	PositivePt  float64 `json:"positivePt"`
	NegativePt  float64 `json:"negativePt"`
	PositiveEta float64 `json:"positiveEta"`
	NegativeEta float64 `json:"negativeEta"`

	PxPos float64 `json:"pxPos"`
	PyPos float64 `json:"pyPos"`
	PzPos float64 `json:"pzPos"`
	PxNeg float64 `json:"pxNeg"`
	PyNeg float64 `json:"pyNeg"`
	PzNeg float64 `json:"pzNeg"`

	PosTPCNSigmaEl float64 `json:"posTPCNSigmaEl"`
	NegTPCNSigmaEl float64 `json:"negTPCNSigmaEl"`
	PosTPCNSigmaPr float64 `json:"posTPCNSigmaPr"`
	PosTPCNSigmaPi float64 `json:"posTPCNSigmaPi"`
	NegTPCNSigmaPr float64 `json:"negTPCNSigmaPr"`
	NegTPCNSigmaPi float64 `json:"negTPCNSigmaPi"`

	PosTPCCrossedRows uint8 `json:"posTPCCrossedRows"`
	NegTPCCrossedRows uint8 `json:"negTPCCrossedRows"`
	PosITSClusters    int   `json:"posITSClusters"`
	NegITSClusters    int   `json:"negITSClusters"`
}

// Eta returns the candidate pseudorapidity. Not defined for zero momentum.
func (v *V0) Eta() float64 {
	return eta(v.Px, v.Py, v.Pz)
}

// Pt returns the candidate transverse momentum.
func (v *V0) Pt() float64 {
	return pt(v.Px, v.Py)
}

// MLScore is the optional per-V0 confidence-scorer column set. When present
// the slice is aligned row-by-row with the V0 table.
type MLScore struct {
	Gamma      float64 `json:"gamma"`
	Lambda     float64 `json:"lambda"`
	AntiLambda float64 `json:"antiLambda"`
}

// MCTruth is the optional per-V0 Monte-Carlo provenance column set, aligned
// row-by-row with the V0 table.
type MCTruth struct {
	PDGCode       int     `json:"pdgCode"`
	PDGCodeMother int     `json:"pdgCodeMother"`
	MotherID      int64   `json:"motherID"`
	PxMC          float64 `json:"pxMC"`
	PyMC          float64 `json:"pyMC"`
	PzMC          float64 `json:"pzMC"`
}
