package sigma

import "go-hep.org/x/hep/hbook"

// Stage indexes the candidate-builder selection funnel. The order is the cut
// order; a pair failing a stage charges no later stage.
type Stage int

const (
	StagePhotonMass Stage = iota
	StagePhotonDauEta
	StagePhotonDCAToPV
	StagePhotonDCADau
	StagePhotonRadius
	StageLambdaMass
	StageLambdaDauEta
	StageLambdaDCAToPV
	StageLambdaRadius
	StageLambdaDCADau
	StageSigmaWindow

	nStages
)

// NStages is the number of funnel stages.
const NStages = int(nStages)

var stageLabels = [NStages]string{
	"Photon Mass Cut",
	"Photon DauEta Cut",
	"Photon DCAToPV Cut",
	"Photon DCADau Cut",
	"Photon Radius Cut",
	"Lambda Mass Cut",
	"Lambda DauEta Cut",
	"Lambda DCAToPV Cut",
	"Lambda Radius Cut",
	"Lambda DCADau Cut",
	"Sigma Window",
}

// String returns the stage's fixed bin label, set at initialization and
// never renamed mid-run.
func (s Stage) String() string {
	if s < 0 || s >= nStages {
		return "unknown"
	}
	return stageLabels[s]
}

// Funnel counts pairs surviving each selection stage. Counters start at zero
// and only ever increase; along the stage order the counts are monotonically
// non-increasing.
type Funnel struct {
	counts [NStages]uint64
	hist   *hbook.H1D
}

// NewFunnel returns a zeroed funnel with one histogram bin per stage.
func NewFunnel() *Funnel {
	return &Funnel{
		hist: hbook.NewH1D(NStages, -0.5, float64(NStages)-0.5),
	}
}

// Record charges one pass of the given stage.
func (f *Funnel) Record(s Stage) {
	f.counts[s]++
	f.hist.Fill(float64(s), 1)
}

// Count returns the pass count of one stage.
func (f *Funnel) Count(s Stage) uint64 { return f.counts[s] }

// Counts returns a copy of all stage counters.
func (f *Funnel) Counts() [NStages]uint64 { return f.counts }

// Hist returns the audit histogram backing the funnel.
func (f *Funnel) Hist() *hbook.H1D { return f.hist }

// Monotone reports whether the counters are non-increasing in stage order.
func (f *Funnel) Monotone() bool {
	for i := 1; i < NStages; i++ {
		if f.counts[i] > f.counts[i-1] {
			return false
		}
	}
	return true
}
