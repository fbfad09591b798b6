package pid

import (
	"github.com/lfstrange/sigmakit/event"
	"github.com/lfstrange/sigmakit/hist"
	"github.com/lfstrange/sigmakit/species"
)

// QAConfig fixes the axis binning of the identification QA histograms.
type QAConfig struct {
	NBinsP               int
	MinP, MaxP           float64
	NBinsDelta           int
	MinDelta, MaxDelta   float64
	NBinsNSigma          int
	MinNSigma, MaxNSigma float64
}

// DefaultQAConfig mirrors the standard QA binning.
func DefaultQAConfig() QAConfig {
	return QAConfig{
		NBinsP: 400, MinP: 0, MaxP: 20,
		NBinsDelta: 200, MinDelta: -1000, MaxDelta: 1000,
		NBinsNSigma: 200, MinNSigma: -10, MaxNSigma: 10,
	}
}

// QA accumulates per-species identification control histograms: expected
// signal, measured-minus-expected and separation, each against momentum.
type QA struct {
	reg  *hist.Registry
	task *Task
}

// NewQA declares the histograms for every species enabled in the task.
func NewQA(cfg QAConfig, task *Task) *QA {
	reg := hist.NewRegistry()
	reg.AddH1D("event/vertexz", 100, -20, 20)
	reg.AddH2D("event/tpcsignal", cfg.NBinsP, cfg.MinP, cfg.MaxP, 1000, 0, 1000)
	for _, sp := range species.All() {
		if !task.Enabled(sp) {
			continue
		}
		reg.AddH2D("expected/"+sp.String(), cfg.NBinsP, cfg.MinP, cfg.MaxP, 1000, 0, 1000)
		reg.AddH2D("expected_diff/"+sp.String(), cfg.NBinsP, cfg.MinP, cfg.MaxP, cfg.NBinsDelta, cfg.MinDelta, cfg.MaxDelta)
		reg.AddH2D("nsigma/"+sp.String(), cfg.NBinsP, cfg.MinP, cfg.MaxP, cfg.NBinsNSigma, cfg.MinNSigma, cfg.MaxNSigma)
	}
	return &QA{reg: reg, task: task}
}

// FillEvent fills the control histograms for one collision's tracks using
// the records already produced by the task.
func (q *QA) FillEvent(coll *event.Collision, tracks []event.Track) {
	q.reg.Fill1D("event/vertexz", coll.PosZ)
	for i := range tracks {
		trk := &tracks[i]
		mom := trk.TPCInnerParam
		q.reg.Fill2D("event/tpcsignal", mom, trk.TPCSignal)
		for _, sp := range species.All() {
			if !q.task.Enabled(sp) {
				continue
			}
			rec := q.task.Identify(trk, sp)
			q.reg.Fill2D("expected/"+sp.String(), mom, trk.TPCSignal-rec.ExpSignalDiff)
			q.reg.Fill2D("expected_diff/"+sp.String(), mom, rec.ExpSignalDiff)
			q.reg.Fill2D("nsigma/"+sp.String(), trk.P, rec.Separation)
		}
	}
}

// Registry exposes the accumulated histograms for plotting.
func (q *QA) Registry() *hist.Registry { return q.reg }
