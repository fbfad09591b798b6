package sigma

import (
	"go-hep.org/x/hep/hbook"

	"github.com/lfstrange/sigmakit/event"
)

// LikeSign accumulates the like-sign lambda-pair background. The two legs of
// a like-sign pair are indistinguishable, so each accepted pair is routed to
// one of the two accumulators by a uniform draw from the builder's seeded
// generator.
type LikeSign struct {
	Pos *hbook.H1D
	Neg *hbook.H1D
}

func newLikeSign() *LikeSign {
	return &LikeSign{
		Pos: hbook.NewH1D(100, 2.2, 3.2),
		Neg: hbook.NewH1D(100, 2.2, 3.2),
	}
}

// Entries returns the pair counts in both accumulators.
func (ls *LikeSign) Entries() (pos, neg int64) {
	return ls.Pos.Entries(), ls.Neg.Entries()
}

// ProcessLikeSign scans every unordered pair of distinct lambda candidates
// within each collision. Pairs where both legs pass the lambda criteria fill
// the like-sign mass accumulators; the slot assignment is randomized per
// accepted pair. The funnel is not charged: like-sign pairs are background
// accounting, not candidate selection.
func (b *Builder) ProcessLikeSign(store *event.Store) {
	for ci := range store.Collisions {
		idx := store.V0sOf(store.Collisions[ci].ID)
		for _, pair := range CombinationsStrictlyUpper(len(idx)) {
			first := &store.V0s[idx[pair.I]]
			second := &store.V0s[idx[pair.J]]
			if first.Type == 0 || second.Type == 0 {
				continue
			}
			if !b.lambdaCuts(first, false) || !b.lambdaCuts(second, false) {
				continue
			}

			mass := InvMass(
				first.Px, first.Py, first.Pz, MassLambda,
				second.Px, second.Py, second.Pz, MassLambda,
			)
			if b.rng.Float64() > 0.5 {
				b.likeSign.Pos.Fill(mass, 1)
			} else {
				b.likeSign.Neg.Fill(mass, 1)
			}
		}
	}
}
