package sigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/lfstrange/sigmakit/event"
)

func newLikeSignStore(nColls int) *event.Store {
	colls := make([]event.Collision, 0, nColls)
	var v0s []event.V0
	for i := 0; i < nColls; i++ {
		id := int64(i + 1)
		colls = append(colls, event.Collision{ID: id})
		for k := 0; k < 4; k++ {
			v0s = append(v0s, lambdaV0(id, 0.02+0.01*float64(k)))
		}
	}
	return event.NewStore(colls, nil, v0s)
}

func TestProcessLikeSign(t *testing.T) {
	b, err := NewBuilder(DefaultConfig())
	require.NoError(t, err)

	store := newLikeSignStore(200)
	b.ProcessLikeSign(store)

	// 4 lambdas per collision give 6 unordered pairs each.
	pos, neg := b.LikeSignHists().Entries()
	assert.Equal(t, int64(1200), pos+neg)

	// The slot assignment is a fair coin.
	frac := float64(pos) / float64(pos+neg)
	assert.InDelta(t, 0.5, frac, 0.05)

	// The funnel stays untouched by background accounting.
	assert.Zero(t, b.Funnel().Count(StageLambdaMass))
}

func TestProcessLikeSignSeedDeterminism(t *testing.T) {
	store := newLikeSignStore(50)

	run := func(seed int64) (int64, int64) {
		cfg := DefaultConfig()
		cfg.Seed = seed
		b, err := NewBuilder(cfg)
		require.NoError(t, err)
		b.ProcessLikeSign(store)
		return b.LikeSignHists().Entries()
	}

	pos1, neg1 := run(42)
	pos2, neg2 := run(42)
	assert.Equal(t, pos1, pos2)
	assert.Equal(t, neg1, neg2)

	// Across seeds the positive fraction stays centred on one half.
	fracs := make([]float64, 0, 10)
	for seed := int64(1); seed <= 10; seed++ {
		pos, neg := run(seed)
		assert.Equal(t, int64(300), pos+neg)
		fracs = append(fracs, float64(pos)/float64(pos+neg))
	}
	assert.InDelta(t, 0.5, stat.Mean(fracs, nil), 0.03)
}

func TestProcessLikeSignRejectsNonLambdas(t *testing.T) {
	b, err := NewBuilder(DefaultConfig())
	require.NoError(t, err)

	colls := []event.Collision{{ID: 1}}
	v0s := []event.V0{photonV0(1, 0.05), photonV0(1, 0.10), lambdaV0(1, 0.02)}
	b.ProcessLikeSign(event.NewStore(colls, nil, v0s))

	pos, neg := b.LikeSignHists().Entries()
	assert.Zero(t, pos+neg)
}
