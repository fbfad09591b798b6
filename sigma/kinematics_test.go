package sigma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvMass(t *testing.T) {
	// Two back-to-back massless legs of unit energy combine to mass 2.
	assert.InDelta(t, 2.0, InvMass(1, 0, 0, 0, -1, 0, 0, 0), 1e-12)

	// Leg order is irrelevant.
	m12 := InvMass(0.3, 0.1, -0.2, MassPhoton, 0.5, -0.4, 0.7, MassLambda)
	m21 := InvMass(0.5, -0.4, 0.7, MassLambda, 0.3, 0.1, -0.2, MassPhoton)
	assert.InDelta(t, m12, m21, 1e-12)

	// Two legs at rest (in pz) under the lambda hypothesis sit at twice the
	// lambda mass, up to the transverse motion.
	assert.Greater(t, InvMass(0.1, 0, 0, MassLambda, 0.2, 0, 0, MassLambda), 2*MassLambda)
}

func TestRapidity(t *testing.T) {
	assert.InDelta(t, 0.0, Rapidity(1.3, -0.2, 0, MassLambda), 1e-12)
	assert.Greater(t, Rapidity(0.1, 0.1, 1.0, MassLambda), 0.0)
	assert.InDelta(t,
		Rapidity(0.1, 0.1, 1.0, MassLambda),
		-Rapidity(0.1, 0.1, -1.0, MassLambda), 1e-12)
}

func TestPt(t *testing.T) {
	assert.InDelta(t, 5.0, Pt(3, 4), 1e-12)
	assert.InDelta(t, 0.0, Pt(0, 0), 1e-12)
}
