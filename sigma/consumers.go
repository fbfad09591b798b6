package sigma

import "github.com/lfstrange/sigmakit/species"

// PIDRequirements declares the identification outputs candidate building
// consumes: the electron hypothesis for photon conversion legs, the pion and
// proton hypotheses for lambda legs. Passing it to the PID task resolves
// "auto" toggles for exactly these species.
type PIDRequirements struct{}

// RequiredSpecies implements pid.Consumer.
func (PIDRequirements) RequiredSpecies() []species.ID {
	return []species.ID{species.Electron, species.Pion, species.Proton}
}
