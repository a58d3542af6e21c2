package trigger

import (
	"errors"
	"fmt"
)

// Cluster is the aggregated content of a validated window.
type Cluster struct {
	Seed      int
	Energy    int
	EtRing    int
	Saturated bool
}

// AggregateCluster sums the 7x7 window without its four corner towers.
// The sum saturates at MaxTOBEt.
func AggregateCluster(e *WindowEnergies, seeds *SeedGrid) Cluster {
	energy := 0
	saturated := false
	for ieta := 0; ieta < WindowSize; ieta++ {
		for iphi := 0; iphi < WindowSize; iphi++ {
			if isCorner(ieta, iphi) {
				continue
			}
			var sat bool
			energy, sat = SaturatingAdd(energy, e[ieta][iphi], MaxTOBEt)
			saturated = saturated || sat
		}
	}
	return Cluster{
		Seed:      seeds.Center(),
		Energy:    energy,
		EtRing:    SaturatingSub(energy, seeds.Center()),
		Saturated: saturated,
	}
}

func isCorner(ieta, iphi int) bool {
	last := WindowSize - 1
	return (ieta == 0 || ieta == last) && (iphi == 0 || iphi == last)
}

// JetBuilder finds small-R jet candidates with the sliding window. One
// builder serves every event; per-event state lives in the caller.
type JetBuilder struct {
	// SeedThreshold is the minimum centre seed, 0 accepts every local maximum.
	SeedThreshold int
	latch         reportLatch
}

func NewJetBuilder(seedThreshold int) *JetBuilder {
	return &JetBuilder{SeedThreshold: seedThreshold}
}

// Build returns the jet TOB of the candidate at pos, or false when the
// centre is not a local maximum or the window cannot be read. Read failures
// are logged once per builder and error kind.
func (b *JetBuilder) Build(ev *EventContext, grid TowerEnergyGrid, pos Position) (*JetTOB, bool) {
	window := NewSearchWindow(pos.TowerID())
	energies, err := ReadWindow(grid, window)
	if err != nil {
		key := "tower"
		switch {
		case errors.Is(err, ErrUnknownTower):
			key = "unknown-tower"
		case errors.Is(err, ErrMalformedTower):
			key = "malformed-tower"
		}
		b.latch.report(ev, key, fmt.Errorf("event %d: jet candidate at %+v: %w", ev.eventID(), pos, err))
		return nil, false
	}

	seeds := BuildSeeds(&energies)
	if seeds.Center() < b.SeedThreshold || !IsLocalMaximum(&seeds) {
		return nil, false
	}
	cluster := AggregateCluster(&energies, &seeds)

	eta, phi, err := GlobalCoordinates(pos)
	if err != nil {
		b.latch.report(ev, "geometry", fmt.Errorf("event %d: jet candidate at %+v: %w", ev.eventID(), pos, err))
		return nil, false
	}

	jet := NewJetTOB(cluster.Energy, eta, phi)
	jet.saturated = cluster.Saturated
	jet.Module = pos.Module
	jet.FPGA = pos.FPGA
	jet.LocalEta = pos.LocalEta
	jet.LocalPhi = pos.LocalPhi

	if ev.verbosity() > 2 {
		region, _ := Region(pos.Module, pos.LocalEta)
		message := fmt.Sprintf("Event %d: jet at %+v region %d seed %d Et %d ring %d sat %t",
			ev.eventID(), pos, region, cluster.Seed, cluster.Energy, cluster.EtRing, cluster.Saturated)
		ev.logger().Info(message, "jets")
	}
	return jet, true
}

// BuildAll runs every candidate centre and returns the jets ordered by
// descending Et.
func (b *JetBuilder) BuildAll(ev *EventContext, grid TowerEnergyGrid, candidates []Position) []GenericTOB {
	jets := make([]GenericTOB, 0)
	for _, pos := range candidates {
		if jet, ok := b.Build(ev, grid, pos); ok {
			jets = append(jets, jet)
		}
	}
	SortByEt(jets)
	return jets
}
