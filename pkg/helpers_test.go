package trigger

import (
	"sync"
)

// recordLogger keeps every message for inspection.
type recordLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *recordLogger) Info(message string, module string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, module+": "+message)
}

func (l *recordLogger) Error(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, message)
}

func (l *recordLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

// zeroGrid returns a grid of empty towers covering the given local ranges,
// bounds included.
func zeroGrid(module, etaLo, etaHi, phiLo, phiHi int) TowerMap {
	var towers []Tower
	for eta := etaLo; eta <= etaHi; eta++ {
		for phi := phiLo; phi <= phiHi; phi++ {
			towers = append(towers, Tower{ID: TowerID{Module: module, Eta: eta, Phi: phi}})
		}
	}
	return NewTowerMap(towers)
}

// uniformWindow returns a window with every tower at energy.
func uniformWindow(energy int) WindowEnergies {
	var e WindowEnergies
	for ieta := range e {
		for iphi := range e[ieta] {
			e[ieta][iphi] = energy
		}
	}
	return e
}

// paramTable builds a parameter table from scalars and per-bit arrays.
func paramTable(scalars map[string]int, arrays map[string][]int) *Parameters {
	p := NewParameters()
	for name, v := range scalars {
		p.Set(name, 0, v)
	}
	for name, values := range arrays {
		for i, v := range values {
			p.Set(name, i, v)
		}
	}
	return p
}

func jet(et, eta, phi int) GenericTOB {
	return NewJetTOB(et, eta, phi)
}
