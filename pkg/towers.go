package trigger

import "fmt"

const (
	WindowSize = 7
	SeedSize   = 5
	windowHalf = WindowSize / 2
)

// TowerID addresses one tower in the local grid of a FEX module. Eta and phi
// are local indices; overlap towers outside the module core take negative or
// out-of-core values.
type TowerID struct {
	Module int
	Eta    int
	Phi    int
}

func (t TowerID) String() string {
	return fmt.Sprintf("m%d(%d,%d)", t.Module, t.Eta, t.Phi)
}

type Tower struct {
	ID     TowerID
	Energy int
}

// TowerEnergyGrid gives read-only access to the per-event tower energies.
type TowerEnergyGrid interface {
	Energy(id TowerID) (int, error)
}

// TowerMap is an in-memory TowerEnergyGrid.
type TowerMap map[TowerID]int

func NewTowerMap(towers []Tower) TowerMap {
	m := make(TowerMap, len(towers))
	for _, t := range towers {
		m[t.ID] = t.Energy
	}
	return m
}

func (m TowerMap) Energy(id TowerID) (int, error) {
	energy, ok := m[id]
	if !ok {
		return 0, ErrUnknownTower
	}
	if energy < 0 {
		return 0, fmt.Errorf("%w: negative energy %d", ErrMalformedTower, energy)
	}
	return energy, nil
}

// SearchWindow holds the 7x7 towers around a candidate centre, indexed
// [eta][phi].
type SearchWindow [WindowSize][WindowSize]TowerID

func NewSearchWindow(center TowerID) SearchWindow {
	var w SearchWindow
	for ieta := 0; ieta < WindowSize; ieta++ {
		for iphi := 0; iphi < WindowSize; iphi++ {
			w[ieta][iphi] = TowerID{
				Module: center.Module,
				Eta:    center.Eta + ieta - windowHalf,
				Phi:    center.Phi + iphi - windowHalf,
			}
		}
	}
	return w
}

// WindowEnergies is the energy content of a SearchWindow, indexed [eta][phi].
type WindowEnergies [WindowSize][WindowSize]int

// ReadWindow fetches every tower of the window from the grid. Any failing
// cell fails the whole window.
func ReadWindow(grid TowerEnergyGrid, window SearchWindow) (WindowEnergies, error) {
	var e WindowEnergies
	for ieta := 0; ieta < WindowSize; ieta++ {
		for iphi := 0; iphi < WindowSize; iphi++ {
			id := window[ieta][iphi]
			energy, err := grid.Energy(id)
			if err != nil {
				return WindowEnergies{}, &ErrTowerLookup{Tower: id, Err: err}
			}
			e[ieta][iphi] = energy
		}
	}
	return e, nil
}
