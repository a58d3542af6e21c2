package trigger

import "fmt"

// Global TOB granularity.
const (
	EtaUnitsPerTower = 4   // 0.1 in eta is 4 TOB units of 0.025
	PhiFullCircle    = 128 // TOB phi units per 2*pi
	PhiHalfCircle    = PhiFullCircle / 2
	TowerPhiRing     = 64 // 1x1 towers per 2*pi
	PhiTowersPerFPGA = 16
)

const (
	NumModules      = 6
	NumFPGAs        = TowerPhiRing / PhiTowersPerFPGA
	InteriorCoreEta = 8
)

// Position locates a candidate centre: module, FPGA (phi quadrant) and the
// local indices inside the module core.
type Position struct {
	Module   int
	FPGA     int
	LocalEta int
	LocalPhi int
}

// TowerID of the candidate centre tower.
func (p Position) TowerID() TowerID {
	return TowerID{Module: p.Module, Eta: p.LocalEta, Phi: p.FPGA*PhiTowersPerFPGA + p.LocalPhi}
}

// etaRegion describes a run of local eta columns sharing one granularity.
// towerEta is the absolute 0.1-tower eta index of the first column; widths
// are in 1x1 tower units.
type etaRegion struct {
	region   int
	first    int
	last     int
	towerEta int
	etaWidth int
	phiWidth int
}

// Edge modules (0 and 5). Module 5 is listed, module 0 is its mirror
// image at negative eta.
var edgeRegions = []etaRegion{
	{region: 1, first: 0, last: 8, towerEta: 16, etaWidth: 1, phiWidth: 1},   // 1.6 - 2.5
	{region: 2, first: 9, last: 11, towerEta: 25, etaWidth: 2, phiWidth: 2},  // 2.5 - 3.1
	{region: 3, first: 12, last: 12, towerEta: 31, etaWidth: 1, phiWidth: 2}, // 3.1 - 3.2
	{region: 4, first: 13, last: 20, towerEta: 32, etaWidth: 2, phiWidth: 4}, // 3.2 - 4.8
}

// First 0.1-tower eta index of the core of each interior module.
var interiorEtaStart = map[int]int{1: -16, 2: -8, 3: 0, 4: 8}

func isEdgeModule(module int) bool {
	return module == 0 || module == NumModules-1
}

// Region returns the granularity region of a local eta column. Interior
// modules are always region 1.
func Region(module, localEta int) (int, error) {
	r, err := lookupRegion(module, localEta)
	if err != nil {
		return 0, err
	}
	return r.region, nil
}

func lookupRegion(module, localEta int) (etaRegion, error) {
	if !isEdgeModule(module) {
		if _, ok := interiorEtaStart[module]; !ok {
			return etaRegion{}, fmt.Errorf("invalid module %d", module)
		}
		if localEta < 0 || localEta >= InteriorCoreEta {
			return etaRegion{}, fmt.Errorf("local eta %d outside core of module %d", localEta, module)
		}
		return etaRegion{region: 1, first: 0, last: InteriorCoreEta - 1,
			towerEta: interiorEtaStart[module], etaWidth: 1, phiWidth: 1}, nil
	}
	for _, r := range edgeRegions {
		if localEta >= r.first && localEta <= r.last {
			return r, nil
		}
	}
	return etaRegion{}, fmt.Errorf("local eta %d outside core of module %d", localEta, module)
}

// GlobalCoordinates maps a candidate position to TOB eta (0.025 units) and
// phi (2*pi/128 units) at the centre of the tower grouping.
func GlobalCoordinates(pos Position) (eta int, phi int, err error) {
	if pos.FPGA < 0 || pos.FPGA >= NumFPGAs {
		return 0, 0, fmt.Errorf("invalid FPGA %d", pos.FPGA)
	}
	r, err := lookupRegion(pos.Module, pos.LocalEta)
	if err != nil {
		return 0, 0, err
	}
	if pos.LocalPhi < 0 || pos.LocalPhi*r.phiWidth >= PhiTowersPerFPGA {
		return 0, 0, fmt.Errorf("local phi %d outside core of region %d", pos.LocalPhi, r.region)
	}

	towerEta := r.towerEta + (pos.LocalEta-r.first)*r.etaWidth
	eta = EtaUnitsPerTower*towerEta + EtaUnitsPerTower/2*r.etaWidth
	if pos.Module == 0 {
		eta = -eta
	}

	towerPhi := pos.FPGA*PhiTowersPerFPGA + pos.LocalPhi*r.phiWidth
	phi = (2*towerPhi + r.phiWidth) % PhiFullCircle
	return eta, phi, nil
}
