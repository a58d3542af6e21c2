package trigger

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Quantity names the kinematic variable an algorithm selects on.
type Quantity int

const (
	QuantityDeltaEtaPhi Quantity = iota
	QuantityDeltaR2
	QuantityMassSqr
)

func (q Quantity) String() string {
	switch q {
	case QuantityDeltaEtaPhi:
		return "DeltaEtaPhi"
	case QuantityDeltaR2:
		return "DeltaR2"
	case QuantityMassSqr:
		return "MassSqr"
	default:
		return "Unknown"
	}
}

// Kinematics of one pair. Only the fields the algorithm needs are filled.
type Kinematics struct {
	DeltaEta int
	DeltaPhi int
	DeltaR2  uint32
	MassSqr  float64
}

// Agreement between DeltaR2BW and DeltaR2Reference once the reference is
// expressed in 0.025^2 units. The TOB phi unit is 2*pi/128, the firmware
// treats it as 0.05.
const (
	DeltaR2AbsTolerance = 1.0
	DeltaR2RelTolerance = 0.04
)

// DeltaPhiBW is the firmware Delta Phi in TOB units, wrapped into
// [0, half circle].
func DeltaPhiBW(a, b GenericTOB) int {
	dphi := abs(a.Phi() - b.Phi())
	if dphi > PhiHalfCircle {
		dphi = PhiFullCircle - dphi
	}
	return dphi
}

// DeltaEtaBW is the firmware Delta Eta in TOB units.
func DeltaEtaBW(a, b GenericTOB) int {
	return abs(a.Eta() - b.Eta())
}

// DeltaR2BW reproduces the firmware Delta R squared. Eta and phi are brought
// to the same 0.025 granularity by doubling Delta Phi. The result saturates
// at the 32-bit width instead of wrapping.
func DeltaR2BW(a, b GenericTOB) uint32 {
	deta := uint64(DeltaEtaBW(a, b))
	dphi := uint64(2 * DeltaPhiBW(a, b))
	if deta > math.MaxUint32 {
		return math.MaxUint32
	}
	dr2, _ := Saturate(dphi*dphi+deta*deta, math.MaxUint32)
	return uint32(dr2)
}

// DeltaR2Reference computes Delta R squared from the floating-point
// coordinates, in units of 0.025^2 so it can be compared with DeltaR2BW.
func DeltaR2Reference(a, b GenericTOB) float64 {
	deta := a.EtaDouble() - b.EtaDouble()
	dphi := deltaPhiDouble(a.PhiDouble(), b.PhiDouble())
	const unit = 1.0 / (EtaUnitsPerTower * 10)
	return (deta*deta + dphi*dphi) / (unit * unit)
}

// DeltaR2Agrees reports whether the two Delta R squared computations agree
// within DeltaR2AbsTolerance or DeltaR2RelTolerance.
func DeltaR2Agrees(bw uint32, reference float64) bool {
	return scalar.EqualWithinAbsOrRel(float64(bw), reference, DeltaR2AbsTolerance, DeltaR2RelTolerance)
}

// InvariantMassSqr is 2*Et1*Et2*(cosh(dEta) - cos(dPhi)) in Et counts
// squared, from the floating-point coordinates.
func InvariantMassSqr(a, b GenericTOB) float64 {
	deta := a.EtaDouble() - b.EtaDouble()
	dphi := deltaPhiDouble(a.PhiDouble(), b.PhiDouble())
	return 2 * float64(a.Et()) * float64(b.Et()) * (math.Cosh(deta) - math.Cos(dphi))
}

func deltaPhiDouble(phi1, phi2 float64) float64 {
	dphi := math.Abs(phi1 - phi2)
	if dphi > math.Pi {
		dphi = 2*math.Pi - dphi
	}
	return dphi
}
