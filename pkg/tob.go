package trigger

import (
	"fmt"
	"math"
	"sort"
)

type TOBKind int

const (
	JetKind TOBKind = iota
	EMKind
	TauKind
	MuonKind
)

func (k TOBKind) String() string {
	switch k {
	case JetKind:
		return "Jet"
	case EMKind:
		return "EM"
	case TauKind:
		return "Tau"
	case MuonKind:
		return "Muon"
	default:
		return "Unknown"
	}
}

// GenericTOB is the capability set shared by every trigger object the
// topological algorithms consume. The set of implementations is closed.
type GenericTOB interface {
	Kind() TOBKind
	Et() int
	Eta() int
	Phi() int
	EtaDouble() float64
	PhiDouble() float64
	IsSaturated() bool
	isTOB()
}

// tobFields is the field set common to all TOB variants.
type tobFields struct {
	et        int
	eta       int
	phi       int
	etaDouble float64
	phiDouble float64
	saturated bool
}

func newFields(et, eta, phi int) tobFields {
	phi = ((phi % PhiFullCircle) + PhiFullCircle) % PhiFullCircle
	return tobFields{
		et:        et,
		eta:       eta,
		phi:       phi,
		etaDouble: EtaToDouble(eta),
		phiDouble: PhiToDouble(phi),
	}
}

func (t tobFields) Et() int { return t.et }
func (t tobFields) Eta() int { return t.eta }
func (t tobFields) Phi() int { return t.phi }
func (t tobFields) EtaDouble() float64 { return t.etaDouble }
func (t tobFields) PhiDouble() float64 { return t.phiDouble }
func (t tobFields) IsSaturated() bool { return t.saturated }
func (t tobFields) isTOB() {}
func (t tobFields) String() string {
	return fmt.Sprintf("Et=%d eta=%d phi=%d sat=%t", t.et, t.eta, t.phi, t.saturated)
}

// EtaToDouble converts TOB eta units to pseudorapidity.
func EtaToDouble(eta int) float64 {
	return float64(eta) / float64(EtaUnitsPerTower*10)
}

// PhiToDouble converts TOB phi units to radians in (-pi, pi].
func PhiToDouble(phi int) float64 {
	rad := float64(phi) * 2 * math.Pi / PhiFullCircle
	if rad > math.Pi {
		rad -= 2 * math.Pi
	}
	return rad
}

// JetTOB is a small-R jet candidate. Besides the global coordinates it
// keeps the local position used in the hardware word.
type JetTOB struct {
	tobFields
	Module     int
	FPGA       int
	LocalEta   int
	LocalPhi   int
	Resolution bool
}

func NewJetTOB(et, eta, phi int) *JetTOB {
	return &JetTOB{tobFields: newFields(et, eta, phi)}
}

func (*JetTOB) Kind() TOBKind { return JetKind }

// Jet hardware word layout.
const (
	jetSatMask  = 0x00000001
	jetEtMask   = 0x00000FFE
	jetEtShift  = 1
	jetPhiMask  = 0x0000F000
	jetPhiShift = 12
	jetEtaMask  = 0x001F0000
	jetEtaShift = 16
	jetResMask  = 0x00200000
	jetResShift = 21
)

// Word packs the jet into its 32-bit hardware representation. Et above the
// field width is clamped. A negative Et, only possible for a jet built
// directly with NewJetTOB, is packed as zero.
func (j *JetTOB) Word() uint32 {
	var word uint32
	if j.saturated {
		word |= jetSatMask
	}
	et, _ := Saturate(j.et, MaxTOBEt)
	word |= (uint32(et) << jetEtShift) & jetEtMask
	word |= (uint32(j.LocalPhi) << jetPhiShift) & jetPhiMask
	word |= (uint32(j.LocalEta) << jetEtaShift) & jetEtaMask
	if j.Resolution {
		word |= jetResMask
	}
	return word
}

// DecodeJetWord unpacks a hardware word. Global coordinates are rebuilt from
// the module and FPGA the word was read from.
func DecodeJetWord(word uint32, module, fpga int) (*JetTOB, error) {
	pos := Position{
		Module:   module,
		FPGA:     fpga,
		LocalEta: int((word & jetEtaMask) >> jetEtaShift),
		LocalPhi: int((word & jetPhiMask) >> jetPhiShift),
	}
	eta, phi, err := GlobalCoordinates(pos)
	if err != nil {
		return nil, fmt.Errorf("error decoding jet word 0x%08x: %w", word, err)
	}
	jet := NewJetTOB(int((word&jetEtMask)>>jetEtShift), eta, phi)
	jet.saturated = CheckBit(word, 0)
	jet.Resolution = CheckBit(word, jetResShift)
	jet.Module = pos.Module
	jet.FPGA = pos.FPGA
	jet.LocalEta = pos.LocalEta
	jet.LocalPhi = pos.LocalPhi
	return jet, nil
}

type EMTOB struct {
	tobFields
}

func NewEMTOB(et, eta, phi int) *EMTOB {
	return &EMTOB{tobFields: newFields(et, eta, phi)}
}

func (*EMTOB) Kind() TOBKind { return EMKind }

type TauTOB struct {
	tobFields
}

func NewTauTOB(et, eta, phi int) *TauTOB {
	return &TauTOB{tobFields: newFields(et, eta, phi)}
}

func (*TauTOB) Kind() TOBKind { return TauKind }

type MuonTOB struct {
	tobFields
}

func NewMuonTOB(et, eta, phi int) *MuonTOB {
	return &MuonTOB{tobFields: newFields(et, eta, phi)}
}

func (*MuonTOB) Kind() TOBKind { return MuonKind }

// NewTOB builds a TOB of the given kind. Et must not be negative.
func NewTOB(kind TOBKind, et, eta, phi int, saturated bool) (GenericTOB, error) {
	if et < 0 {
		return nil, fmt.Errorf("negative TOB Et %d", et)
	}
	fields := newFields(et, eta, phi)
	fields.saturated = saturated
	switch kind {
	case JetKind:
		return &JetTOB{tobFields: fields}, nil
	case EMKind:
		return &EMTOB{tobFields: fields}, nil
	case TauKind:
		return &TauTOB{tobFields: fields}, nil
	case MuonKind:
		return &MuonTOB{tobFields: fields}, nil
	}
	return nil, fmt.Errorf("unknown TOB kind %d", kind)
}

// SortByEt orders a list by descending Et. Equal Et keeps input order.
func SortByEt(list []GenericTOB) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Et() > list[j].Et()
	})
}

// Leading returns the first n TOBs of an ordered list.
func Leading(list []GenericTOB, n int) []GenericTOB {
	if n < len(list) {
		return list[:n]
	}
	return list
}

// CompositeTOB records an accepted pair and the kinematics it passed with.
type CompositeTOB struct {
	First      GenericTOB
	Second     GenericTOB
	Quantity   Quantity
	Kinematics Kinematics
}

// Value returns the tested quantity. For the angular selection it is Delta
// Eta; Delta Phi is in Kinematics.
func (c CompositeTOB) Value() float64 {
	switch c.Quantity {
	case QuantityDeltaEtaPhi:
		return float64(c.Kinematics.DeltaEta)
	case QuantityDeltaR2:
		return float64(c.Kinematics.DeltaR2)
	case QuantityMassSqr:
		return c.Kinematics.MassSqr
	}
	return 0
}

// Et of the pair, saturating at the TOB Et width.
func (c CompositeTOB) Et() int {
	et, _ := SaturatingAdd(c.First.Et(), c.Second.Et(), MaxTOBEt)
	return et
}

const MaxResultBits = 6

// DecisionBitSet is a fixed-size set of decision bits.
type DecisionBitSet struct {
	n    int
	bits uint32
}

func NewDecisionBitSet(n int) DecisionBitSet {
	if n > MaxResultBits {
		n = MaxResultBits
	}
	if n < 0 {
		n = 0
	}
	return DecisionBitSet{n: n}
}

func (d DecisionBitSet) Len() int { return d.n }

func (d *DecisionBitSet) Set(i int) {
	if i < 0 || i >= d.n {
		return
	}
	d.bits |= 1 << uint(i)
}

func (d DecisionBitSet) IsSet(i int) bool {
	if i < 0 || i >= d.n {
		return false
	}
	return CheckBit(d.bits, uint(i))
}

func (d DecisionBitSet) Word() uint32 { return d.bits }

func (d *DecisionBitSet) Reset() { d.bits = 0 }

func (d DecisionBitSet) String() string {
	s := make([]byte, d.n)
	for i := 0; i < d.n; i++ {
		s[i] = '0'
		if d.IsSet(i) {
			s[i] = '1'
		}
	}
	return string(s)
}

// Decision is the output of one algorithm instance for one event. It is
// owned by the caller; Evaluate resets it before filling.
type Decision struct {
	Algorithm  string
	Bits       DecisionBitSet
	Composites [][]CompositeTOB
}

func NewDecision(algorithm string, numBits int) *Decision {
	bits := NewDecisionBitSet(numBits)
	return &Decision{
		Algorithm:  algorithm,
		Bits:       bits,
		Composites: make([][]CompositeTOB, bits.Len()),
	}
}

func (d *Decision) Reset() {
	d.Bits.Reset()
	for i := range d.Composites {
		d.Composites[i] = d.Composites[i][:0]
	}
}

func (d *Decision) accept(bit int, c CompositeTOB) {
	d.Bits.Set(bit)
	d.Composites[bit] = append(d.Composites[bit], c)
}
