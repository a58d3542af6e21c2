package trigger

import "fmt"

type AlgorithmType string

const (
	DeltaEtaPhiIncl1        AlgorithmType = "DeltaEtaPhiIncl1"
	DeltaEtaPhiIncl2        AlgorithmType = "DeltaEtaPhiIncl2"
	DeltaRSqrIncl1          AlgorithmType = "DeltaRSqrIncl1"
	DeltaRSqrIncl2          AlgorithmType = "DeltaRSqrIncl2"
	InvariantMassInclusive1 AlgorithmType = "InvariantMassInclusive1"
	InvariantMassInclusive2 AlgorithmType = "InvariantMassInclusive2"
)

var algorithmTypes = map[AlgorithmType]struct {
	quantity Quantity
	inputs   int
}{
	DeltaEtaPhiIncl1:        {QuantityDeltaEtaPhi, 1},
	DeltaEtaPhiIncl2:        {QuantityDeltaEtaPhi, 2},
	DeltaRSqrIncl1:          {QuantityDeltaR2, 1},
	DeltaRSqrIncl2:          {QuantityDeltaR2, 2},
	InvariantMassInclusive1: {QuantityMassSqr, 1},
	InvariantMassInclusive2: {QuantityMassSqr, 2},
}

// Default half width of the barrel for RequireOneBarrel, |eta| < 1.0.
const DefaultBarrelEtaMax = 40

// Selector is one configured pairwise kinematic algorithm instance. After
// construction it is read-only and can evaluate many events concurrently.
type Selector struct {
	Name     string
	Type     AlgorithmType
	quantity Quantity
	inputs   int
	params   *Parameters
	cfg      selectorConfig
	latch    reportLatch
}

type selectorConfig struct {
	InputWidth1      int
	InputWidth2      int
	MaxTob1          int
	MaxTob2          int
	NumResultBits    int
	MinEt1           []int
	MinEt2           []int
	MinDeltaEta      []int
	MaxDeltaEta      []int
	MinDeltaPhi      []int
	MaxDeltaPhi      []int
	MinDeltaR2       []int
	MaxDeltaR2       []int
	MinMSqr          []int
	MaxMSqr          []int
	RequireOneBarrel bool
	BarrelEtaMax     int
}

// NewSelector validates params for the algorithm type and builds the
// instance. All configuration problems are reported here.
func NewSelector(name string, typ AlgorithmType, params *Parameters) (*Selector, error) {
	info, ok := algorithmTypes[typ]
	if !ok {
		return nil, &ErrConfiguration{Algorithm: name, Reason: fmt.Sprintf("unknown algorithm type %q", typ)}
	}
	if params == nil {
		params = NewParameters()
	}
	s := &Selector{Name: name, Type: typ, quantity: info.quantity, inputs: info.inputs, params: params}
	if err := s.configure(params); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Selector) configError(param string, format string, args ...any) error {
	return &ErrConfiguration{Algorithm: s.Name, Parameter: param, Reason: fmt.Sprintf(format, args...)}
}

func (s *Selector) configure(p *Parameters) error {
	c := &s.cfg

	if s.inputs == 1 {
		if !p.Has("InputWidth") {
			return s.configError("InputWidth", "missing")
		}
		c.InputWidth1 = p.Scalar("InputWidth", 0)
		c.InputWidth2 = c.InputWidth1
		maxTob := p.Scalar("MaxTob", c.InputWidth1)
		c.MaxTob1 = p.Scalar("MaxTob1", maxTob)
		c.MaxTob2 = p.Scalar("MaxTob2", maxTob)
	} else {
		for _, name := range []string{"InputWidth1", "InputWidth2"} {
			if !p.Has(name) {
				return s.configError(name, "missing")
			}
		}
		c.InputWidth1 = p.Scalar("InputWidth1", 0)
		c.InputWidth2 = p.Scalar("InputWidth2", 0)
		c.MaxTob1 = p.Scalar("MaxTob1", c.InputWidth1)
		c.MaxTob2 = p.Scalar("MaxTob2", c.InputWidth2)
	}
	if c.InputWidth1 <= 0 || c.InputWidth2 <= 0 {
		return s.configError("InputWidth", "must be positive, got %d/%d", c.InputWidth1, c.InputWidth2)
	}
	if c.MaxTob1 <= 0 || c.MaxTob1 > c.InputWidth1 {
		return s.configError("MaxTob1", "%d not in [1, %d]", c.MaxTob1, c.InputWidth1)
	}
	if c.MaxTob2 <= 0 || c.MaxTob2 > c.InputWidth2 {
		return s.configError("MaxTob2", "%d not in [1, %d]", c.MaxTob2, c.InputWidth2)
	}

	c.NumResultBits = p.Scalar("NumResultBits", 0)
	if c.NumResultBits < 1 || c.NumResultBits > MaxResultBits {
		return s.configError("NumResultBits", "%d not in [1, %d]", c.NumResultBits, MaxResultBits)
	}

	type array struct {
		name string
		dst  *[]int
	}
	arrays := []array{{"MinEt1", &c.MinEt1}, {"MinEt2", &c.MinEt2}}
	switch s.quantity {
	case QuantityDeltaEtaPhi:
		arrays = append(arrays,
			array{"MinDeltaEta", &c.MinDeltaEta}, array{"MaxDeltaEta", &c.MaxDeltaEta},
			array{"MinDeltaPhi", &c.MinDeltaPhi}, array{"MaxDeltaPhi", &c.MaxDeltaPhi})
	case QuantityDeltaR2:
		arrays = append(arrays, array{"MinDeltaR2", &c.MinDeltaR2}, array{"MaxDeltaR2", &c.MaxDeltaR2})
	case QuantityMassSqr:
		arrays = append(arrays, array{"MinMSqr", &c.MinMSqr}, array{"MaxMSqr", &c.MaxMSqr})
	}
	for _, a := range arrays {
		values, err := p.Array(a.name, c.NumResultBits)
		if err != nil {
			return s.configError(a.name, "%v", err)
		}
		*a.dst = values
	}

	c.RequireOneBarrel = p.Scalar("RequireOneBarrel", 0) != 0
	c.BarrelEtaMax = p.Scalar("BarrelEtaMax", DefaultBarrelEtaMax)
	return nil
}

func (s *Selector) NumResultBits() int { return s.cfg.NumResultBits }

func (s *Selector) NumInputs() int { return s.inputs }

// Parameters returns the table the selector was configured from.
func (s *Selector) Parameters() *Parameters { return s.params }

func (s *Selector) Quantity() Quantity { return s.quantity }

// NewDecision allocates an output sized for this algorithm.
func (s *Selector) NewDecision() *Decision {
	return NewDecision(s.Name, s.cfg.NumResultBits)
}

// Evaluate runs every pair of the leading TOBs through every decision bit.
// The input lists must already be ordered by descending Et. out is reset
// first. A wrong number of lists or a mismatched output leaves every bit
// unset; the error is returned each time and logged once.
func (s *Selector) Evaluate(ev *EventContext, out *Decision, inputs ...[]GenericTOB) error {
	out.Reset()
	if len(inputs) != s.inputs {
		err := &ErrInputCount{Algorithm: s.Name, Want: s.inputs, Got: len(inputs)}
		s.latch.report(ev, "inputs", err)
		return err
	}
	if out.Bits.Len() != s.cfg.NumResultBits || len(out.Composites) != s.cfg.NumResultBits {
		err := s.configError("NumResultBits", "output has %d bits, want %d", out.Bits.Len(), s.cfg.NumResultBits)
		s.latch.report(ev, "output", err)
		return err
	}

	if s.inputs == 1 {
		list := Leading(inputs[0], s.cfg.InputWidth1)
		n1 := min(len(list), s.cfg.MaxTob1)
		n2 := min(len(list), s.cfg.MaxTob2)
		for i := 0; i < n1; i++ {
			for j := i + 1; j < n2; j++ {
				s.evaluatePair(ev, out, list[i], list[j])
			}
		}
	} else {
		list1 := Leading(inputs[0], min(s.cfg.InputWidth1, s.cfg.MaxTob1))
		list2 := Leading(inputs[1], min(s.cfg.InputWidth2, s.cfg.MaxTob2))
		for _, a := range list1 {
			for _, b := range list2 {
				s.evaluatePair(ev, out, a, b)
			}
		}
	}

	if ev.verbosity() > 1 {
		message := fmt.Sprintf("Event %d: %s decision %s", ev.eventID(), s.Name, out.Bits.String())
		ev.logger().Info(message, "selector")
	}
	return nil
}

func (s *Selector) kinematics(a, b GenericTOB) Kinematics {
	var k Kinematics
	switch s.quantity {
	case QuantityDeltaEtaPhi:
		k.DeltaEta = DeltaEtaBW(a, b)
		k.DeltaPhi = DeltaPhiBW(a, b)
	case QuantityDeltaR2:
		k.DeltaEta = DeltaEtaBW(a, b)
		k.DeltaPhi = DeltaPhiBW(a, b)
		k.DeltaR2 = DeltaR2BW(a, b)
	case QuantityMassSqr:
		k.MassSqr = InvariantMassSqr(a, b)
	}
	return k
}

func (s *Selector) evaluatePair(ev *EventContext, out *Decision, a, b GenericTOB) {
	k := s.kinematics(a, b)
	if s.quantity == QuantityDeltaR2 && ev.verbosity() > 1 {
		if ref := DeltaR2Reference(a, b); !DeltaR2Agrees(k.DeltaR2, ref) {
			message := fmt.Sprintf("Event %d: %s DeltaR2 %d differs from reference %.2f", ev.eventID(), s.Name, k.DeltaR2, ref)
			ev.logger().Info(message, "selector")
		}
	}
	for bit := 0; bit < s.cfg.NumResultBits; bit++ {
		if !s.passEt(bit, a, b) {
			continue
		}
		if s.cfg.RequireOneBarrel && !s.inBarrel(a) && !s.inBarrel(b) {
			continue
		}
		if !s.passWindow(bit, &k) {
			continue
		}
		out.accept(bit, CompositeTOB{First: a, Second: b, Quantity: s.quantity, Kinematics: k})
		if ev.verbosity() > 2 {
			message := fmt.Sprintf("Event %d: %s bit %d accepted pair (%v) (%v) %+v", ev.eventID(), s.Name, bit, a, b, k)
			ev.logger().Info(message, "selector")
		}
	}
}

// passEt requires both legs at or above the lower of the two thresholds and
// at least one leg at or above the higher one.
func (s *Selector) passEt(bit int, a, b GenericTOB) bool {
	lo := min(s.cfg.MinEt1[bit], s.cfg.MinEt2[bit])
	hi := max(s.cfg.MinEt1[bit], s.cfg.MinEt2[bit])
	if a.Et() < lo || b.Et() < lo {
		return false
	}
	if a.Et() < hi && b.Et() < hi {
		return false
	}
	return true
}

func (s *Selector) inBarrel(t GenericTOB) bool {
	return abs(t.Eta()) <= s.cfg.BarrelEtaMax
}

// passWindow applies the bit's window, bounds inclusive. The angular window
// ORs the two lower bounds and ANDs the upper ones.
func (s *Selector) passWindow(bit int, k *Kinematics) bool {
	c := &s.cfg
	switch s.quantity {
	case QuantityDeltaEtaPhi:
		if k.DeltaEta < c.MinDeltaEta[bit] && k.DeltaPhi < c.MinDeltaPhi[bit] {
			return false
		}
		return k.DeltaPhi <= c.MaxDeltaPhi[bit] && k.DeltaEta <= c.MaxDeltaEta[bit]
	case QuantityDeltaR2:
		v := int64(k.DeltaR2)
		return v >= int64(c.MinDeltaR2[bit]) && v <= int64(c.MaxDeltaR2[bit])
	case QuantityMassSqr:
		return k.MassSqr >= float64(c.MinMSqr[bit]) && k.MassSqr <= float64(c.MaxMSqr[bit])
	}
	return false
}
