package trigger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJetWordRoundTrip(t *testing.T) {
	j := NewJetTOB(150, 132, 92)
	j.Module = 5
	j.FPGA = 2
	j.LocalEta = 13
	j.LocalPhi = 3

	word := j.Word()
	assert.Equal(t, uint32(0x000D312C), word)

	decoded, err := DecodeJetWord(word, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, j.Et(), decoded.Et())
	assert.Equal(t, j.Eta(), decoded.Eta())
	assert.Equal(t, j.Phi(), decoded.Phi())
	assert.Equal(t, 13, decoded.LocalEta)
	assert.Equal(t, 3, decoded.LocalPhi)
	assert.False(t, decoded.IsSaturated())
	assert.False(t, decoded.Resolution)
}

func TestJetWordFlags(t *testing.T) {
	j := NewJetTOB(5000, 14, 43)
	j.saturated = true
	j.Resolution = true

	word := j.Word()
	assert.True(t, CheckBit(word, 0))
	assert.True(t, CheckBit(word, 21))
	assert.Equal(t, uint32(MaxTOBEt), (word&jetEtMask)>>jetEtShift)
}

func TestDecodeJetWordOutOfCore(t *testing.T) {
	// local eta 9 does not exist in an interior module
	_, err := DecodeJetWord(9<<jetEtaShift, 2, 0)
	assert.Error(t, err)
}

func TestTOBCoordinates(t *testing.T) {
	em := NewEMTOB(10, 40, -1)
	assert.Equal(t, 127, em.Phi())
	assert.InDelta(t, 1.0, em.EtaDouble(), 1e-12)

	tau := NewTauTOB(10, -20, 130)
	assert.Equal(t, 2, tau.Phi())
	assert.InDelta(t, -0.5, tau.EtaDouble(), 1e-12)

	muon := NewMuonTOB(10, 0, 64)
	assert.Equal(t, MuonKind, muon.Kind())
	assert.InDelta(t, math.Pi, muon.PhiDouble(), 1e-12)

	assert.InDelta(t, math.Pi, PhiToDouble(64), 1e-12)
	assert.InDelta(t, -math.Pi/2, PhiToDouble(96), 1e-12)
	assert.InDelta(t, 0, PhiToDouble(0), 1e-12)
}

func TestNewTOB(t *testing.T) {
	tob, err := NewTOB(MuonKind, 12, 3, 4, true)
	require.NoError(t, err)
	assert.Equal(t, MuonKind, tob.Kind())
	assert.True(t, tob.IsSaturated())
	assert.IsType(t, &MuonTOB{}, tob)

	_, err = NewTOB(TOBKind(9), 1, 0, 0, false)
	assert.Error(t, err)

	_, err = NewTOB(JetKind, -1, 0, 0, false)
	assert.Error(t, err)
}

func TestSortByEtIsStable(t *testing.T) {
	a := jet(5, 1, 0)
	b := jet(10, 2, 0)
	c := jet(5, 3, 0)
	list := []GenericTOB{a, b, c}

	SortByEt(list)
	assert.Equal(t, []GenericTOB{b, a, c}, list)

	assert.Len(t, Leading(list, 2), 2)
	assert.Len(t, Leading(list, 10), 3)
	assert.Empty(t, Leading(nil, 4))
}

func TestDecisionBitSet(t *testing.T) {
	bits := NewDecisionBitSet(8)
	assert.Equal(t, MaxResultBits, bits.Len())

	bits.Set(0)
	bits.Set(2)
	bits.Set(7)
	assert.Equal(t, "101000", bits.String())
	assert.Equal(t, uint32(5), bits.Word())
	assert.True(t, bits.IsSet(2))
	assert.False(t, bits.IsSet(7))

	bits.Reset()
	assert.Equal(t, "000000", bits.String())
}

func TestDecisionReset(t *testing.T) {
	d := NewDecision("alg", 2)
	d.accept(1, CompositeTOB{First: jet(1, 0, 0), Second: jet(1, 0, 0)})
	require.True(t, d.Bits.IsSet(1))
	require.Len(t, d.Composites[1], 1)

	d.Reset()
	assert.False(t, d.Bits.IsSet(1))
	assert.Empty(t, d.Composites[1])
	assert.Len(t, d.Composites, 2)
}

func TestCompositeTOB(t *testing.T) {
	c := CompositeTOB{
		First:      jet(2000, 0, 0),
		Second:     jet(100, 0, 0),
		Quantity:   QuantityDeltaR2,
		Kinematics: Kinematics{DeltaEta: 2, DeltaPhi: 5, DeltaR2: 104},
	}
	assert.Equal(t, MaxTOBEt, c.Et())
	assert.Equal(t, 104.0, c.Value())

	c.Quantity = QuantityDeltaEtaPhi
	assert.Equal(t, 2.0, c.Value())
}
