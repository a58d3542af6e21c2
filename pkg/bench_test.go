package trigger

import (
	"testing"
)

func benchmarkJets(n int) []GenericTOB {
	list := make([]GenericTOB, n)
	for i := range list {
		list[i] = NewJetTOB(200-7*i, -120+23*i, (37*i)%PhiFullCircle)
	}
	SortByEt(list)
	return list
}

func BenchmarkSelectors(b *testing.B) {
	windows := map[AlgorithmType]map[string]int{
		DeltaEtaPhiIncl1:        {"MinDeltaEta": 0, "MaxDeltaEta": 49, "MinDeltaPhi": 0, "MaxDeltaPhi": 10},
		DeltaRSqrIncl1:          {"MinDeltaR2": 0, "MaxDeltaR2": 1000},
		InvariantMassInclusive1: {"MinMSqr": 100, "MaxMSqr": 100000},
	}
	list := benchmarkJets(6)
	for typ, window := range windows {
		b.Run(string(typ), func(b *testing.B) {
			entries := windowEntries(MaxResultBits, window)
			for i := 0; i < MaxResultBits; i++ {
				entries = append(entries,
					ParameterEntry{Name: "MinEt1", Index: i, Value: 10 * i},
					ParameterEntry{Name: "MinEt2", Index: i, Value: 5 * i})
			}
			s, err := NewSelector("BENCH", typ, NewParameters(entries...))
			if err != nil {
				b.Fatal(err)
			}
			out := s.NewDecision()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.Evaluate(nil, out, list); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkJetBuilder(b *testing.B) {
	grid := make(TowerMap)
	for eta := -3; eta <= 10; eta++ {
		for phi := -3; phi <= 66; phi++ {
			grid[TowerID{Module: 3, Eta: eta, Phi: phi}] = (eta*31 + phi*17) % 13
		}
	}
	candidates := make([]Position, 0, InteriorCoreEta*TowerPhiRing)
	for fpga := 0; fpga < NumFPGAs; fpga++ {
		for localEta := 0; localEta < InteriorCoreEta; localEta++ {
			for localPhi := 0; localPhi < PhiTowersPerFPGA; localPhi++ {
				candidates = append(candidates, Position{Module: 3, FPGA: fpga, LocalEta: localEta, LocalPhi: localPhi})
			}
		}
	}
	builder := NewJetBuilder(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		builder.BuildAll(nil, grid, candidates)
	}
}
