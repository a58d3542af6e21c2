package trigger

// SeedGrid holds the 3x3 sums around each of the inner 5x5 window
// positions, indexed [eta][phi]. Seed (i,j) is centred on window tower
// (i+1, j+1).
type SeedGrid [SeedSize][SeedSize]int

const seedCenter = SeedSize / 2

// BuildSeeds computes the 25 seeds of a window.
func BuildSeeds(e *WindowEnergies) SeedGrid {
	var seeds SeedGrid
	for ieta := 0; ieta < SeedSize; ieta++ {
		for iphi := 0; iphi < SeedSize; iphi++ {
			sum := 0
			for deta := 0; deta < 3; deta++ {
				for dphi := 0; dphi < 3; dphi++ {
					sum += e[ieta+deta][iphi+dphi]
				}
			}
			seeds[ieta][iphi] = sum
		}
	}
	return seeds
}

// Center returns the seed of the candidate tower.
func (s *SeedGrid) Center() int {
	return s[seedCenter][seedCenter]
}

// strictNeighbour tells whether the centre seed has to be strictly greater
// than the seed at (ieta, iphi). The upper-left half including the diagonal
// is strict, except the two diagonal cells below the centre. Mirrored
// positions therefore always disagree, so of two equal seeds exactly one
// survives.
func strictNeighbour(ieta, iphi int) bool {
	if iphi < ieta {
		return false
	}
	if ieta == iphi && ieta < seedCenter {
		return false
	}
	return true
}

// IsLocalMaximum applies the tie-breaking local maximum condition to the
// centre seed.
func IsLocalMaximum(s *SeedGrid) bool {
	center := s.Center()
	for ieta := 0; ieta < SeedSize; ieta++ {
		for iphi := 0; iphi < SeedSize; iphi++ {
			if ieta == seedCenter && iphi == seedCenter {
				continue
			}
			if strictNeighbour(ieta, iphi) {
				if center <= s[ieta][iphi] {
					return false
				}
			} else if center < s[ieta][iphi] {
				return false
			}
		}
	}
	return true
}
