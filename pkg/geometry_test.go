package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalCoordinates(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		eta    int
		phi    int
		region int
	}{
		{"module 1 first column", Position{Module: 1, FPGA: 0, LocalEta: 0, LocalPhi: 0}, -62, 1, 1},
		{"module 3 centre", Position{Module: 3, FPGA: 1, LocalEta: 3, LocalPhi: 5}, 14, 43, 1},
		{"module 4 last column", Position{Module: 4, FPGA: 3, LocalEta: 7, LocalPhi: 15}, 62, 127, 1},
		{"module 5 region 1", Position{Module: 5, FPGA: 0, LocalEta: 0, LocalPhi: 0}, 66, 1, 1},
		{"module 5 region 2 first", Position{Module: 5, FPGA: 0, LocalEta: 9, LocalPhi: 0}, 104, 2, 2},
		{"module 5 region 2 last", Position{Module: 5, FPGA: 0, LocalEta: 11, LocalPhi: 1}, 120, 6, 2},
		{"module 5 region 3", Position{Module: 5, FPGA: 0, LocalEta: 12, LocalPhi: 7}, 126, 30, 3},
		{"module 5 region 4 first", Position{Module: 5, FPGA: 0, LocalEta: 13, LocalPhi: 3}, 132, 28, 4},
		{"module 5 region 4 last", Position{Module: 5, FPGA: 3, LocalEta: 20, LocalPhi: 3}, 188, 124, 4},
		{"module 0 mirrors module 5", Position{Module: 0, FPGA: 0, LocalEta: 13, LocalPhi: 3}, -132, 28, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eta, phi, err := GlobalCoordinates(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.eta, eta)
			assert.Equal(t, tt.phi, phi)

			region, err := Region(tt.pos.Module, tt.pos.LocalEta)
			require.NoError(t, err)
			assert.Equal(t, tt.region, region)
		})
	}
}

func TestGlobalCoordinatesRejectsOutOfCore(t *testing.T) {
	positions := []Position{
		{Module: 6, FPGA: 0, LocalEta: 0, LocalPhi: 0},
		{Module: -1, FPGA: 0, LocalEta: 0, LocalPhi: 0},
		{Module: 2, FPGA: 0, LocalEta: 8, LocalPhi: 0},
		{Module: 2, FPGA: 0, LocalEta: -1, LocalPhi: 0},
		{Module: 5, FPGA: 0, LocalEta: 21, LocalPhi: 0},
		{Module: 2, FPGA: 4, LocalEta: 0, LocalPhi: 0},
		{Module: 2, FPGA: 0, LocalEta: 0, LocalPhi: 16},
		{Module: 5, FPGA: 0, LocalEta: 12, LocalPhi: 8},
		{Module: 5, FPGA: 0, LocalEta: 13, LocalPhi: 4},
	}
	for _, pos := range positions {
		_, _, err := GlobalCoordinates(pos)
		assert.Error(t, err, "%+v", pos)
	}
}

func TestEdgeRegionsCoverCore(t *testing.T) {
	next := 0
	for _, r := range edgeRegions {
		assert.Equal(t, next, r.first, "region %d", r.region)
		assert.LessOrEqual(t, r.first, r.last)
		next = r.last + 1
	}
	assert.Equal(t, 21, next)
}

func TestPositionTowerID(t *testing.T) {
	pos := Position{Module: 2, FPGA: 3, LocalEta: 4, LocalPhi: 5}
	assert.Equal(t, TowerID{Module: 2, Eta: 4, Phi: 53}, pos.TowerID())
}
