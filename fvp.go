// Package fvp prepares the spatial and temporal inputs of an
// unstructured-grid, finite-volume coastal ocean model: vertical (sigma)
// coordinates, river and bed-roughness forcing, and output-probe
// configuration, each bound to a triangular mesh through nearest-node and
// nearest-element lookups.
package fvp

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/maseology/fvp/mesh"
	"github.com/maseology/mmio"
)

// Model accumulates a complete model setup over one mesh and time window.
// Mutators validate fully before assigning state; repeated calls replace
// their forcing record wholesale.
type Model struct {
	Start, End time.Time
	Grid       *mesh.Mesh
	Sigma      *Sigma    // nil until vertical coordinates are set
	Roughness  []float64 // bottom roughness length [m], per element
	River      *RiverForcing
	Probes     *Probes
}

func New(start, end time.Time, g *mesh.Mesh) (*Model, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidConfiguration)
	}
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end %v not after start %v", ErrInvalidConfiguration, end, start)
	}
	return &Model{Start: start, End: end, Grid: g}, nil
}

func (m *Model) Checkandprint(chkdirprfx string) {
	fmt.Println("Model summary:")
	fmt.Printf(" %v to %v\n", m.Start, m.End)
	fmt.Printf(" %s nodes, %s elements\n", mmio.Thousands(int64(m.Grid.Nn)), mmio.Thousands(int64(m.Grid.Ne)))
	if m.Sigma != nil {
		m.Sigma.CheckAndPrint()
		if m.Sigma.Lev != nil {
			writeFloats(chkdirprfx+"siglev.bin", m.Sigma.Lev)
		}
	}
	if m.Roughness != nil {
		writeFloats(chkdirprfx+"roughness.bin", m.Roughness)
	}
	if m.River != nil {
		m.River.CheckAndPrint()
	}
	if m.Probes != nil {
		fmt.Printf(" %d probes at %ds interval\n", len(m.Probes.Names), int64(m.Probes.Interval))
		g := make([]int32, 0, len(m.Probes.Grid))
		for _, row := range m.Probes.Grid {
			for _, k := range row {
				g = append(g, int32(k))
			}
		}
		writeInts(chkdirprfx+"probes.grid.bin", g)
	}
}

func (m *Model) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" model.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf(" model.SaveGob %v", err)
	}
	f.Close()
	return nil
}

func LoadModel(fp string) (*Model, error) {
	var m Model
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	enc := gob.NewDecoder(f)
	err = enc.Decode(&m)
	if err != nil {
		return nil, err
	}
	f.Close()
	return &m, nil
}
