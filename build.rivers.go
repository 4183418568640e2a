package fvp

import (
	"fmt"
	"math"
	"time"

	"github.com/maseology/mmio"
)

// AddRivers validates and stores river forcing: one named river per position,
// with flux, temperature and salinity series aligned to a shared time axis of
// shape (len(ts), len(names)). The axis must be strictly increasing and cover
// the Model's [Start, End] window. Replaces any existing river record.
func (m *Model) AddRivers(positions [][2]float64, names []string, ts []time.Time, flux, temperature, salinity [][]float64) error {
	np := len(positions)
	if len(names) != np {
		return fmt.Errorf("%w: %d positions, %d names", ErrShapeMismatch, np, len(names))
	}
	seen := make(map[string]bool, np)
	for _, nm := range names {
		if seen[nm] {
			return fmt.Errorf("%w: river %q", ErrDuplicateName, nm)
		}
		seen[nm] = true
	}
	nt := len(ts)
	if nt == 0 {
		return fmt.Errorf("%w: empty time axis", ErrInvalidConfiguration)
	}
	for j := 1; j < nt; j++ {
		if !ts[j].After(ts[j-1]) {
			return fmt.Errorf("%w: time axis not strictly increasing at %d", ErrInvalidConfiguration, j)
		}
	}
	if ts[0].After(m.Start) || ts[nt-1].Before(m.End) {
		return fmt.Errorf("%w: river forcing %v to %v does not cover model window %v to %v",
			ErrInvalidConfiguration, ts[0], ts[nt-1], m.Start, m.End)
	}
	for _, a := range []struct {
		nam string
		dat [][]float64
	}{{"flux", flux}, {"temperature", temperature}, {"salinity", salinity}} {
		if len(a.dat) != nt {
			return fmt.Errorf("%w: %s has %d timesteps, axis has %d", ErrShapeMismatch, a.nam, len(a.dat), nt)
		}
		for j, row := range a.dat {
			if len(row) != np {
				return fmt.Errorf("%w: %s row %d has %d rivers, expected %d", ErrShapeMismatch, a.nam, j, len(row), np)
			}
		}
	}

	nds := make([]int, np)
	for i, p := range positions {
		n, err := m.Grid.NearestNode(p[0], p[1])
		if err != nil {
			return fmt.Errorf("fvp.AddRivers %s: %w", names[i], err)
		}
		nds[i] = n
	}

	m.River = &RiverForcing{
		Names:       append([]string(nil), names...),
		Positions:   append([][2]float64(nil), positions...),
		Nodes:       nds,
		T:           append([]time.Time(nil), ts...),
		Flux:        copy2d(flux),
		Temperature: copy2d(temperature),
		Salinity:    copy2d(salinity),
	}
	return nil
}

func copy2d(a [][]float64) [][]float64 {
	o := make([][]float64, len(a))
	for i, r := range a {
		o[i] = append([]float64(nil), r...)
	}
	return o
}

// ReadFluxCsv reads per-river csv files of "Date","Flow" (<name>.csv under
// csvdir) and aligns each series to ts; dates absent from a file are left NaN.
func ReadFluxCsv(csvdir string, names []string, ts []time.Time) ([][]float64, error) {
	nt := len(ts)
	q := make([][]float64, nt)
	for i := range q {
		q[i] = make([]float64, len(names))
		for j := range q[i] {
			q[i][j] = math.NaN()
		}
	}
	for j, nm := range names {
		fp := csvdir + nm + ".csv"
		if _, ok := mmio.FileExists(fp); !ok {
			return nil, fmt.Errorf("fvp.ReadFluxCsv: no flux series for %q (%s)", nm, fp)
		}
		c, err := mmio.ReadCsvDateFloat(fp)
		if err != nil {
			return nil, fmt.Errorf("fvp.ReadFluxCsv %s: %v", nm, err)
		}
		cc := 0
		for i, t := range ts {
			if v, ok := c[dayDate(t)]; ok {
				q[i][j] = v
				cc++
			}
		}
		fmt.Printf(" > river %s: %d of %d\n", nm, cc, nt)
	}
	return q, nil
}
