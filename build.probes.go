package fvp

import "fmt"

// variable-to-grid resolution is configuration, not guesswork: velocity-class
// output lives on element centroids, scalar output on nodes, and
// vertically-resolved variables need sigma coordinates in place first.
var (
	elementVars  = map[string]bool{"u": true, "v": true, "ua": true, "va": true, "tauc": true}
	verticalVars = map[string]bool{"u": true, "v": true, "w": true, "t1": true, "s1": true}
)

// AddProbes validates and stores the probe configuration: one station per
// named position, each resolved to a node or element index per requested
// variable. Replaces any existing probe record.
func (m *Model) AddProbes(positions [][2]float64, names []string, variables []string, interval float64) error {
	np := len(positions)
	if len(names) != np {
		return fmt.Errorf("%w: %d positions, %d names", ErrShapeMismatch, np, len(names))
	}
	if len(variables) == 0 {
		return fmt.Errorf("%w: no probe variables", ErrInvalidConfiguration)
	}
	if interval <= 0. {
		return fmt.Errorf("%w: probe interval %f", ErrInvalidConfiguration, interval)
	}
	seen := make(map[string]bool, np)
	for _, nm := range names {
		if seen[nm] {
			return fmt.Errorf("%w: probe %q", ErrDuplicateName, nm)
		}
		seen[nm] = true
	}
	for _, v := range variables {
		if verticalVars[v] && m.Sigma == nil {
			return fmt.Errorf("%w: probe variable %q is vertically resolved", ErrUnconfigured, v)
		}
	}

	grd := make([][]int, np)
	for i, p := range positions {
		row := make([]int, len(variables))
		for j, v := range variables {
			var k int
			var err error
			if elementVars[v] {
				k, err = m.Grid.NearestElement(p[0], p[1])
			} else {
				k, err = m.Grid.NearestNode(p[0], p[1])
			}
			if err != nil {
				return fmt.Errorf("fvp.AddProbes %s: %w", names[i], err)
			}
			row[j] = k
		}
		grd[i] = row
	}
	vars := make([][]string, np)
	for i := range vars {
		vars[i] = append([]string(nil), variables...)
	}

	m.Probes = &Probes{
		Names:     append([]string(nil), names...),
		Positions: append([][2]float64(nil), positions...),
		Grid:      grd,
		Variables: vars,
		Interval:  interval,
	}
	return nil
}
