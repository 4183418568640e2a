package fvp

import "fmt"

// AddBedRoughness sets a uniform bottom roughness length z0 [m] across all
// elements, replacing any existing field.
func (m *Model) AddBedRoughness(z0 float64) {
	r := make([]float64, m.Grid.Ne)
	for i := range r {
		r[i] = z0
	}
	m.Roughness = r
}

// AddBedRoughnessArray sets per-element bottom roughness [m]; the array
// length must equal the element count.
func (m *Model) AddBedRoughnessArray(z0 []float64) error {
	if len(z0) != m.Grid.Ne {
		return fmt.Errorf("%w: roughness %d, elements %d", ErrShapeMismatch, len(z0), m.Grid.Ne)
	}
	m.Roughness = append([]float64(nil), z0...)
	return nil
}
