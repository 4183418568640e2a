// Package mesh holds the horizontal unstructured (triangular) grid of a
// finite-volume coastal ocean model: node coordinates, bathymetric depths and
// element connectivity, with nearest-node/-element lookups used to bind
// geographic inputs to the grid.
package mesh

import (
	"errors"
	"fmt"
)

var (
	ErrShape        = errors.New("mesh: node array lengths differ")
	ErrConnectivity = errors.New("mesh: element references node out of range")
	ErrOutOfDomain  = errors.New("mesh: empty mesh")
)

// Mesh is immutable once built.
type Mesh struct {
	Lon, Lat, H    []float64 // node coordinates [°] and bathymetric depth [m]
	Tri            [][3]int  // element connectivity, 0-based node indices
	Lonc, Latc, Hc []float64 // element centroids (mean of the 3 nodes)
	Nn, Ne         int
}

// New builds a mesh from 0-based connectivity.
func New(lon, lat, h []float64, tri [][3]int) (*Mesh, error) {
	nn := len(lon)
	if len(lat) != nn || len(h) != nn {
		return nil, fmt.Errorf("%w: lon %d, lat %d, h %d", ErrShape, nn, len(lat), len(h))
	}
	ne := len(tri)
	m := &Mesh{
		Lon: lon, Lat: lat, H: h, Tri: tri,
		Lonc: make([]float64, ne), Latc: make([]float64, ne), Hc: make([]float64, ne),
		Nn: nn, Ne: ne,
	}
	for i, t := range tri {
		for _, n := range t {
			if n < 0 || n >= nn {
				return nil, fmt.Errorf("%w: element %d node %d (nnode %d)", ErrConnectivity, i, n, nn)
			}
		}
		m.Lonc[i] = (lon[t[0]] + lon[t[1]] + lon[t[2]]) / 3.
		m.Latc[i] = (lat[t[0]] + lat[t[1]] + lat[t[2]]) / 3.
		m.Hc[i] = (h[t[0]] + h[t[1]] + h[t[2]]) / 3.
	}
	return m, nil
}

// NewOneBased builds a mesh from 1-based (SMS-style) connectivity.
func NewOneBased(lon, lat, h []float64, tri [][3]int) (*Mesh, error) {
	t0 := make([][3]int, len(tri))
	for i, t := range tri {
		t0[i] = [3]int{t[0] - 1, t[1] - 1, t[2] - 1}
	}
	return New(lon, lat, h, t0)
}
