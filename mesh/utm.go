package mesh

import (
	"fmt"

	"github.com/im7mortal/UTM"
)

// FromUTM builds a mesh from cartesian-native (UTM) node coordinates,
// converting to geographic coordinates on ingest. Northern hemisphere.
func FromUTM(x, y, h []float64, tri [][3]int, zone int) (*Mesh, error) {
	nn := len(x)
	if len(y) != nn {
		return nil, fmt.Errorf("%w: x %d, y %d", ErrShape, nn, len(y))
	}
	lon, lat := make([]float64, nn), make([]float64, nn)
	for i := range x {
		la, lo, err := UTM.ToLatLon(x[i], y[i], zone, "", true)
		if err != nil {
			return nil, fmt.Errorf("mesh.FromUTM (x,y)=(%f, %f): %v", x[i], y[i], err)
		}
		lon[i], lat[i] = lo, la
	}
	return New(lon, lat, h, tri)
}
