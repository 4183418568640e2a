package mesh

// nearest lookups use planar euclidean distance on raw (lon,lat); adequate
// for small coastal domains and kept non-geodesic to reproduce legacy model
// setups. Ties go to the lowest index.

func nearest(x, y []float64, px, py float64) int {
	k, dmin := -1, 0.
	for i := range x {
		dx, dy := x[i]-px, y[i]-py
		if d := dx*dx + dy*dy; k < 0 || d < dmin {
			k, dmin = i, d
		}
	}
	return k
}

// NearestNode returns the node index closest to (lon,lat).
func (m *Mesh) NearestNode(lon, lat float64) (int, error) {
	if m.Nn == 0 {
		return -1, ErrOutOfDomain
	}
	return nearest(m.Lon, m.Lat, lon, lat), nil
}

// NearestElement returns the element index whose centroid is closest to (lon,lat).
func (m *Mesh) NearestElement(lon, lat float64) (int, error) {
	if m.Ne == 0 {
		return -1, ErrOutOfDomain
	}
	return nearest(m.Lonc, m.Latc, lon, lat), nil
}
