package fvp

// Probes holds the output-station configuration: fixed-location virtual
// sensors sampling named model variables at a shared interval.
type Probes struct {
	Names     []string
	Positions [][2]float64 // station (lon,lat) [°]
	Grid      [][]int      // [probe][variable] resolved node or element index
	Variables [][]string   // requested output variables, broadcast per probe
	Interval  float64      // sampling interval [s]
}
