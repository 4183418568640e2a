package fvp

import (
	"fmt"
	"time"
)

// RiverForcing holds river discharge forcing bound to mesh nodes.
type RiverForcing struct {
	Names       []string
	Positions   [][2]float64 // river mouth (lon,lat) [°]
	Nodes       []int        // nearest node per river
	T           []time.Time  // [date ID]
	Flux        [][]float64  // [dateID][riverID] [m³/s]
	Temperature [][]float64  // [dateID][riverID] [°C]
	Salinity    [][]float64  // [dateID][riverID] [PSU]
}

func (r *RiverForcing) CheckAndPrint() {
	nt := len(r.T)
	fmt.Println(" river forcing:")
	fmt.Printf("  %v to %v (%d timesteps)\n", r.T[0], r.T[nt-1], nt)
	for i, nm := range r.Names {
		sq := 0.
		for j := range r.T {
			sq += r.Flux[j][i]
		}
		fmt.Printf("  %s at node %d, mean flux %.3f m³/s\n", nm, r.Nodes[i], sq/float64(nt))
	}
}
