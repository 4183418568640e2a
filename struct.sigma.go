package fvp

import (
	"fmt"
)

// sigma coordinate type tokens, as declared in the setup file
const (
	SigUniform     = "UNIFORM"
	SigGeneralized = "GENERALIZED"
	SigGeometric   = "GEOMETRIC"
	SigTanh        = "TANH"
)

// SigmaSpec is the parsed vertical coordinate specification.
type SigmaSpec struct {
	Nlev   int     // number of sigma levels (layers+1)
	Kind   string  // coordinate type token
	P      float64 // power exponent (GEOMETRIC)
	Du, Dl float64 // surface/bottom refinement scales [m] (TANH, GENERALIZED)
	Hmin   float64 // minimum constant depth [m] (GENERALIZED)
}

// Sigma holds the instantiated vertical coordinate system: one shared level
// set, or one per node where levels depend on local depth.
type Sigma struct {
	SigmaSpec
	Lev  []float64   // shared levels (all kinds but GENERALIZED)
	Levs [][]float64 // [node][level] (GENERALIZED)
}

// LevelsAt returns the level set applying at a node.
func (s *Sigma) LevelsAt(node int) []float64 {
	if s.Levs != nil {
		return s.Levs[node]
	}
	return s.Lev
}

func (s *Sigma) CheckAndPrint() {
	fmt.Printf(" sigma: %s, %d levels (%d layers)\n", s.Kind, s.Nlev, s.Nlev-1)
	if s.Levs != nil {
		fmt.Printf("  depth-dependent levels at %d nodes\n", len(s.Levs))
	}
}
