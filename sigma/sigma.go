// Package sigma generates terrain-following vertical coordinate levels for
// unstructured finite-volume ocean model grids. Levels are dimensionless,
// spanning 0. at the surface to -1. at the bed.
package sigma

import (
	"errors"
	"math"

	"github.com/maseology/mmaths"
)

var (
	ErrLevels = errors.New("sigma: level count must be 2 or greater")
	ErrParam  = errors.New("sigma: invalid stretching parameter")
)

// Uniform returns nlev evenly-spaced levels on [0.,-1.]
func Uniform(nlev int) ([]float64, error) {
	if nlev < 2 {
		return nil, ErrLevels
	}
	lev := make([]float64, nlev)
	for k := 0; k < nlev; k++ {
		lev[k] = mmaths.LinearTransform(0., -1., float64(k)/float64(nlev-1))
	}
	lev[0] = 0.
	return lev, nil
}

// Geometric returns nlev levels following a power-law spacing of exponent p,
// concentrating resolution toward both the surface and the bed (p > 1).
// p = 1 recovers uniform spacing.
func Geometric(nlev int, p float64) ([]float64, error) {
	if nlev < 2 {
		return nil, ErrLevels
	}
	if p <= 0. {
		return nil, ErrParam
	}
	if p == 1. {
		return Uniform(nlev)
	}
	lev := make([]float64, nlev)
	split := (nlev + 1) / 2          // floor
	denom := float64(nlev+1)/2. - 1. // half-profile index scale
	for k := 1; k < split; k++ {     // lev[0] stays 0.
		lev[k] = -math.Pow(float64(k)/denom, p) / 2.
	}
	for k := split; k < nlev; k++ { // mirrored lower half
		lev[k] = math.Pow(float64(nlev-1-k)/denom, p)/2. - 1.
	}
	return lev, nil
}

// Tanh returns nlev levels under hyperbolic-tangent stretching; dl and du
// control layer compression at the bed and surface respectively.
func Tanh(nlev int, dl, du float64) ([]float64, error) {
	if nlev < 2 {
		return nil, ErrLevels
	}
	if dl <= 0. || du <= 0. {
		return nil, ErrParam
	}
	lev := make([]float64, nlev)
	x2 := math.Tanh(dl)
	x3 := x2 + math.Tanh(du)
	for k := 1; k < nlev; k++ {
		x1 := (dl+du)*float64(nlev-1-k)/float64(nlev-1) - dl
		lev[k] = (math.Tanh(x1)+x2)/x3 - 1.
	}
	return lev, nil
}

// Generalized returns nlev levels for the local water depth h [m]: uniform
// spacing where the water column is shallower than hmin [m], tanh stretching
// otherwise. Depth varies node to node, so callers apply this per node.
func Generalized(nlev int, dl, du, h, hmin float64) ([]float64, error) {
	if nlev < 2 {
		return nil, ErrLevels
	}
	if hmin <= 0. {
		return nil, ErrParam
	}
	if h < hmin {
		return Uniform(nlev)
	}
	return Tanh(nlev, dl, du)
}

// Layers returns the nlev-1 layer midpoints of a level set.
func Layers(lev []float64) []float64 {
	lay := make([]float64, len(lev)-1)
	for k := range lay {
		lay[k] = (lev[k] + lev[k+1]) / 2.
	}
	return lay
}
