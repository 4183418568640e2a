package fvp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/fvp/sigma"
	"github.com/maseology/mmio"
)

// ReadSigmaFile parses a sigma coordinate setup file of "KEY = value" lines:
//
//	NUMBER OF SIGMA LEVELS = 11
//	SIGMA COORDINATE TYPE = UNIFORM
//
// plus SIGMA POWER, DU, DL and MIN CONSTANT DEPTH where the type needs them.
func ReadSigmaFile(fp string) (*SigmaSpec, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf(" ReadSigmaFile %s: %v", fp, err)
	}
	spec := &SigmaSpec{}
	for _, ln := range lns {
		s := strings.SplitN(ln, "=", 2)
		if len(s) != 2 {
			continue
		}
		k, v := strings.ToUpper(strings.TrimSpace(s[0])), strings.TrimSpace(s[1])
		fv := func() (float64, error) {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return 0., fmt.Errorf("%w: %s = %s", ErrInvalidConfiguration, k, v)
			}
			return f, nil
		}
		switch k {
		case "NUMBER OF SIGMA LEVELS":
			if spec.Nlev, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("%w: %s = %s", ErrInvalidConfiguration, k, v)
			}
		case "SIGMA COORDINATE TYPE":
			spec.Kind = strings.ToUpper(v)
		case "SIGMA POWER":
			if spec.P, err = fv(); err != nil {
				return nil, err
			}
		case "DU":
			if spec.Du, err = fv(); err != nil {
				return nil, err
			}
		case "DL":
			if spec.Dl, err = fv(); err != nil {
				return nil, err
			}
		case "MIN CONSTANT DEPTH":
			if spec.Hmin, err = fv(); err != nil {
				return nil, err
			}
		}
	}
	return spec, nil
}

// AddSigmaCoordinates instantiates the vertical coordinate system from a
// parsed specification and transitions the Model to its configured phase.
// GENERALIZED coordinates depend on local water depth and are computed per
// node; the other types share one level set across the mesh.
func (m *Model) AddSigmaCoordinates(spec *SigmaSpec) error {
	if spec == nil {
		return fmt.Errorf("%w: nil sigma spec", ErrInvalidConfiguration)
	}
	sig := &Sigma{SigmaSpec: *spec}
	switch spec.Kind {
	case SigUniform:
		lev, err := sigma.Uniform(spec.Nlev)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		sig.Lev = lev
	case SigGeometric:
		lev, err := sigma.Geometric(spec.Nlev, spec.P)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		sig.Lev = lev
	case SigTanh:
		lev, err := sigma.Tanh(spec.Nlev, spec.Dl, spec.Du)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		sig.Lev = lev
	case SigGeneralized:
		levs, err := m.buildGeneralized(spec)
		if err != nil {
			return err
		}
		sig.Levs = levs
	default:
		return fmt.Errorf("%w: unknown sigma coordinate type %q", ErrInvalidConfiguration, spec.Kind)
	}
	m.Sigma = sig
	return nil
}

// AddSigmaFile parses fp and adds the resulting coordinate system.
func (m *Model) AddSigmaFile(fp string) error {
	spec, err := ReadSigmaFile(fp)
	if err != nil {
		return err
	}
	return m.AddSigmaCoordinates(spec)
}

func (m *Model) buildGeneralized(spec *SigmaSpec) ([][]float64, error) {
	nn := m.Grid.Nn
	levs := make([][]float64, nn)
	bar := func() *uiprogress.Bar { // bars only worth rendering on big meshes
		if nn < 50000 {
			return nil
		}
		uiprogress.Start()
		return uiprogress.AddBar(nn).AppendCompleted().PrependElapsed()
	}()
	for i := 0; i < nn; i++ {
		lev, err := sigma.Generalized(spec.Nlev, spec.Dl, spec.Du, m.Grid.H[i], spec.Hmin)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrInvalidConfiguration, i, err)
		}
		levs[i] = lev
		if bar != nil {
			bar.Incr()
		}
	}
	if bar != nil {
		uiprogress.Stop()
	}
	return levs, nil
}

// SigmaUniform returns nlev evenly-spaced levels.
func (m *Model) SigmaUniform(nlev int) ([]float64, error) {
	lev, err := sigma.Uniform(nlev)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return lev, nil
}

// SigmaGeometric returns nlev levels under power-law spacing of exponent p.
func (m *Model) SigmaGeometric(nlev int, p float64) ([]float64, error) {
	lev, err := sigma.Geometric(nlev, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return lev, nil
}

// SigmaTanh returns nlev levels under tanh stretching.
func (m *Model) SigmaTanh(nlev int, dl, du float64) ([]float64, error) {
	lev, err := sigma.Tanh(nlev, dl, du)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return lev, nil
}

// SigmaGeneralized returns nlev levels for one local water depth h [m].
func (m *Model) SigmaGeneralized(nlev int, dl, du, h, hmin float64) ([]float64, error) {
	lev, err := sigma.Generalized(nlev, dl, du, h, hmin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return lev, nil
}
