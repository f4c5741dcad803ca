// Package spline reconstructs continuous radial functions from the
// sparse samples stored on a species record. Reconstruction is ephemeral:
// a spline is fit per request and never cached or persisted.
package spline

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
)

// ErrOrbitalSubset reports a request to interpolate only a subset of
// occupied orbitals, which stored records cannot resolve.
var ErrOrbitalSubset = errors.New("interpolation over an orbital subset is not supported")

// DefaultLog reports whether a channel family interpolates in the log
// domain by default. Only the kinetic energy density does: it is
// guaranteed positive, and a log-domain fit keeps the reconstruction so.
func DefaultLog(f species.ChannelFamily) bool {
	return f == species.KineticEnergyDensity
}

type options struct {
	log      bool
	logSet   bool
	orbitals []int
}

// Option adjusts how a spline is fit.
type Option func(*options)

// WithLog overrides the family's default log-domain flag. A log-domain
// spline fits the natural logarithm of the samples and exponentiates on
// evaluation, so reconstructed values are strictly positive.
func WithLog(log bool) Option {
	return func(o *options) {
		o.log = log
		o.logSet = true
	}
}

// WithOrbitals restricts interpolation to the given occupied spin
// orbitals, indexed from 1. Not supported: New reports ErrOrbitalSubset.
func WithOrbitals(indices ...int) Option {
	return func(o *options) {
		o.orbitals = indices
	}
}

// Spline is a cubic spline through one spin channel of a record. Beyond
// the stored grid it extends linearly using the boundary value and
// derivative rather than clamping to the endpoint.
type Spline struct {
	cubic interp.NaturalCubic
	log   bool

	// Grid bounds and the fitted value and slope at each, captured at
	// fit time for the linear extension outside [xmin, xmax].
	xmin, xmax       float64
	loY, hiY         float64
	loSlope, hiSlope float64
}

// New fits a cubic spline through (radial grid, selected channel array).
func New(rec *species.Record, f species.ChannelFamily, s species.Spin, opts ...Option) (*Spline, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.orbitals != nil {
		return nil, fmt.Errorf("%s for spin-orbital subset %v: %w", f, o.orbitals, ErrOrbitalSubset)
	}

	ys, err := rec.Channel(f, s)
	if err != nil {
		return nil, err
	}
	xs := rec.Rs
	if len(xs) < 2 {
		return nil, fmt.Errorf("%s spline needs at least 2 grid points, record has %d", f, len(xs))
	}

	logMode := DefaultLog(f)
	if o.logSet {
		logMode = o.log
	}
	if logMode {
		fit := make([]float64, len(ys))
		for i, y := range ys {
			if y <= 0 {
				return nil, fmt.Errorf("log-domain %s spline requires strictly positive samples, got %g at r=%g", f, y, xs[i])
			}
			fit[i] = math.Log(y)
		}
		ys = fit
	}

	sp := &Spline{log: logMode}
	if err := sp.cubic.Fit(xs, ys); err != nil {
		return nil, err
	}
	sp.xmin, sp.xmax = xs[0], xs[len(xs)-1]
	sp.loY, sp.hiY = ys[0], ys[len(ys)-1]
	sp.loSlope = sp.cubic.PredictDerivative(sp.xmin)
	sp.hiSlope = sp.cubic.PredictDerivative(sp.xmax)
	return sp, nil
}

// At evaluates the reconstructed function at one point.
func (sp *Spline) At(x float64) float64 {
	var y float64
	switch {
	case x < sp.xmin:
		y = sp.loY + sp.loSlope*(x-sp.xmin)
	case x > sp.xmax:
		y = sp.hiY + sp.hiSlope*(x-sp.xmax)
	default:
		y = sp.cubic.Predict(x)
	}
	if sp.log {
		return math.Exp(y)
	}
	return y
}

// Evaluate evaluates the reconstructed function at each point.
func (sp *Spline) Evaluate(points []float64) []float64 {
	out := make([]float64, len(points))
	for i, x := range points {
		out[i] = sp.At(x)
	}
	return out
}

// Evaluate fits a spline for one channel and evaluates it at the given
// points in a single call.
func Evaluate(rec *species.Record, f species.ChannelFamily, s species.Spin, points []float64, opts ...Option) ([]float64, error) {
	sp, err := New(rec, f, s, opts...)
	if err != nil {
		return nil, err
	}
	return sp.Evaluate(points), nil
}
