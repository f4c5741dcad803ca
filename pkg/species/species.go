// Package species defines the record model for precomputed atomic and
// ionic electronic-structure properties. A record holds one species:
// one (dataset, element, charge, multiplicity, excitation) combination.
package species

import (
	"errors"
	"fmt"
)

// ErrChannelUnavailable reports a request for a spin channel that the
// record does not carry.
var ErrChannelUnavailable = errors.New("channel unavailable")

// Data is the persisted field set of a species record. It round-trips
// bit-exact through the codec; everything derived from it lives on Record
// and is recomputed on construction, never serialized.
type Data struct {
	// Species identity.
	Dataset string `json:"dataset"`
	Elem    string `json:"elem"`
	Natom   int    `json:"natom"`
	Basis   string `json:"basis"`
	Nelec   int    `json:"nelec"`
	Nspin   int    `json:"nspin"`
	Nexc    int    `json:"nexc"`

	// Static element properties, keyed by reference-source name.
	// Lengths in bohr, mass in electron masses.
	CovRadii map[string]float64 `json:"cov_radii"`
	VdwRadii map[string]float64 `json:"vdw_radii"`
	Mass     float64            `json:"mass"`

	// Electronic energies and conceptual-DFT properties. Optional.
	Energy *float64 `json:"energy,omitempty"`
	IP     *float64 `json:"ip,omitempty"`
	Mu     *float64 `json:"mu,omitempty"`
	Eta    *float64 `json:"eta,omitempty"`

	// Molecular orbital energies and occupations. Optional.
	MOEnergies []float64 `json:"mo_energies,omitempty"`
	MOOccs     []float64 `json:"mo_occs,omitempty"`

	// Radial grid shared by all channel arrays. Optional.
	Rs []float64 `json:"rs,omitempty"`

	// Electron density.
	DensUp  []float64 `json:"dens_up,omitempty"`
	DensDn  []float64 `json:"dens_dn,omitempty"`
	DensTot []float64 `json:"dens_tot,omitempty"`
	DensMag []float64 `json:"dens_mag,omitempty"`

	// Derivative of electron density.
	DDensUp  []float64 `json:"d_dens_up,omitempty"`
	DDensDn  []float64 `json:"d_dens_dn,omitempty"`
	DDensTot []float64 `json:"d_dens_tot,omitempty"`
	DDensMag []float64 `json:"d_dens_mag,omitempty"`

	// Laplacian of electron density.
	LaplUp  []float64 `json:"lapl_up,omitempty"`
	LaplDn  []float64 `json:"lapl_dn,omitempty"`
	LaplTot []float64 `json:"lapl_tot,omitempty"`
	LaplMag []float64 `json:"lapl_mag,omitempty"`

	// Kinetic energy density.
	KedUp  []float64 `json:"ked_up,omitempty"`
	KedDn  []float64 `json:"ked_dn,omitempty"`
	KedTot []float64 `json:"ked_tot,omitempty"`
	KedMag []float64 `json:"ked_mag,omitempty"`
}

// Record is a species record: the persisted data plus fields derived from
// it at construction time. Records are immutable after creation.
type Record struct {
	Data

	// Derived, never persisted.
	Charge int `json:"charge"`
	Mult   int `json:"mult"`
}

// New constructs a Record from its persisted data, computing the derived
// charge and multiplicity and validating the radial-grid invariants.
func New(d Data) (*Record, error) {
	if err := validate(&d); err != nil {
		return nil, err
	}
	return &Record{
		Data:   d,
		Charge: d.Natom - d.Nelec,
		Mult:   d.Nspin + 1,
	}, nil
}

func validate(d *Data) error {
	for i, r := range d.Rs {
		if r < 0 {
			return fmt.Errorf("radial grid: negative radius %g at index %d", r, i)
		}
		if i > 0 && r <= d.Rs[i-1] {
			return fmt.Errorf("radial grid: not strictly increasing at index %d", i)
		}
	}
	for _, ch := range channels(d) {
		if ch.arr == nil {
			continue
		}
		if len(ch.arr) != len(d.Rs) {
			return fmt.Errorf("%s: %d samples for %d grid points", ch.name, len(ch.arr), len(d.Rs))
		}
	}
	return nil
}

type channel struct {
	name string
	arr  []float64
}

func channels(d *Data) []channel {
	return []channel{
		{"dens_up", d.DensUp}, {"dens_dn", d.DensDn},
		{"dens_tot", d.DensTot}, {"dens_mag", d.DensMag},
		{"d_dens_up", d.DDensUp}, {"d_dens_dn", d.DDensDn},
		{"d_dens_tot", d.DDensTot}, {"d_dens_mag", d.DDensMag},
		{"lapl_up", d.LaplUp}, {"lapl_dn", d.LaplDn},
		{"lapl_tot", d.LaplTot}, {"lapl_mag", d.LaplMag},
		{"ked_up", d.KedUp}, {"ked_dn", d.KedDn},
		{"ked_tot", d.KedTot}, {"ked_mag", d.KedMag},
	}
}

// Channel returns the sample array for a channel family and spin variant,
// or ErrChannelUnavailable when the record does not carry it.
func (r *Record) Channel(f ChannelFamily, s Spin) ([]float64, error) {
	var arr []float64
	switch f {
	case Density:
		switch s {
		case SpinAlpha:
			arr = r.DensUp
		case SpinBeta:
			arr = r.DensDn
		case SpinTotal:
			arr = r.DensTot
		case SpinMagnetization:
			arr = r.DensMag
		}
	case DensityDerivative:
		switch s {
		case SpinAlpha:
			arr = r.DDensUp
		case SpinBeta:
			arr = r.DDensDn
		case SpinTotal:
			arr = r.DDensTot
		case SpinMagnetization:
			arr = r.DDensMag
		}
	case Laplacian:
		switch s {
		case SpinAlpha:
			arr = r.LaplUp
		case SpinBeta:
			arr = r.LaplDn
		case SpinTotal:
			arr = r.LaplTot
		case SpinMagnetization:
			arr = r.LaplMag
		}
	case KineticEnergyDensity:
		switch s {
		case SpinAlpha:
			arr = r.KedUp
		case SpinBeta:
			arr = r.KedDn
		case SpinTotal:
			arr = r.KedTot
		case SpinMagnetization:
			arr = r.KedMag
		}
	default:
		return nil, fmt.Errorf("invalid channel family %d", f)
	}
	if arr == nil {
		return nil, fmt.Errorf("%s for %q spin-orbitals: %w", f, s, ErrChannelUnavailable)
	}
	return arr, nil
}
