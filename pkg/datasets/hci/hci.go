// Package hci provides the compile generator for the "hci" dataset:
// species properties computed with heat-bath configuration interaction.
// The upstream quantum-chemistry pipeline deposits one JSON raw file per
// species under the dataset's raw/ directory; the generator combines it
// with the bundled element properties into a species record.
//
// Importing the package registers the generator:
//
//	import _ "github.com/GabrielleBarskyGiles/AtomDB/pkg/datasets/hci"
package hci

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/element"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

func init() {
	store.RegisterGenerator("hci", store.GeneratorFunc(run))
}

// raw mirrors the layout of an upstream HCI output file. Arrays are
// plain JSON number lists; the radial grid and all channel arrays must
// agree in length.
type raw struct {
	Basis      string    `json:"basis"`
	Energy     *float64  `json:"energy"`
	IP         *float64  `json:"ip"`
	Mu         *float64  `json:"mu"`
	Eta        *float64  `json:"eta"`
	MOEnergies []float64 `json:"mo_energies"`
	MOOccs     []float64 `json:"mo_occs"`
	Rs         []float64 `json:"rs"`
	DensUp     []float64 `json:"dens_up"`
	DensDn     []float64 `json:"dens_dn"`
	DensTot    []float64 `json:"dens_tot"`
	DensMag    []float64 `json:"dens_mag"`
	DDensUp    []float64 `json:"d_dens_up"`
	DDensDn    []float64 `json:"d_dens_dn"`
	DDensTot   []float64 `json:"d_dens_tot"`
	DDensMag   []float64 `json:"d_dens_mag"`
	LaplUp     []float64 `json:"lapl_up"`
	LaplDn     []float64 `json:"lapl_dn"`
	LaplTot    []float64 `json:"lapl_tot"`
	LaplMag    []float64 `json:"lapl_mag"`
	KedUp      []float64 `json:"ked_up"`
	KedDn      []float64 `json:"ked_dn"`
	KedTot     []float64 `json:"ked_tot"`
	KedMag     []float64 `json:"ked_mag"`
}

func run(k store.Key, datapath string) (*species.Record, error) {
	path, err := store.RawDataPath(datapath, k, ".json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("raw data file: %w", err)
	}
	var in raw
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("raw data file %s: %w", path, err)
	}

	sym, err := element.Canonicalize(k.Elem)
	if err != nil {
		return nil, err
	}
	z, err := element.Number(sym)
	if err != nil {
		return nil, err
	}
	props, err := element.GetProperties(sym)
	if err != nil {
		return nil, err
	}

	return species.New(species.Data{
		Dataset:    k.Dataset,
		Elem:       sym,
		Natom:      z,
		Basis:      in.Basis,
		Nelec:      z - k.Charge,
		Nspin:      k.Mult - 1,
		Nexc:       k.Nexc,
		CovRadii:   props.CovRadii,
		VdwRadii:   props.VdwRadii,
		Mass:       props.Mass,
		Energy:     in.Energy,
		IP:         in.IP,
		Mu:         in.Mu,
		Eta:        in.Eta,
		MOEnergies: in.MOEnergies,
		MOOccs:     in.MOOccs,
		Rs:         in.Rs,
		DensUp:     in.DensUp,
		DensDn:     in.DensDn,
		DensTot:    in.DensTot,
		DensMag:    in.DensMag,
		DDensUp:    in.DDensUp,
		DDensDn:    in.DDensDn,
		DDensTot:   in.DDensTot,
		DDensMag:   in.DDensMag,
		LaplUp:     in.LaplUp,
		LaplDn:     in.LaplDn,
		LaplTot:    in.LaplTot,
		LaplMag:    in.LaplMag,
		KedUp:      in.KedUp,
		KedDn:      in.KedDn,
		KedTot:     in.KedTot,
		KedMag:     in.KedMag,
	})
}
