package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
)

// ErrDecode reports a malformed or incomplete species-record map.
var ErrDecode = errors.New("malformed species record")

// Encode serializes the persisted field set of a record to MessagePack.
// Array fields become raw little-endian float64 bytes (bin values);
// absent optional fields become nil.
func Encode(r *species.Record) ([]byte, error) {
	m := map[string]interface{}{
		"dataset":   r.Dataset,
		"elem":      r.Elem,
		"natom":     r.Natom,
		"basis":     r.Basis,
		"nelec":     r.Nelec,
		"nspin":     r.Nspin,
		"nexc":      r.Nexc,
		"cov_radii": r.CovRadii,
		"vdw_radii": r.VdwRadii,
		"mass":      r.Mass,
	}
	putScalar(m, "energy", r.Energy)
	putScalar(m, "ip", r.IP)
	putScalar(m, "mu", r.Mu)
	putScalar(m, "eta", r.Eta)
	putArray(m, "mo_energies", r.MOEnergies)
	putArray(m, "mo_occs", r.MOOccs)
	putArray(m, "rs", r.Rs)
	putArray(m, "dens_up", r.DensUp)
	putArray(m, "dens_dn", r.DensDn)
	putArray(m, "dens_tot", r.DensTot)
	putArray(m, "dens_mag", r.DensMag)
	putArray(m, "d_dens_up", r.DDensUp)
	putArray(m, "d_dens_dn", r.DDensDn)
	putArray(m, "d_dens_tot", r.DDensTot)
	putArray(m, "d_dens_mag", r.DDensMag)
	putArray(m, "lapl_up", r.LaplUp)
	putArray(m, "lapl_dn", r.LaplDn)
	putArray(m, "lapl_tot", r.LaplTot)
	putArray(m, "lapl_mag", r.LaplMag)
	putArray(m, "ked_up", r.KedUp)
	putArray(m, "ked_dn", r.KedDn)
	putArray(m, "ked_tot", r.KedTot)
	putArray(m, "ked_mag", r.KedMag)

	return msgpack.Marshal(m)
}

// Decode deserializes a species-record map and constructs the record,
// recomputing its derived fields.
func Decode(data []byte) (*species.Record, error) {
	var m map[string]interface{}
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	var d species.Data
	var err error
	if d.Dataset, err = reqString(m, "dataset"); err != nil {
		return nil, err
	}
	if d.Elem, err = reqString(m, "elem"); err != nil {
		return nil, err
	}
	if d.Basis, err = reqString(m, "basis"); err != nil {
		return nil, err
	}
	if d.Natom, err = reqInt(m, "natom"); err != nil {
		return nil, err
	}
	if d.Nelec, err = reqInt(m, "nelec"); err != nil {
		return nil, err
	}
	if d.Nspin, err = reqInt(m, "nspin"); err != nil {
		return nil, err
	}
	if d.Nexc, err = reqInt(m, "nexc"); err != nil {
		return nil, err
	}
	if d.CovRadii, err = optRadii(m, "cov_radii"); err != nil {
		return nil, err
	}
	if d.VdwRadii, err = optRadii(m, "vdw_radii"); err != nil {
		return nil, err
	}
	if v, ok := m["mass"]; ok && v != nil {
		if d.Mass, err = asFloat(v); err != nil {
			return nil, fmt.Errorf("%w: field mass: %v", ErrDecode, err)
		}
	}
	if d.Energy, err = optScalar(m, "energy"); err != nil {
		return nil, err
	}
	if d.IP, err = optScalar(m, "ip"); err != nil {
		return nil, err
	}
	if d.Mu, err = optScalar(m, "mu"); err != nil {
		return nil, err
	}
	if d.Eta, err = optScalar(m, "eta"); err != nil {
		return nil, err
	}

	arrays := []struct {
		key string
		dst *[]float64
	}{
		{"mo_energies", &d.MOEnergies}, {"mo_occs", &d.MOOccs}, {"rs", &d.Rs},
		{"dens_up", &d.DensUp}, {"dens_dn", &d.DensDn},
		{"dens_tot", &d.DensTot}, {"dens_mag", &d.DensMag},
		{"d_dens_up", &d.DDensUp}, {"d_dens_dn", &d.DDensDn},
		{"d_dens_tot", &d.DDensTot}, {"d_dens_mag", &d.DDensMag},
		{"lapl_up", &d.LaplUp}, {"lapl_dn", &d.LaplDn},
		{"lapl_tot", &d.LaplTot}, {"lapl_mag", &d.LaplMag},
		{"ked_up", &d.KedUp}, {"ked_dn", &d.KedDn},
		{"ked_tot", &d.KedTot}, {"ked_mag", &d.KedMag},
	}
	for _, a := range arrays {
		if *a.dst, err = optArray(m, a.key); err != nil {
			return nil, err
		}
	}

	rec, err := species.New(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return rec, nil
}

// ArrayToBytes exposes a float64 slice as its raw contiguous
// little-endian byte representation.
func ArrayToBytes(arr []float64) []byte {
	buf := make([]byte, 8*len(arr))
	for i, v := range arr {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

// BytesToArray reinterprets a raw byte buffer as a float64 slice.
func BytesToArray(buf []byte) ([]float64, error) {
	if len(buf)%8 != 0 {
		return nil, fmt.Errorf("buffer length %d is not a multiple of 8", len(buf))
	}
	arr := make([]float64, len(buf)/8)
	for i := range arr {
		arr[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[8*i:]))
	}
	return arr, nil
}

func putScalar(m map[string]interface{}, key string, v *float64) {
	if v == nil {
		m[key] = nil
		return
	}
	m[key] = *v
}

func putArray(m map[string]interface{}, key string, arr []float64) {
	if arr == nil {
		m[key] = nil
		return
	}
	m[key] = ArrayToBytes(arr)
}

func reqString(m map[string]interface{}, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: missing field %q", ErrDecode, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q: expected string, got %T", ErrDecode, key, v)
	}
	return s, nil
}

func reqInt(m map[string]interface{}, key string) (int, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: missing field %q", ErrDecode, key)
	}
	n, err := asInt(v)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q: %v", ErrDecode, key, err)
	}
	return n, nil
}

func optScalar(m map[string]interface{}, key string) (*float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, err := asFloat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, key, err)
	}
	return &f, nil
}

func optArray(m map[string]interface{}, key string) ([]float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	buf, ok := v.([]byte)
	if !ok {
		return nil, fmt.Errorf("%w: field %q: expected raw bytes, got %T", ErrDecode, key, v)
	}
	arr, err := BytesToArray(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", ErrDecode, key, err)
	}
	return arr, nil
}

func optRadii(m map[string]interface{}, key string) (map[string]float64, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch vv := v.(type) {
	case map[string]float64:
		return vv, nil
	case map[string]interface{}:
		radii := make(map[string]float64, len(vv))
		for name, rv := range vv {
			f, err := asFloat(rv)
			if err != nil {
				return nil, fmt.Errorf("%w: field %q key %q: %v", ErrDecode, key, name, err)
			}
			radii[name] = f
		}
		return radii, nil
	default:
		return nil, fmt.Errorf("%w: field %q: expected map, got %T", ErrDecode, key, v)
	}
}

func asInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func asFloat(v interface{}) (float64, error) {
	switch f := v.(type) {
	case float64:
		return f, nil
	case float32:
		return float64(f), nil
	default:
		if n, err := asInt(v); err == nil {
			return float64(n), nil
		}
		return 0, fmt.Errorf("expected float, got %T", v)
	}
}
