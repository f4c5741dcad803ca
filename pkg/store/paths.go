package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/element"
)

// Key identifies one species record in the database.
type Key struct {
	Elem    string // element symbol or decimal atomic number
	Charge  int
	Mult    int
	Nexc    int
	Dataset string
}

// RecordPath returns the database-entry path for a key, relative paths
// resolved against datapath:
//
//	<dataset-lower>/db/<Sym>_<charge>_<mult>_<nexc>.msg
//
// The element is canonicalized to its symbol first, so identical keys
// always resolve to identical paths.
func RecordPath(datapath string, k Key) (string, error) {
	sym, err := element.Canonicalize(k.Elem)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d_%d_%d.msg", sym, k.Charge, k.Mult, k.Nexc)
	return filepath.Join(datapath, strings.ToLower(k.Dataset), "db", name), nil
}

// RawDataPath returns the path of a generator-owned raw data file:
//
//	<dataset-lower>/raw/<zzz>_q<qqq>_m<mm>_k<kk>_sp_<dataset><suffix>
//
// The atomic number and charge are zero-padded to three digits, the
// multiplicity and excitation to two. The suffix is lowercased and gains
// a leading underscore unless it starts with a dot. The format and
// content of raw files belong to the dataset's generator.
func RawDataPath(datapath string, k Key, suffix string) (string, error) {
	if k.Dataset == "" {
		return "", fmt.Errorf("dataset cannot be unspecified")
	}
	sym, err := element.Canonicalize(k.Elem)
	if err != nil {
		return "", err
	}
	z, err := element.Number(sym)
	if err != nil {
		return "", err
	}
	suffix = strings.ToLower(suffix)
	if !strings.HasPrefix(suffix, ".") {
		suffix = "_" + suffix
	}
	name := fmt.Sprintf("%03d_q%03d_m%02d_k%02d_sp_%s%s", z, k.Charge, k.Mult, k.Nexc, k.Dataset, suffix)
	return filepath.Join(datapath, strings.ToLower(k.Dataset), "raw", name), nil
}
