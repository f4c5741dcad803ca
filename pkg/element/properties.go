package element

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Unit conversion factors to atomic units.
const (
	// Angstrom is one angstrom expressed in bohr.
	Angstrom = 1.8897261246257702
	// AMU is one unified atomic mass unit expressed in electron masses.
	AMU = 1822.888486209
)

//go:embed elements.csv
var elementsCSV []byte

// Properties holds the static per-element data bundled with the package.
// Radius maps are keyed by the reference-source name (e.g. "cordero",
// "bondi") and hold lengths in bohr; Mass is in electron masses. A source
// key maps to zero when the value is unknown for that element.
type Properties struct {
	CovRadii map[string]float64
	VdwRadii map[string]float64
	Mass     float64
}

// convertors translate a raw CSV cell to its in-memory value according to
// the unit declared for the column.
var convertors = map[string]func(string) (any, error){
	"int": func(s string) (any, error) { return strconv.Atoi(s) },
	"str": func(s string) (any, error) { return strings.TrimSpace(s), nil },
	"float": func(s string) (any, error) {
		return strconv.ParseFloat(s, 64)
	},
	"au": func(s string) (any, error) {
		return strconv.ParseFloat(s, 64)
	},
	"angstrom": func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		return v * Angstrom, err
	},
	"2angstrom": func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		return v * Angstrom / 2, err
	},
	"angstrom**3": func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		return v * Angstrom * Angstrom * Angstrom, err
	},
	"amu": func(s string) (any, error) {
		v, err := strconv.ParseFloat(s, 64)
		return v * AMU, err
	},
}

var (
	loadOnce sync.Once
	loadErr  error
	byNumber []Properties
)

// GetProperties returns the bundled properties for an element given as a
// symbol or decimal atomic number. The table is parsed once on first use.
func GetProperties(elem string) (*Properties, error) {
	sym, err := Canonicalize(elem)
	if err != nil {
		return nil, err
	}
	loadOnce.Do(func() {
		byNumber, loadErr = parseElementsCSV(elementsCSV)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	z := numbers[sym]
	p := byNumber[z]
	return &p, nil
}

// parseElementsCSV reads the bundled table: provenance rows (second column
// empty) precede a header row naming each column and a units row declaring
// each column's unit. One data row follows per atomic number, placeholder
// row zero included.
func parseElementsCSV(data []byte) ([]Properties, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("elements table: %w", err)
	}

	// Skip provenance rows.
	i := 0
	for ; i < len(rows); i++ {
		if len(rows[i]) > 1 && rows[i][1] != "" {
			break
		}
	}
	if len(rows)-i < 2 {
		return nil, fmt.Errorf("elements table: missing header or units row")
	}
	names := rows[i]
	units := rows[i+1]
	if len(units) != len(names) {
		return nil, fmt.Errorf("elements table: %d column names but %d units", len(names), len(units))
	}
	convert := make([]func(string) (any, error), len(units))
	for col, unit := range units {
		fn, ok := convertors[unit]
		if !ok {
			return nil, &LookupError{fmt.Sprintf("unknown unit %q for column %q", unit, names[col])}
		}
		convert[col] = fn
	}

	table := make([]Properties, MaxNumber+1)
	for _, row := range rows[i+2:] {
		z, err := strconv.Atoi(row[0])
		if err != nil || z < 0 || z > MaxNumber {
			return nil, fmt.Errorf("elements table: bad atomic number %q", row[0])
		}
		if len(row) > len(names) {
			return nil, fmt.Errorf("elements table: row %d has %d cells for %d columns", z, len(row), len(names))
		}
		p := Properties{
			CovRadii: make(map[string]float64),
			VdwRadii: make(map[string]float64),
		}
		for col, cell := range row {
			if cell == "" {
				continue
			}
			v, err := convert[col](cell)
			if err != nil {
				return nil, fmt.Errorf("elements table: column %q row %d: %w", names[col], z, err)
			}
			name := names[col]
			if !strings.HasPrefix(name, "cov_radius_") && !strings.HasPrefix(name, "vdw_radius_") && name != "mass" {
				continue
			}
			f, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("elements table: column %q row %d: unit %q is not numeric", name, z, units[col])
			}
			switch {
			case strings.HasPrefix(name, "cov_radius_"):
				p.CovRadii[strings.TrimPrefix(name, "cov_radius_")] = f
			case strings.HasPrefix(name, "vdw_radius_"):
				p.VdwRadii[strings.TrimPrefix(name, "vdw_radius_")] = f
			default:
				p.Mass = f
			}
		}
		table[z] = p
	}
	return table, nil
}
