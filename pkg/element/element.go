// Package element provides the periodic-table lookup used to key species
// records: a bijection between atomic numbers 1..118 and element symbols,
// plus a loader for the static per-element properties bundled with the
// package (atomic mass, covalent radii, van der Waals radii).
package element

import (
	"fmt"
	"strconv"
)

// symbols maps atomic number to element symbol. Index 0 is a reserved
// placeholder and never a valid species element.
var symbols = [...]string{
	"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne", "Na",
	"Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca", "Sc", "Ti", "V",
	"Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br",
	"Kr", "Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag",
	"Cd", "In", "Sn", "Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr",
	"Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg", "Tl", "Pb", "Bi",
	"Po", "At", "Rn", "Fr", "Ra", "Ac", "Th", "Pa", "U", "Np", "Pu", "Am",
	"Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr", "Rf", "Db", "Sg", "Bh",
	"Hs", "Mt", "Ds", "Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// MaxNumber is the highest atomic number in the table.
const MaxNumber = len(symbols) - 1

// numbers is the inverse of symbols, built once at init.
var numbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z := 1; z < len(symbols); z++ {
		m[symbols[z]] = z
	}
	return m
}()

// LookupError reports an invalid element symbol, atomic number, or unit name.
type LookupError struct {
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}

// Symbol returns the element symbol for an atomic number in 1..118.
func Symbol(z int) (string, error) {
	if z < 1 || z > MaxNumber {
		return "", &LookupError{fmt.Sprintf("atomic number %d out of range 1..%d", z, MaxNumber)}
	}
	return symbols[z], nil
}

// Number returns the atomic number for an element symbol.
func Number(symbol string) (int, error) {
	z, ok := numbers[symbol]
	if !ok {
		return 0, &LookupError{fmt.Sprintf("unknown element symbol %q", symbol)}
	}
	return z, nil
}

// Canonicalize normalizes an element given as either a symbol ("H") or a
// decimal atomic number ("1") to its canonical symbol.
func Canonicalize(elem string) (string, error) {
	if z, err := strconv.Atoi(elem); err == nil {
		return Symbol(z)
	}
	if _, err := Number(elem); err != nil {
		return "", err
	}
	return elem, nil
}
