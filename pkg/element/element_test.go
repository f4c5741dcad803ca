package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolNumberBijection(t *testing.T) {
	for z := 1; z <= MaxNumber; z++ {
		sym, err := Symbol(z)
		require.NoError(t, err, "Symbol(%d)", z)
		require.NotEmpty(t, sym)

		back, err := Number(sym)
		require.NoError(t, err, "Number(%q)", sym)
		assert.Equal(t, z, back)
	}
}

func TestNumberZeroIsReserved(t *testing.T) {
	_, err := Symbol(0)
	assert.Error(t, err)

	// The placeholder must never be reachable through a symbol lookup.
	_, err = Number("")
	assert.Error(t, err)
}

func TestLookupErrors(t *testing.T) {
	var lookupErr *LookupError

	_, err := Symbol(-1)
	require.ErrorAs(t, err, &lookupErr)
	_, err = Symbol(119)
	require.ErrorAs(t, err, &lookupErr)
	_, err = Number("Xx")
	require.ErrorAs(t, err, &lookupErr)
	_, err = Number("h")
	require.ErrorAs(t, err, &lookupErr)
}

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "H", want: "H"},
		{in: "1", want: "H"},
		{in: "Og", want: "Og"},
		{in: "118", want: "Og"},
		{in: "0", wantErr: true},
		{in: "119", wantErr: true},
		{in: "hydrogen", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := Canonicalize(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "Canonicalize(%q)", tc.in)
			continue
		}
		require.NoError(t, err, "Canonicalize(%q)", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestGetProperties(t *testing.T) {
	props, err := GetProperties("H")
	require.NoError(t, err)

	// Mass is stored in electron masses, radii in bohr.
	assert.InDelta(t, 1.008*AMU, props.Mass, 1e-6)
	assert.InDelta(t, 0.31*Angstrom, props.CovRadii["cordero"], 1e-12)
	assert.InDelta(t, 0.25*Angstrom, props.CovRadii["slater"], 1e-12)
	assert.InDelta(t, 1.20*Angstrom, props.VdwRadii["bondi"], 1e-12)
	assert.InDelta(t, 1.10*Angstrom, props.VdwRadii["rt"], 1e-12)

	// Numeric element input works too.
	byNum, err := GetProperties("6")
	require.NoError(t, err)
	assert.InDelta(t, 12.011*AMU, byNum.Mass, 1e-6)

	// Blank cells stay absent from the radius maps.
	be, err := GetProperties("Be")
	require.NoError(t, err)
	assert.NotContains(t, be.VdwRadii, "bondi")
	assert.NotContains(t, be.VdwRadii, "rt")

	_, err = GetProperties("Zz")
	var lookupErr *LookupError
	assert.ErrorAs(t, err, &lookupErr)
}

func TestParseElementsCSVUnknownUnit(t *testing.T) {
	table := []byte("number,symbol,mass\nint,str,furlong\n1,H,1.008\n")
	_, err := parseElementsCSV(table)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Contains(t, lookupErr.Error(), "furlong")
}

func TestParseElementsCSVNonNumericPropertyUnit(t *testing.T) {
	table := []byte("number,symbol,cov_radius_test\nint,str,str\n1,H,big\n")
	_, err := parseElementsCSV(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestParseElementsCSVRaggedRow(t *testing.T) {
	table := []byte("number,symbol,mass\nint,str,amu\n1,H,1.008,0.31\n")
	_, err := parseElementsCSV(table)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestParseElementsCSVConvertors(t *testing.T) {
	table := []byte(
		"provenance line\n" +
			"number,symbol,mass,cov_radius_test,vdw_radius_test\n" +
			"int,str,amu,angstrom,2angstrom\n" +
			"1,H,2.0,1.0,1.0\n")
	parsed, err := parseElementsCSV(table)
	require.NoError(t, err)

	assert.InDelta(t, 2.0*AMU, parsed[1].Mass, 1e-9)
	assert.InDelta(t, Angstrom, parsed[1].CovRadii["test"], 1e-12)
	assert.InDelta(t, Angstrom/2, parsed[1].VdwRadii["test"], 1e-12)
}
