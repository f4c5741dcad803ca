package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimal() Data {
	return Data{
		Dataset: "hci",
		Elem:    "N",
		Natom:   7,
		Basis:   "cc-pVDZ",
		Nelec:   7,
		Nspin:   3,
		Nexc:    0,
	}
}

func TestNewDerivedFields(t *testing.T) {
	testCases := []struct {
		name       string
		natom      int
		nelec      int
		nspin      int
		wantCharge int
		wantMult   int
	}{
		{name: "neutral quartet", natom: 7, nelec: 7, nspin: 3, wantCharge: 0, wantMult: 4},
		{name: "cation", natom: 7, nelec: 6, nspin: 2, wantCharge: 1, wantMult: 3},
		{name: "anion", natom: 7, nelec: 8, nspin: 2, wantCharge: -1, wantMult: 3},
		{name: "closed shell", natom: 10, nelec: 10, nspin: 0, wantCharge: 0, wantMult: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := minimal()
			d.Natom = tc.natom
			d.Nelec = tc.nelec
			d.Nspin = tc.nspin

			rec, err := New(d)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCharge, rec.Charge)
			assert.Equal(t, tc.wantMult, rec.Mult)
		})
	}
}

func TestNewValidatesRadialGrid(t *testing.T) {
	d := minimal()
	d.Rs = []float64{0.1, 0.5, 0.5}
	_, err := New(d)
	assert.Error(t, err, "non-increasing grid")

	d.Rs = []float64{-0.1, 0.5, 1.0}
	_, err = New(d)
	assert.Error(t, err, "negative radius")

	d.Rs = []float64{0.1, 0.5, 1.0}
	d.DensTot = []float64{1.0, 2.0}
	_, err = New(d)
	assert.Error(t, err, "channel length mismatch")

	d.DensTot = []float64{1.0, 2.0, 3.0}
	_, err = New(d)
	assert.NoError(t, err)
}

func TestChannelSelection(t *testing.T) {
	d := minimal()
	d.Rs = []float64{0.1, 0.5, 1.0}
	d.DensUp = []float64{1.0, 2.0, 3.0}
	d.DensTot = []float64{2.0, 4.0, 6.0}
	d.KedMag = []float64{0.0, 0.1, 0.2}
	rec, err := New(d)
	require.NoError(t, err)

	up, err := rec.Channel(Density, SpinAlpha)
	require.NoError(t, err)
	assert.Equal(t, d.DensUp, up)

	tot, err := rec.Channel(Density, SpinTotal)
	require.NoError(t, err)
	assert.Equal(t, d.DensTot, tot)

	mag, err := rec.Channel(KineticEnergyDensity, SpinMagnetization)
	require.NoError(t, err)
	assert.Equal(t, d.KedMag, mag)

	_, err = rec.Channel(Density, SpinBeta)
	assert.ErrorIs(t, err, ErrChannelUnavailable)
	_, err = rec.Channel(Laplacian, SpinTotal)
	assert.ErrorIs(t, err, ErrChannelUnavailable)
}

func TestEnumNames(t *testing.T) {
	for _, name := range []string{"dens", "d_dens", "lapl", "ked"} {
		f, err := ParseChannelFamily(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	_, err := ParseChannelFamily("density")
	assert.Error(t, err)

	for _, name := range []string{"a", "b", "ab", "m"} {
		s, err := ParseSpin(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	_, err = ParseSpin("alpha")
	assert.Error(t, err)
}
