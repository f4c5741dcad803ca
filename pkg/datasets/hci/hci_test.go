package hci

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/element"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

const rawBeryllium = `{
	"basis": "aug-cc-pVQZ",
	"energy": -14.667356,
	"mo_energies": [-4.7327, -0.3093],
	"mo_occs": [2.0, 2.0],
	"rs": [0.1, 0.5, 1.0, 2.0],
	"dens_up": [2.5, 0.5, 0.1, 0.005],
	"dens_dn": [2.5, 0.5, 0.1, 0.005],
	"dens_tot": [5.0, 1.0, 0.2, 0.01],
	"dens_mag": [0.0, 0.0, 0.0, 0.0]
}`

func TestCompileFromRawFile(t *testing.T) {
	datapath := t.TempDir()
	key := store.Key{Elem: "Be", Charge: 0, Mult: 1, Nexc: 0, Dataset: "hci"}

	rawPath, err := store.RawDataPath(datapath, key, ".json")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(rawPath), 0o755))
	require.NoError(t, os.WriteFile(rawPath, []byte(rawBeryllium), 0o644))

	db := store.New(datapath)
	require.NoError(t, db.Compile(key))

	rec, err := db.Load(key)
	require.NoError(t, err)
	assert.Equal(t, "Be", rec.Elem)
	assert.Equal(t, 4, rec.Natom)
	assert.Equal(t, 4, rec.Nelec)
	assert.Equal(t, 0, rec.Charge)
	assert.Equal(t, 1, rec.Mult)
	assert.Equal(t, "aug-cc-pVQZ", rec.Basis)
	require.NotNil(t, rec.Energy)
	assert.InDelta(t, -14.667356, *rec.Energy, 1e-12)
	assert.Equal(t, []float64{5.0, 1.0, 0.2, 0.01}, rec.DensTot)

	// Element properties come from the bundled table.
	props, err := element.GetProperties("Be")
	require.NoError(t, err)
	assert.Equal(t, props.Mass, rec.Mass)
	assert.Equal(t, props.CovRadii, rec.CovRadii)
}

func TestCompileCation(t *testing.T) {
	datapath := t.TempDir()
	key := store.Key{Elem: "Be", Charge: 1, Mult: 2, Nexc: 0, Dataset: "hci"}

	rawPath, err := store.RawDataPath(datapath, key, ".json")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(rawPath), 0o755))
	require.NoError(t, os.WriteFile(rawPath, []byte(`{"basis": "aug-cc-pVQZ"}`), 0o644))

	db := store.New(datapath)
	require.NoError(t, db.Compile(key))

	rec, err := db.Load(key)
	require.NoError(t, err)
	assert.Equal(t, 3, rec.Nelec)
	assert.Equal(t, 1, rec.Charge)
	assert.Equal(t, 2, rec.Mult)
}

func TestCompileMissingRawFile(t *testing.T) {
	db := store.New(t.TempDir())
	key := store.Key{Elem: "Be", Charge: 0, Mult: 1, Nexc: 0, Dataset: "hci"}

	err := db.Compile(key)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrUnknownDataset)
	assert.Contains(t, err.Error(), "raw data file")
}

func TestRunValidatesChannels(t *testing.T) {
	datapath := t.TempDir()
	key := store.Key{Elem: "Be", Charge: 0, Mult: 1, Nexc: 0, Dataset: "hci"}

	rawPath, err := store.RawDataPath(datapath, key, ".json")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(rawPath), 0o755))
	bad := `{"basis": "x", "rs": [0.1, 0.5], "dens_tot": [1.0]}`
	require.NoError(t, os.WriteFile(rawPath, []byte(bad), 0o644))

	err = store.New(datapath).Compile(key)
	require.Error(t, err)

	dbPath, err := store.RecordPath(datapath, key)
	require.NoError(t, err)
	assert.NoFileExists(t, dbPath)
}
