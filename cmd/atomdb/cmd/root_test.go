package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/config"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/store"
)

func TestKeyFromArgs(t *testing.T) {
	cfg = config.DefaultConfig()

	key, err := keyFromArgs([]string{"H", "0", "2"})
	require.NoError(t, err)
	assert.Equal(t, store.Key{Elem: "H", Charge: 0, Mult: 2, Nexc: 0, Dataset: config.DefaultDataset}, key)

	key, err = keyFromArgs([]string{"Be", "-1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, store.Key{Elem: "Be", Charge: -1, Mult: 2, Nexc: 3, Dataset: config.DefaultDataset}, key)

	_, err = keyFromArgs([]string{"H", "zero", "2"})
	assert.Error(t, err)
}
