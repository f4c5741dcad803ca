package store

import (
	"strings"
	"sync"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
)

// Generator produces a populated species record for a key during compile.
// Implementations are dataset-specific: they own the quantum-chemistry
// raw inputs under the dataset's raw/ directory (see RawDataPath) and any
// cleanup of intermediate files they write.
type Generator interface {
	Run(key Key, datapath string) (*species.Record, error)
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func(key Key, datapath string) (*species.Record, error)

func (f GeneratorFunc) Run(key Key, datapath string) (*species.Record, error) {
	return f(key, datapath)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Generator{}
)

// RegisterGenerator registers a dataset's generator under its name,
// case-insensitively. Generators register themselves at process start; a
// later registration for the same name replaces the earlier one.
func RegisterGenerator(dataset string, g Generator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(dataset)] = g
}

func lookupGenerator(dataset string) (Generator, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	g, ok := registry[strings.ToLower(dataset)]
	return g, ok
}
