package crypto

import (
	"sort"
	"sync"
)

// Algorithm describes one registered cipher algorithm.
type Algorithm struct {
	// ID is the opaque identifier used everywhere else in the engine,
	// matching the OpenSSL cipher name (e.g. "aes-256-cbc").
	ID string

	// Description is a human-readable label shown in pickers and history.
	Description string

	// KeyLen is the key length in bytes, used by the native executor.
	KeyLen int
}

// registry holds registered cipher algorithms
var (
	registryMu sync.RWMutex
	registry   = make(map[string]Algorithm)
)

func init() {
	// Register built-in algorithms. The set mirrors what `openssl enc`
	// accepts so that both executors understand every identifier.
	Register(Algorithm{ID: "aes-256-cbc", Description: "AES with a 256-bit key in CBC mode", KeyLen: 32})
	Register(Algorithm{ID: "aes-192-cbc", Description: "AES with a 192-bit key in CBC mode", KeyLen: 24})
	Register(Algorithm{ID: "aes-128-cbc", Description: "AES with a 128-bit key in CBC mode", KeyLen: 16})
}

// Register adds an algorithm to the registry.
func Register(a Algorithm) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[a.ID] = a
}

// Lookup returns the algorithm registered under id.
func Lookup(id string) (Algorithm, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	a, ok := registry[id]
	return a, ok
}

// IsRegistered checks if an algorithm identifier is registered.
func IsRegistered(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// ListRegistered returns all registered algorithms sorted by identifier.
func ListRegistered() []Algorithm {
	registryMu.RLock()
	defer registryMu.RUnlock()

	algs := make([]Algorithm, 0, len(registry))
	for _, a := range registry {
		algs = append(algs, a)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i].ID < algs[j].ID })
	return algs
}
