package configcake

import (
	"fmt"

	"github.com/qetools/configcake/store"
)

const (
	// LayersKey is the reserved cake key listing layer files in merge order.
	LayersKey = "layers"
	// EnvOverrideSection is the reserved section declaring if and how
	// environment variable overrides work.
	EnvOverrideSection = "ENVIRONMENT VARIABLE OVERRIDE INFO"
)

// masterSectionsToKeep lists master config sections that survive pruning.
// The override section stays because override handling runs against the
// merged result, so any layer may rely on the master's declaration.
var masterSectionsToKeep = []string{EnvOverrideSection}

// Load loads the named cake from the master config file at masterPath and
// returns the merged store.
//
// The cake's own keys (everything except LayersKey, defaults and
// interpolation included) are promoted into the default scope first, then
// every layer is read in declared order with later layers overriding earlier
// ones, and finally environment variable overrides are applied once against
// the merged result.
//
// If into is nil a fresh IniStore is created; otherwise the given store is
// used and mutated in place, which lets callers inject a store with custom
// value handling. Because the store is mutated progressively, a failing layer
// read can leave earlier layers' content visible in a caller-supplied store.
//
// Errors wrap store.ErrFileNotFound when the master or any layer cannot be
// read, store.ErrSectionNotFound when cakeName is not a section of the
// master file, and store.ErrOptionNotFound when a required key is missing.
func Load(masterPath, cakeName string, into store.Store) (store.Store, error) {
	masterPath, err := expandUser(masterPath)
	if err != nil {
		return nil, err
	}

	s := into
	if s == nil {
		s = store.NewIniStore()
	}

	if err := s.ReadFile(masterPath); err != nil {
		return nil, fmt.Errorf("load master config: %w", err)
	}

	rawLayers, err := s.Get(cakeName, LayersKey)
	if err != nil {
		return nil, fmt.Errorf("cake %q: %w", cakeName, err)
	}

	layerPaths, err := resolveLayerPaths(masterPath, splitList(rawLayers))
	if err != nil {
		return nil, err
	}

	// Promote the cake's keys into the default scope so they act as the
	// foundation the layers build on. LayersKey is bookkeeping, consumed
	// above for resolution only.
	items, err := s.Items(cakeName)
	if err != nil {
		return nil, fmt.Errorf("cake %q: %w", cakeName, err)
	}
	for option, value := range items {
		if option == LayersKey {
			continue
		}
		s.Set(store.DefaultSection, option, value)
	}

	// Cake definitions and other master sections are bookkeeping, not
	// output data; they must not leak into the result.
	for _, name := range s.Sections() {
		if keepMasterSection(name) {
			continue
		}
		s.RemoveSection(name)
	}

	for _, path := range layerPaths {
		if err := s.ReadFile(path); err != nil {
			return nil, fmt.Errorf("load layer: %w", err)
		}
	}

	if err := ApplyOverrides(s, environSnapshot()); err != nil {
		return nil, err
	}

	return s, nil
}

func keepMasterSection(name string) bool {
	for _, keep := range masterSectionsToKeep {
		if name == keep {
			return true
		}
	}
	return false
}
