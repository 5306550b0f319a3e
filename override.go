package configcake

import (
	"fmt"
	"os"
	"strings"

	"github.com/qetools/configcake/store"
)

const (
	prefixKey    = "prefix"
	separatorKey = "separator"
)

// ApplyOverrides applies environment variable overrides from environ to s.
//
// Overrides are opt-in: if s has no EnvOverrideSection, nothing happens. When
// the section exists, its prefix and separator keys are required. Every
// environ entry named <prefix><separator><section><separator><option>
// replaces the value of section/option in s, creating the section and option
// as needed. Entries that match the prefix but do not split into exactly
// three parts are silently skipped.
//
// Load calls this once, after all layers are merged; call it directly only
// when applying a custom environment snapshot.
func ApplyOverrides(s store.Store, environ map[string]string) error {
	if !s.HasSection(EnvOverrideSection) {
		return nil
	}

	prefix, err := s.Get(EnvOverrideSection, prefixKey)
	if err != nil {
		return fmt.Errorf("environment override info: %w", err)
	}
	separator, err := s.Get(EnvOverrideSection, separatorKey)
	if err != nil {
		return fmt.Errorf("environment override info: %w", err)
	}

	needle := prefix + separator
	for name, value := range environ {
		if !strings.HasPrefix(name, needle) {
			continue
		}
		parts := strings.SplitN(name, separator, 3)
		if len(parts) != 3 {
			continue
		}
		s.Set(parts[1], parts[2], value)
	}

	return nil
}

// environSnapshot captures the process environment as a map. The override
// pass consults a snapshot, not live lookups.
func environSnapshot() map[string]string {
	env := os.Environ()
	snapshot := make(map[string]string, len(env))
	for _, entry := range env {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		snapshot[name] = value
	}
	return snapshot
}
