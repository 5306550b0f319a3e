package store

import "errors"

// DefaultSection is the name of the default scope. Its keys act as fallback
// values visible from every other section unless shadowed, and it is the
// scope cake-level keys are promoted into.
const DefaultSection = "DEFAULT"

var (
	// ErrFileNotFound is returned when a config file cannot be read.
	ErrFileNotFound = errors.New("config file not found")
	// ErrSectionNotFound is returned when a requested section does not exist.
	ErrSectionNotFound = errors.New("section not found")
	// ErrOptionNotFound is returned when a requested option is missing from a
	// section and from the default scope.
	ErrOptionNotFound = errors.New("option not found")
)

// Store describes the behaviour required from a sectioned key/value
// configuration store. Reads merge into existing content, with later reads
// winning per key, so a Store can accumulate an ordered layering of files.
type Store interface {
	// ReadFile parses the file at path and merges it into the store. A file
	// that cannot be read is an error wrapping ErrFileNotFound; partial
	// merges are never produced from a single file.
	ReadFile(path string) error
	// Get returns the value of option in section, falling back to the
	// default scope when the section does not define it. Values are
	// interpolated: %(name)s placeholders resolve against the section and
	// the default scope.
	Get(section, option string) (string, error)
	// Set stores value under section/option, creating both as needed.
	Set(section, option, value string)
	// HasSection reports whether the named section exists.
	HasSection(name string) bool
	// Sections lists all section names, excluding the default scope.
	Sections() []string
	// RemoveSection deletes the named section and its options.
	RemoveSection(name string)
	// Items returns the options visible from section, default-scope keys
	// included, with interpolation applied.
	Items(section string) (map[string]string, error)
	// Defaults returns the options of the default scope.
	Defaults() map[string]string
}
