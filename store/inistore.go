package store

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/ini.v1"
)

var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
	SpaceBeforeInlineComment:   true,
}

// IniStore is a Store backed by an INI document model. Each ReadFile parses
// the target into a throwaway document and copies its raw values over,
// instead of re-reading previous sources, so manual mutations (Set,
// RemoveSection) survive later merges.
type IniStore struct {
	file *ini.File
}

// NewIniStore returns an empty IniStore.
func NewIniStore() *IniStore {
	return &IniStore{file: ini.Empty(loadOptions)}
}

// ReadFile parses the file at path and merges its sections into the store.
// Later values win over earlier ones for the same section/option pair.
func (s *IniStore) ReadFile(path string) error {
	parsed, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot read config file %s: %w", path, ErrFileNotFound)
		}
		return fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	for _, section := range parsed.Sections() {
		target := s.file.Section(section.Name())
		for _, key := range section.Keys() {
			// Raw values keep %(name)s placeholders unexpanded, so they
			// interpolate against the merged state at read time.
			target.Key(key.Name()).SetValue(key.Value())
		}
	}

	return nil
}

// Get returns the interpolated value of option in section, falling back to
// the default scope when the section does not define it.
func (s *IniStore) Get(section, option string) (string, error) {
	sec, err := s.section(section)
	if err != nil {
		return "", err
	}

	if sec.HasKey(option) {
		return sec.Key(option).String(), nil
	}

	defaults := s.file.Section(DefaultSection)
	if defaults.HasKey(option) {
		return defaults.Key(option).String(), nil
	}

	return "", fmt.Errorf("option %q in section %q: %w", option, section, ErrOptionNotFound)
}

// Set stores value under section/option, creating both as needed.
func (s *IniStore) Set(section, option, value string) {
	s.file.Section(section).Key(option).SetValue(value)
}

// HasSection reports whether the named section exists.
func (s *IniStore) HasSection(name string) bool {
	_, err := s.file.GetSection(name)
	return err == nil
}

// Sections lists all section names, excluding the default scope.
func (s *IniStore) Sections() []string {
	all := s.file.SectionStrings()
	names := make([]string, 0, len(all))
	for _, name := range all {
		if name == DefaultSection {
			continue
		}
		names = append(names, name)
	}
	return names
}

// RemoveSection deletes the named section and its options.
func (s *IniStore) RemoveSection(name string) {
	s.file.DeleteSection(name)
}

// Items returns the options visible from section: the default scope first,
// shadowed by the section's own options, all interpolated.
func (s *IniStore) Items(section string) (map[string]string, error) {
	sec, err := s.section(section)
	if err != nil {
		return nil, err
	}

	items := s.Defaults()
	if section != DefaultSection {
		for _, key := range sec.Keys() {
			items[key.Name()] = key.String()
		}
	}
	return items, nil
}

// Defaults returns a copy of the default scope's options, interpolated.
func (s *IniStore) Defaults() map[string]string {
	defaults := s.file.Section(DefaultSection)
	items := make(map[string]string, len(defaults.Keys()))
	for _, key := range defaults.Keys() {
		items[key.Name()] = key.String()
	}
	return items
}

func (s *IniStore) section(name string) (*ini.Section, error) {
	// The default scope always exists, even on an empty store.
	if name == DefaultSection {
		return s.file.Section(DefaultSection), nil
	}
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", name, ErrSectionNotFound)
	}
	return sec, nil
}
