package configcake

import "github.com/qetools/configcake/store"

// Section holds the options of one section as plain strings.
type Section map[string]string

// View is a one-time copy of a Store's data: section name to options, with
// the default scope under store.DefaultSection. It is not live; mutating the
// source store afterwards does not affect the view, and vice versa.
type View map[string]Section

// Get returns the value for option in section, falling back to the default
// scope when the section does not define it.
func (v View) Get(section, option string) (string, bool) {
	if sec, ok := v[section]; ok {
		if value, ok := sec[option]; ok {
			return value, true
		}
	}
	value, ok := v[store.DefaultSection][option]
	return value, ok
}

// Snapshot copies s into a View. Values are interpolated at copy time.
func Snapshot(s store.Store) (View, error) {
	view := View{store.DefaultSection: Section(s.Defaults())}
	for _, name := range s.Sections() {
		items, err := s.Items(name)
		if err != nil {
			return nil, err
		}
		view[name] = Section(items)
	}
	return view, nil
}
