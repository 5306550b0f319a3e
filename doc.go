// Package configcake loads layered configuration files ("cakes") with
// optional environment variable overrides.
//
// A master config file names the available cakes. Each cake section declares
// a "layers" key: a comma-separated list of config files, merged from left to
// right so that later files override earlier ones. All other keys of the cake
// section are promoted into the default scope of the result before any layer
// is read, making them the foundation the layers build on.
//
// A master file looks like this:
//
//	[ENVIRONMENT VARIABLE OVERRIDE INFO]
//	# Overrides are environment variables of the form
//	#     <prefix><separator><section><separator><option>
//	# e.g. MyPrefix__Section-A__key3=value
//	prefix = MyPrefix
//	separator = __
//
//	[staging]
//	layers = base.config, staging.config
//
//	[demo]
//	layers = base.config, demo.config
//	name = demo environment
//
// Layer paths are resolved relative to the directory containing the master
// file, with a leading ~ expanding to the invoking user's home directory.
// Unlike a plain merge, every declared layer must exist; a missing file fails
// the whole load.
//
// If the merged result contains the reserved override-info section (declared
// in the master file or in any layer), matching environment variables are
// applied on top of the merged result, exactly once. Changing the environment
// after loading has no effect.
//
// Usage:
//
//	cfg, err := configcake.Load("master.config", "staging", nil)
//	if err != nil {
//		// ...
//	}
//	value, err := cfg.Get("Section-A", "key0")
package configcake
