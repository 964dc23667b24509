// Package config loads figart's configuration.
//
// Sources are layered with koanf, lowest precedence first: the embedded
// defaults.toml, defaults computed from the environment (the font dir),
// the user's config file, then FIGART_* environment variables. The merged
// tree is unmarshaled into Config and validated.
package config
