// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// The package also maps stored keys onto domain.TrackerSettings, applying
// BZBRIDGE_* environment overrides and optional .env files.
package file
