// Package file provides the TOML-backed implementation of the
// driven.ConfigStore port. Values are stored in config.toml inside the
// restomenu config directory and exposed under dot-notation keys
// (catalog.path, menu.default_sort, ...).
package file
