// Package config loads session settings from zeno.toml in the editor
// root, with ZENO_* environment variables taking precedence over the
// file. Configuration is advisory: a broken or missing file falls back
// to defaults and never fails session creation.
package config
