// Package config defines the format-agnostic model of the master recipe
// catalog and the scoring options, along with the Loader interface that
// format-specific packages implement.
//
// The `config.Model` is the single source of truth for the `catalog`
// package. Concrete loaders for HCL and YAML live in `hcl_adapter` and
// `yaml_adapter`; LoadFS walks a file system and dispatches each file to the
// loader registered for its extension.
package config
