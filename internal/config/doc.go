// Package config defines the desired-state documents applied by nanocl and
// the runtime settings of the CLI.
//
// A document is a YAML file whose type key selects its schema. The
// [NamespaceConfig] document describes a namespace with its clusters,
// networks and cargoes and is translated into the create payloads of the
// nanocld API. [Settings] are read from the environment.
package config
