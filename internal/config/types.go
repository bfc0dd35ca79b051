package config

import (
	"fmt"
	"slices"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
	"github.com/nxthat/nanocl/internal/util/ptr"
)

// Type identifies the schema of a document.
type Type string

// Document types
const (
	TypeNamespace Type = "namespace"
	TypeCargo     Type = "cargo"
)

// NamespaceConfig is the root of one apply run.
type NamespaceConfig struct {
	Type     Type            `yaml:"type"`
	Name     string          `yaml:"name"`
	Clusters []ClusterConfig `yaml:"clusters,omitempty"`
	Networks []NetworkConfig `yaml:"networks,omitempty"`
	Cargoes  []CargoConfig   `yaml:"cargoes,omitempty"`
}

// ClusterConfig declares a cluster and what should be attached to it.
type ClusterConfig struct {
	Name           string            `yaml:"name"`
	ProxyTemplates []string          `yaml:"proxy_templates,omitempty"`
	Variables      map[string]string `yaml:"variables,omitempty"`
	Joins          []ClusterJoin     `yaml:"joins,omitempty"`
	// AutoStart starts the cluster after its joins. Nil means do not start.
	AutoStart *bool `yaml:"auto_start,omitempty"`
}

// ClusterJoin attaches a cargo to one of the cluster networks.
type ClusterJoin struct {
	Network string `yaml:"network"`
	Cargo   string `yaml:"cargo"`
}

// NetworkConfig declares a network created in every cluster of the namespace.
type NetworkConfig struct {
	Name string `yaml:"name"`
}

// CargoConfig declares a workload.
type CargoConfig struct {
	Name        string          `yaml:"name"`
	DNSEntry    *string         `yaml:"dns_entry,omitempty"`
	Replicas    *int            `yaml:"replicas,omitempty"`
	Environment []string        `yaml:"environnements,omitempty"`
	Config      ContainerConfig `yaml:"config"`

	// EnvironmentAlias accepts the "environment" spelling. Values are appended
	// to Environment by Normalize.
	EnvironmentAlias []string `yaml:"environment,omitempty"`
}

// ContainerConfig is the workload configuration of a cargo. Keys other than
// image are kept verbatim and forwarded to the daemon.
type ContainerConfig struct {
	Image string         `yaml:"image,omitempty"`
	Extra map[string]any `yaml:",inline"`
}

// ShouldStart reports whether the cluster must be started after its joins.
func (c ClusterConfig) ShouldStart() bool {
	return ptr.Deref(c.AutoStart, false)
}

// VariableNames returns the declared variable names in sorted order.
func (c ClusterConfig) VariableNames() []string {
	names := make([]string, 0, len(c.Variables))
	for name := range c.Variables {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Partial returns the create payload of the cluster.
func (c ClusterConfig) Partial() nanocld.ClusterPartial {
	return nanocld.ClusterPartial{
		Name:           c.Name,
		ProxyTemplates: slices.Clone(c.ProxyTemplates),
	}
}

// VariablePartial returns the create payload of one declared variable.
func (c ClusterConfig) VariablePartial(name string) nanocld.ClusterVarPartial {
	return nanocld.ClusterVarPartial{Name: name, Value: c.Variables[name]}
}

// Partial returns the join payload.
func (j ClusterJoin) Partial() nanocld.ClusterJoinPartial {
	return nanocld.ClusterJoinPartial{Network: j.Network, Cargo: j.Cargo}
}

// String renders the join as network/cargo.
func (j ClusterJoin) String() string {
	return j.Network + "/" + j.Cargo
}

// Partial returns the create payload of the network.
func (n NetworkConfig) Partial() nanocld.ClusterNetworkPartial {
	return nanocld.ClusterNetworkPartial{Name: n.Name}
}

// Partial returns the create payload of the cargo.
func (c CargoConfig) Partial() nanocld.CargoPartial {
	return nanocld.CargoPartial{
		Name:        c.Name,
		DNSEntry:    c.DNSEntry,
		Replicas:    c.Replicas,
		Environment: slices.Clone(c.Environment),
		Config: nanocld.ContainerConfig{
			Image: c.Config.Image,
			Extra: c.Config.Extra,
		},
	}
}

// Normalize folds alias fields into their canonical field and turns nested
// container configuration mappings into string keyed maps.
func (n *NamespaceConfig) Normalize() {
	for i := range n.Cargoes {
		cargo := &n.Cargoes[i]
		if len(cargo.EnvironmentAlias) > 0 {
			cargo.Environment = append(cargo.Environment, cargo.EnvironmentAlias...)
			cargo.EnvironmentAlias = nil
		}
		for k, v := range cargo.Config.Extra {
			cargo.Config.Extra[k] = stringKeys(v)
		}
	}
}

// stringKeys rewrites mappings decoded with non-string keys, at any depth,
// so the value can be encoded as JSON. Keys are rendered with fmt.Sprint.
func stringKeys(v any) any {
	switch v := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range v {
			v[k] = stringKeys(val)
		}
		return v
	case []any:
		for i, val := range v {
			v[i] = stringKeys(val)
		}
		return v
	default:
		return v
	}
}
