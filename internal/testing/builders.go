package testing

import (
	"maps"
	"slices"

	"github.com/nxthat/nanocl/internal/config"
	"github.com/nxthat/nanocl/internal/util/ptr"
)

// NamespaceBuilder provides a fluent interface for constructing test documents.
// Each method returns a new builder (immutable) for chaining.
type NamespaceBuilder struct {
	cfg config.NamespaceConfig
}

// NewNamespaceBuilder creates a builder for an empty namespace document.
func NewNamespaceBuilder(name string) *NamespaceBuilder {
	return &NamespaceBuilder{
		cfg: config.NamespaceConfig{Type: config.TypeNamespace, Name: name},
	}
}

// WithCluster adds a cluster.
func (b *NamespaceBuilder) WithCluster(cluster *ClusterBuilder) *NamespaceBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Clusters = append(newBuilder.cfg.Clusters, cluster.Build())
	return newBuilder
}

// WithNetwork adds a namespace network.
func (b *NamespaceBuilder) WithNetwork(name string) *NamespaceBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Networks = append(newBuilder.cfg.Networks, config.NetworkConfig{Name: name})
	return newBuilder
}

// WithCargo adds a cargo running image.
func (b *NamespaceBuilder) WithCargo(name, image string) *NamespaceBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Cargoes = append(newBuilder.cfg.Cargoes, config.CargoConfig{
		Name:   name,
		Config: config.ContainerConfig{Image: image},
	})
	return newBuilder
}

// Build returns the document.
func (b *NamespaceBuilder) Build() *config.NamespaceConfig {
	cfg := b.clone().cfg
	return &cfg
}

func (b *NamespaceBuilder) clone() *NamespaceBuilder {
	return &NamespaceBuilder{cfg: config.NamespaceConfig{
		Type:     b.cfg.Type,
		Name:     b.cfg.Name,
		Clusters: slices.Clone(b.cfg.Clusters),
		Networks: slices.Clone(b.cfg.Networks),
		Cargoes:  slices.Clone(b.cfg.Cargoes),
	}}
}

// ClusterBuilder builds one cluster declaration.
type ClusterBuilder struct {
	cfg config.ClusterConfig
}

// Cluster starts a cluster declaration.
func Cluster(name string) *ClusterBuilder {
	return &ClusterBuilder{cfg: config.ClusterConfig{Name: name}}
}

// WithTemplates sets the declared proxy templates.
func (b *ClusterBuilder) WithTemplates(templates ...string) *ClusterBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.ProxyTemplates = templates
	return newBuilder
}

// WithVariable declares a variable.
func (b *ClusterBuilder) WithVariable(name, value string) *ClusterBuilder {
	newBuilder := b.clone()
	if newBuilder.cfg.Variables == nil {
		newBuilder.cfg.Variables = make(map[string]string)
	}
	newBuilder.cfg.Variables[name] = value
	return newBuilder
}

// WithJoin declares a join of cargo on network.
func (b *ClusterBuilder) WithJoin(network, cargo string) *ClusterBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.Joins = append(newBuilder.cfg.Joins, config.ClusterJoin{Network: network, Cargo: cargo})
	return newBuilder
}

// WithAutoStart sets the auto start flag.
func (b *ClusterBuilder) WithAutoStart(start bool) *ClusterBuilder {
	newBuilder := b.clone()
	newBuilder.cfg.AutoStart = ptr.Bool(start)
	return newBuilder
}

// Build returns the cluster declaration.
func (b *ClusterBuilder) Build() config.ClusterConfig {
	return b.clone().cfg
}

func (b *ClusterBuilder) clone() *ClusterBuilder {
	cfg := b.cfg
	cfg.ProxyTemplates = slices.Clone(b.cfg.ProxyTemplates)
	cfg.Joins = slices.Clone(b.cfg.Joins)
	if b.cfg.Variables != nil {
		cfg.Variables = maps.Clone(b.cfg.Variables)
	}
	if b.cfg.AutoStart != nil {
		cfg.AutoStart = ptr.To(*b.cfg.AutoStart)
	}
	return &ClusterBuilder{cfg: cfg}
}
