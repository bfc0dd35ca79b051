package nanocld

import "context"

// NamespaceManager defines the namespace calls.
type NamespaceManager interface {
	InspectNamespace(ctx context.Context, name string) (*Namespace, error)
	CreateNamespace(ctx context.Context, name string) error
}

// ClusterManager defines the cluster calls.
type ClusterManager interface {
	InspectCluster(ctx context.Context, name, namespace string) (*Cluster, error)
	CreateCluster(ctx context.Context, cluster ClusterPartial, namespace string) error
	// LinkProxyTemplateToCluster attaches an existing proxy template to a cluster.
	LinkProxyTemplateToCluster(ctx context.Context, cluster, template, namespace string) error
	// JoinClusterCargo attaches a cargo to a cluster network.
	// It fails with a conflict status if the cargo is already joined.
	JoinClusterCargo(ctx context.Context, cluster string, join ClusterJoinPartial, namespace string) error
	StartCluster(ctx context.Context, cluster, namespace string) error
}

// ClusterVarManager defines the cluster variable calls.
type ClusterVarManager interface {
	InspectClusterVar(ctx context.Context, cluster, name, namespace string) (*ClusterVar, error)
	CreateClusterVar(ctx context.Context, cluster string, variable ClusterVarPartial, namespace string) error
}

// ClusterNetworkManager defines the cluster network calls.
type ClusterNetworkManager interface {
	InspectClusterNetwork(ctx context.Context, cluster, name, namespace string) (*ClusterNetwork, error)
	CreateClusterNetwork(ctx context.Context, cluster string, network ClusterNetworkPartial, namespace string) error
}

// CargoManager defines the cargo calls.
type CargoManager interface {
	InspectCargo(ctx context.Context, name, namespace string) (*Cargo, error)
	CreateCargo(ctx context.Context, cargo CargoPartial, namespace string) error
}

// CargoImageManager defines the cargo image calls.
type CargoImageManager interface {
	InspectCargoImage(ctx context.Context, name string) (*CargoImage, error)
	// CreateCargoImage starts pulling an image. The caller must drain and close the stream.
	CreateCargoImage(ctx context.Context, name string) (*PullStream, error)
}

// SystemManager defines daemon level calls.
type SystemManager interface {
	Version(ctx context.Context) (*Version, error)
}

// Client combines all daemon interfaces.
type Client interface {
	NamespaceManager
	ClusterManager
	ClusterVarManager
	ClusterNetworkManager
	CargoManager
	CargoImageManager
	SystemManager
}
