package nanocld

import "context"

func clusterPath(cluster string) string {
	return "/clusters/" + segment(cluster)
}

// InspectCluster returns the cluster with the given name.
func (c *RealClient) InspectCluster(ctx context.Context, name, namespace string) (*Cluster, error) {
	var cluster Cluster
	if err := c.getJSON(ctx, "inspect_cluster", clusterPath(name)+"/inspect", namespace, &cluster); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// CreateCluster creates a cluster with its initial proxy templates.
func (c *RealClient) CreateCluster(ctx context.Context, cluster ClusterPartial, namespace string) error {
	return c.postJSON(ctx, "create_cluster", "/clusters", namespace, cluster)
}

// LinkProxyTemplateToCluster attaches a proxy template to a cluster.
func (c *RealClient) LinkProxyTemplateToCluster(ctx context.Context, cluster, template, namespace string) error {
	path := clusterPath(cluster) + "/proxy/templates/" + segment(template)
	return c.postJSON(ctx, "link_proxy_template", path, namespace, nil)
}

// JoinClusterCargo attaches a cargo to a cluster network.
func (c *RealClient) JoinClusterCargo(ctx context.Context, cluster string, join ClusterJoinPartial, namespace string) error {
	return c.postJSON(ctx, "join_cluster_cargo", clusterPath(cluster)+"/join", namespace, join)
}

// StartCluster starts every cargo joined to a cluster.
func (c *RealClient) StartCluster(ctx context.Context, cluster, namespace string) error {
	return c.postJSON(ctx, "start_cluster", clusterPath(cluster)+"/start", namespace, nil)
}

// InspectClusterVar returns a cluster variable.
func (c *RealClient) InspectClusterVar(ctx context.Context, cluster, name, namespace string) (*ClusterVar, error) {
	var v ClusterVar
	path := clusterPath(cluster) + "/variables/" + segment(name)
	if err := c.getJSON(ctx, "inspect_cluster_var", path, namespace, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CreateClusterVar creates a cluster variable.
func (c *RealClient) CreateClusterVar(ctx context.Context, cluster string, variable ClusterVarPartial, namespace string) error {
	return c.postJSON(ctx, "create_cluster_var", clusterPath(cluster)+"/variables", namespace, variable)
}

// InspectClusterNetwork returns a cluster network.
func (c *RealClient) InspectClusterNetwork(ctx context.Context, cluster, name, namespace string) (*ClusterNetwork, error) {
	var network ClusterNetwork
	path := clusterPath(cluster) + "/networks/" + segment(name) + "/inspect"
	if err := c.getJSON(ctx, "inspect_cluster_network", path, namespace, &network); err != nil {
		return nil, err
	}
	return &network, nil
}

// CreateClusterNetwork creates a cluster network.
func (c *RealClient) CreateClusterNetwork(ctx context.Context, cluster string, network ClusterNetworkPartial, namespace string) error {
	return c.postJSON(ctx, "create_cluster_network", clusterPath(cluster)+"/networks", namespace, network)
}
