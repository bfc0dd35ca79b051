package nanocld

import "encoding/json"

// NamespacePartial is the payload of CreateNamespace.
type NamespacePartial struct {
	Name string `json:"name"`
}

// Namespace is a live namespace.
type Namespace struct {
	Name string `json:"name"`
}

// ClusterPartial is the payload of CreateCluster.
type ClusterPartial struct {
	Name           string   `json:"name"`
	ProxyTemplates []string `json:"proxy_templates,omitempty"`
}

// Cluster is a live cluster.
type Cluster struct {
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Namespace      string   `json:"namespace"`
	ProxyTemplates []string `json:"proxy_templates"`
}

// ClusterVarPartial is the payload of CreateClusterVar.
type ClusterVarPartial struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ClusterVar is a live cluster variable.
type ClusterVar struct {
	Key        string `json:"key"`
	ClusterKey string `json:"cluster_key"`
	Name       string `json:"name"`
	Value      string `json:"value"`
}

// ClusterNetworkPartial is the payload of CreateClusterNetwork.
type ClusterNetworkPartial struct {
	Name string `json:"name"`
}

// ClusterNetwork is a live cluster network.
type ClusterNetwork struct {
	Key             string `json:"key"`
	Name            string `json:"name"`
	ClusterKey      string `json:"cluster_key"`
	DockerNetworkID string `json:"docker_network_id"`
}

// ClusterJoinPartial associates a cargo with a cluster network.
type ClusterJoinPartial struct {
	Network string `json:"network"`
	Cargo   string `json:"cargo"`
}

// ContainerConfig is the workload configuration embedded in a cargo.
// Only the image is typed; every other field is forwarded to the daemon as is.
type ContainerConfig struct {
	Image string
	Extra map[string]any
}

// MarshalJSON flattens Extra next to the Image field.
func (c ContainerConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(c.Extra)+1)
	for k, v := range c.Extra {
		out[k] = v
	}
	if c.Image != "" {
		out["Image"] = c.Image
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the Image field out of the container configuration.
func (c *ContainerConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if image, ok := raw["Image"].(string); ok {
		c.Image = image
		delete(raw, "Image")
	}
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// CargoPartial is the payload of CreateCargo.
type CargoPartial struct {
	Name        string          `json:"name"`
	DNSEntry    *string         `json:"dns_entry,omitempty"`
	Replicas    *int            `json:"replicas,omitempty"`
	Environment []string        `json:"environnements,omitempty"`
	Config      ContainerConfig `json:"config"`
}

// Cargo is a live cargo.
type Cargo struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Namespace string `json:"namespace_name"`
	Image     string `json:"image_name"`
	Replicas  int    `json:"replicas"`
}

// CargoImage is an image known to the daemon.
type CargoImage struct {
	ID       string   `json:"Id"`
	RepoTags []string `json:"RepoTags"`
	Size     int64    `json:"Size"`
}

// ProgressDetail reports byte progress of one image layer.
type ProgressDetail struct {
	Current int64 `json:"current"`
	Total   int64 `json:"total"`
}

// PullEvent is one message of an image pull stream.
type PullEvent struct {
	Status         string          `json:"status,omitempty"`
	ID             string          `json:"id,omitempty"`
	ProgressDetail *ProgressDetail `json:"progress_detail,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// Version describes the daemon build.
type Version struct {
	Arch     string `json:"arch"`
	Version  string `json:"version"`
	CommitID string `json:"commit_id"`
}
