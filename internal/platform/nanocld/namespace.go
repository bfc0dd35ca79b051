package nanocld

import "context"

// InspectNamespace returns the namespace with the given name.
func (c *RealClient) InspectNamespace(ctx context.Context, name string) (*Namespace, error) {
	var ns Namespace
	if err := c.getJSON(ctx, "inspect_namespace", "/namespaces/"+segment(name)+"/inspect", "", &ns); err != nil {
		return nil, err
	}
	return &ns, nil
}

// CreateNamespace creates a namespace.
func (c *RealClient) CreateNamespace(ctx context.Context, name string) error {
	return c.postJSON(ctx, "create_namespace", "/namespaces", "", NamespacePartial{Name: name})
}
