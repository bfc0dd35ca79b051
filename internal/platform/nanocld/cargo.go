package nanocld

import "context"

// InspectCargo returns the cargo with the given name.
func (c *RealClient) InspectCargo(ctx context.Context, name, namespace string) (*Cargo, error) {
	var cargo Cargo
	if err := c.getJSON(ctx, "inspect_cargo", "/cargoes/"+segment(name)+"/inspect", namespace, &cargo); err != nil {
		return nil, err
	}
	return &cargo, nil
}

// CreateCargo creates a cargo.
func (c *RealClient) CreateCargo(ctx context.Context, cargo CargoPartial, namespace string) error {
	return c.postJSON(ctx, "create_cargo", "/cargoes", namespace, cargo)
}
