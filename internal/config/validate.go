package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Validate checks that every entity is named, that no create key is
// declared twice and that every cargo payload can be encoded.
// All problems are reported together.
func (n *NamespaceConfig) Validate() error {
	var errs []error

	if n.Name == "" {
		errs = append(errs, errors.New("namespace name is required"))
	}

	errs = append(errs, uniqueNames("cluster", n.Clusters, func(c ClusterConfig) string { return c.Name })...)
	errs = append(errs, uniqueNames("network", n.Networks, func(c NetworkConfig) string { return c.Name })...)
	errs = append(errs, uniqueNames("cargo", n.Cargoes, func(c CargoConfig) string { return c.Name })...)

	for _, cluster := range n.Clusters {
		errs = append(errs, cluster.validate()...)
	}

	for _, cargo := range n.Cargoes {
		if cargo.Replicas != nil && *cargo.Replicas < 0 {
			errs = append(errs, fmt.Errorf("cargo %q: replicas must not be negative, got %d", cargo.Name, *cargo.Replicas))
		}
		if _, err := json.Marshal(cargo.Partial()); err != nil {
			errs = append(errs, fmt.Errorf("cargo %q: config cannot be encoded: %w", cargo.Name, err))
		}
	}

	return errors.Join(errs...)
}

// validate checks the templates, variables and joins of one cluster.
func (c ClusterConfig) validate() []error {
	var errs []error

	templates := sets.New[string]()
	for _, template := range c.ProxyTemplates {
		if template == "" {
			errs = append(errs, fmt.Errorf("cluster %q: proxy template name is required", c.Name))
			continue
		}
		if templates.Has(template) {
			errs = append(errs, fmt.Errorf("cluster %q: proxy template %q declared twice", c.Name, template))
		}
		templates.Insert(template)
	}

	if _, ok := c.Variables[""]; ok {
		errs = append(errs, fmt.Errorf("cluster %q: variable name is required", c.Name))
	}

	joins := sets.New[ClusterJoin]()
	for _, join := range c.Joins {
		if join.Network == "" || join.Cargo == "" {
			errs = append(errs, fmt.Errorf("cluster %q: join requires both network and cargo, got %q", c.Name, join.String()))
			continue
		}
		if joins.Has(join) {
			errs = append(errs, fmt.Errorf("cluster %q: join %q declared twice", c.Name, join.String()))
		}
		joins.Insert(join)
	}

	return errs
}

// uniqueNames reports empty and duplicate names of a list of entities.
func uniqueNames[T any](kind string, items []T, name func(T) string) []error {
	var errs []error
	seen := sets.New[string]()
	for i, item := range items {
		n := name(item)
		if n == "" {
			errs = append(errs, fmt.Errorf("%s at index %d: name is required", kind, i))
			continue
		}
		if seen.Has(n) {
			errs = append(errs, fmt.Errorf("%s %q declared twice", kind, n))
		}
		seen.Insert(n)
	}
	return errs
}
