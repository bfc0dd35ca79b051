package testing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
)

// Call is one request served by a FakeDaemon.
type Call struct {
	Method    string
	Namespace string
	Target    string
	Payload   any
}

// String renders the call as Method(target).
func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Method, c.Target)
}

// IsRead reports whether the call only reads state.
func (c Call) IsRead() bool {
	return strings.HasPrefix(c.Method, "Inspect") || c.Method == "Version"
}

// FakeDaemon is an in-memory nanocld.Client.
//
// Inspecting an absent entity fails with a 404 APIError and creating an
// existing one fails with a 409, like the real daemon. Joins and
// sub resources require their cluster, network and cargo to exist.
// It is safe for concurrent use.
type FakeDaemon struct {
	mu sync.Mutex

	namespaces map[string]bool
	clusters   map[string]*nanocld.Cluster
	variables  map[string]nanocld.ClusterVar
	networks   map[string]nanocld.ClusterNetwork
	cargoes    map[string]nanocld.Cargo
	joins      map[string]bool
	started    map[string]int
	images     map[string]nanocld.CargoImage
	failures   map[string]error
	calls      []Call

	// PullEvents are streamed by CreateCargoImage.
	PullEvents []nanocld.PullEvent

	// OnCall, if set, runs before every call is served, outside the lock.
	OnCall func(Call)
}

var _ nanocld.Client = (*FakeDaemon)(nil)

// NewFakeDaemon creates an empty daemon.
func NewFakeDaemon() *FakeDaemon {
	return &FakeDaemon{
		namespaces: make(map[string]bool),
		clusters:   make(map[string]*nanocld.Cluster),
		variables:  make(map[string]nanocld.ClusterVar),
		networks:   make(map[string]nanocld.ClusterNetwork),
		cargoes:    make(map[string]nanocld.Cargo),
		joins:      make(map[string]bool),
		started:    make(map[string]int),
		images:     make(map[string]nanocld.CargoImage),
		failures:   make(map[string]error),
	}
}

func key(parts ...string) string {
	return strings.Join(parts, "/")
}

func scope(namespace string) string {
	if namespace == "" {
		return "global"
	}
	return namespace
}

func notFound(operation, what string) error {
	return &nanocld.APIError{Operation: operation, Status: http.StatusNotFound, Message: what + " not found"}
}

func conflict(operation, what string) error {
	return &nanocld.APIError{Operation: operation, Status: http.StatusConflict, Message: what + " already exists"}
}

// WithNamespace seeds a namespace.
func (d *FakeDaemon) WithNamespace(name string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.namespaces[name] = true
	return d
}

// WithCluster seeds a cluster with its linked templates.
func (d *FakeDaemon) WithCluster(namespace, name string, templates ...string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clusters[key(scope(namespace), name)] = &nanocld.Cluster{
		Key:            key(scope(namespace), name),
		Name:           name,
		Namespace:      scope(namespace),
		ProxyTemplates: slices.Clone(templates),
	}
	return d
}

// WithVariable seeds a cluster variable.
func (d *FakeDaemon) WithVariable(namespace, cluster, name, value string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), cluster, name)
	d.variables[k] = nanocld.ClusterVar{Key: k, ClusterKey: key(scope(namespace), cluster), Name: name, Value: value}
	return d
}

// WithNetwork seeds a cluster network.
func (d *FakeDaemon) WithNetwork(namespace, cluster, name string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), cluster, name)
	d.networks[k] = nanocld.ClusterNetwork{Key: k, Name: name, ClusterKey: key(scope(namespace), cluster)}
	return d
}

// WithCargo seeds a cargo.
func (d *FakeDaemon) WithCargo(namespace, name, image string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), name)
	d.cargoes[k] = nanocld.Cargo{Key: k, Name: name, Namespace: scope(namespace), Image: image, Replicas: 1}
	return d
}

// WithJoin seeds a cluster cargo join.
func (d *FakeDaemon) WithJoin(namespace, cluster, network, cargo string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.joins[key(scope(namespace), cluster, network, cargo)] = true
	return d
}

// WithImage seeds a pulled image.
func (d *FakeDaemon) WithImage(name string) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.images[name] = nanocld.CargoImage{ID: "sha256:" + name, RepoTags: []string{name}}
	return d
}

// FailOn makes every call to method on target return err.
// Targets are rendered like Call.Target, for example "c1/net1".
func (d *FakeDaemon) FailOn(method, target string, err error) *FakeDaemon {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures[method+" "+target] = err
	return d
}

// serve records the call and returns an injected failure if any.
// The caller must not hold the lock.
func (d *FakeDaemon) serve(call Call) error {
	if d.OnCall != nil {
		d.OnCall(call)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, call)
	return d.failures[call.Method+" "+call.Target]
}

// Calls returns every served call in serving order.
func (d *FakeDaemon) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.calls)
}

// Writes returns the served calls that change state, rendered as strings.
func (d *FakeDaemon) Writes() []string {
	var out []string
	for _, c := range d.Calls() {
		if !c.IsRead() {
			out = append(out, c.String())
		}
	}
	return out
}

// CallsTo returns the served calls of one method.
func (d *FakeDaemon) CallsTo(method string) []Call {
	var out []Call
	for _, c := range d.Calls() {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// ResetCalls forgets the served calls and keeps the state.
func (d *FakeDaemon) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// HasNamespace reports whether the namespace exists.
func (d *FakeDaemon) HasNamespace(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.namespaces[name]
}

// ClusterTemplates returns the templates linked to a cluster.
func (d *FakeDaemon) ClusterTemplates(namespace, cluster string) ([]string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.clusters[key(scope(namespace), cluster)]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.ProxyTemplates), true
}

// Variable returns the live value of a cluster variable.
func (d *FakeDaemon) Variable(namespace, cluster, name string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.variables[key(scope(namespace), cluster, name)]
	return v.Value, ok
}

// Joined reports whether a cargo is joined to a cluster network.
func (d *FakeDaemon) Joined(namespace, cluster, network, cargo string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.joins[key(scope(namespace), cluster, network, cargo)]
}

// StartCount returns how many times a cluster was started.
func (d *FakeDaemon) StartCount(namespace, cluster string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started[key(scope(namespace), cluster)]
}

// InspectNamespace implements nanocld.NamespaceManager.
func (d *FakeDaemon) InspectNamespace(_ context.Context, name string) (*nanocld.Namespace, error) {
	if err := d.serve(Call{Method: "InspectNamespace", Target: name}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.namespaces[name] {
		return nil, notFound("inspect_namespace", "namespace "+name)
	}
	return &nanocld.Namespace{Name: name}, nil
}

// CreateNamespace implements nanocld.NamespaceManager.
func (d *FakeDaemon) CreateNamespace(_ context.Context, name string) error {
	if err := d.serve(Call{Method: "CreateNamespace", Target: name, Payload: nanocld.NamespacePartial{Name: name}}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.namespaces[name] {
		return conflict("create_namespace", "namespace "+name)
	}
	d.namespaces[name] = true
	return nil
}

// InspectCluster implements nanocld.ClusterManager.
func (d *FakeDaemon) InspectCluster(_ context.Context, name, namespace string) (*nanocld.Cluster, error) {
	if err := d.serve(Call{Method: "InspectCluster", Namespace: namespace, Target: name}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.clusters[key(scope(namespace), name)]
	if !ok {
		return nil, notFound("inspect_cluster", "cluster "+name)
	}
	cp := *c
	cp.ProxyTemplates = slices.Clone(c.ProxyTemplates)
	return &cp, nil
}

// CreateCluster implements nanocld.ClusterManager.
func (d *FakeDaemon) CreateCluster(_ context.Context, cluster nanocld.ClusterPartial, namespace string) error {
	if err := d.serve(Call{Method: "CreateCluster", Namespace: namespace, Target: cluster.Name, Payload: cluster}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), cluster.Name)
	if _, ok := d.clusters[k]; ok {
		return conflict("create_cluster", "cluster "+cluster.Name)
	}
	d.clusters[k] = &nanocld.Cluster{
		Key:            k,
		Name:           cluster.Name,
		Namespace:      scope(namespace),
		ProxyTemplates: slices.Clone(cluster.ProxyTemplates),
	}
	return nil
}

// LinkProxyTemplateToCluster implements nanocld.ClusterManager.
func (d *FakeDaemon) LinkProxyTemplateToCluster(_ context.Context, cluster, template, namespace string) error {
	if err := d.serve(Call{Method: "LinkProxyTemplateToCluster", Namespace: namespace, Target: key(cluster, template)}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.clusters[key(scope(namespace), cluster)]
	if !ok {
		return notFound("link_proxy_template", "cluster "+cluster)
	}
	if slices.Contains(c.ProxyTemplates, template) {
		return conflict("link_proxy_template", "proxy template "+template)
	}
	c.ProxyTemplates = append(c.ProxyTemplates, template)
	return nil
}

// JoinClusterCargo implements nanocld.ClusterManager.
func (d *FakeDaemon) JoinClusterCargo(_ context.Context, cluster string, join nanocld.ClusterJoinPartial, namespace string) error {
	if err := d.serve(Call{Method: "JoinClusterCargo", Namespace: namespace, Target: key(cluster, join.Network, join.Cargo), Payload: join}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ns := scope(namespace)
	if _, ok := d.clusters[key(ns, cluster)]; !ok {
		return notFound("join_cluster_cargo", "cluster "+cluster)
	}
	if _, ok := d.networks[key(ns, cluster, join.Network)]; !ok {
		return notFound("join_cluster_cargo", "network "+join.Network)
	}
	if _, ok := d.cargoes[key(ns, join.Cargo)]; !ok {
		return notFound("join_cluster_cargo", "cargo "+join.Cargo)
	}
	k := key(ns, cluster, join.Network, join.Cargo)
	if d.joins[k] {
		return conflict("join_cluster_cargo", "join "+join.Network+"/"+join.Cargo)
	}
	d.joins[k] = true
	return nil
}

// StartCluster implements nanocld.ClusterManager.
func (d *FakeDaemon) StartCluster(_ context.Context, cluster, namespace string) error {
	if err := d.serve(Call{Method: "StartCluster", Namespace: namespace, Target: cluster}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), cluster)
	if _, ok := d.clusters[k]; !ok {
		return notFound("start_cluster", "cluster "+cluster)
	}
	d.started[k]++
	return nil
}

// InspectClusterVar implements nanocld.ClusterVarManager.
func (d *FakeDaemon) InspectClusterVar(_ context.Context, cluster, name, namespace string) (*nanocld.ClusterVar, error) {
	if err := d.serve(Call{Method: "InspectClusterVar", Namespace: namespace, Target: key(cluster, name)}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.variables[key(scope(namespace), cluster, name)]
	if !ok {
		return nil, notFound("inspect_cluster_var", "variable "+name)
	}
	return &v, nil
}

// CreateClusterVar implements nanocld.ClusterVarManager.
func (d *FakeDaemon) CreateClusterVar(_ context.Context, cluster string, variable nanocld.ClusterVarPartial, namespace string) error {
	if err := d.serve(Call{Method: "CreateClusterVar", Namespace: namespace, Target: key(cluster, variable.Name), Payload: variable}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ns := scope(namespace)
	if _, ok := d.clusters[key(ns, cluster)]; !ok {
		return notFound("create_cluster_var", "cluster "+cluster)
	}
	k := key(ns, cluster, variable.Name)
	if _, ok := d.variables[k]; ok {
		return conflict("create_cluster_var", "variable "+variable.Name)
	}
	d.variables[k] = nanocld.ClusterVar{Key: k, ClusterKey: key(ns, cluster), Name: variable.Name, Value: variable.Value}
	return nil
}

// InspectClusterNetwork implements nanocld.ClusterNetworkManager.
func (d *FakeDaemon) InspectClusterNetwork(_ context.Context, cluster, name, namespace string) (*nanocld.ClusterNetwork, error) {
	if err := d.serve(Call{Method: "InspectClusterNetwork", Namespace: namespace, Target: key(cluster, name)}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.networks[key(scope(namespace), cluster, name)]
	if !ok {
		return nil, notFound("inspect_cluster_network", "network "+name)
	}
	return &n, nil
}

// CreateClusterNetwork implements nanocld.ClusterNetworkManager.
func (d *FakeDaemon) CreateClusterNetwork(_ context.Context, cluster string, network nanocld.ClusterNetworkPartial, namespace string) error {
	if err := d.serve(Call{Method: "CreateClusterNetwork", Namespace: namespace, Target: key(cluster, network.Name), Payload: network}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	ns := scope(namespace)
	if _, ok := d.clusters[key(ns, cluster)]; !ok {
		return notFound("create_cluster_network", "cluster "+cluster)
	}
	k := key(ns, cluster, network.Name)
	if _, ok := d.networks[k]; ok {
		return conflict("create_cluster_network", "network "+network.Name)
	}
	d.networks[k] = nanocld.ClusterNetwork{Key: k, Name: network.Name, ClusterKey: key(ns, cluster)}
	return nil
}

// InspectCargo implements nanocld.CargoManager.
func (d *FakeDaemon) InspectCargo(_ context.Context, name, namespace string) (*nanocld.Cargo, error) {
	if err := d.serve(Call{Method: "InspectCargo", Namespace: namespace, Target: name}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.cargoes[key(scope(namespace), name)]
	if !ok {
		return nil, notFound("inspect_cargo", "cargo "+name)
	}
	return &c, nil
}

// CreateCargo implements nanocld.CargoManager.
func (d *FakeDaemon) CreateCargo(_ context.Context, cargo nanocld.CargoPartial, namespace string) error {
	if err := d.serve(Call{Method: "CreateCargo", Namespace: namespace, Target: cargo.Name, Payload: cargo}); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key(scope(namespace), cargo.Name)
	if _, ok := d.cargoes[k]; ok {
		return conflict("create_cargo", "cargo "+cargo.Name)
	}
	replicas := 1
	if cargo.Replicas != nil {
		replicas = *cargo.Replicas
	}
	d.cargoes[k] = nanocld.Cargo{Key: k, Name: cargo.Name, Namespace: scope(namespace), Image: cargo.Config.Image, Replicas: replicas}
	return nil
}

// InspectCargoImage implements nanocld.CargoImageManager.
func (d *FakeDaemon) InspectCargoImage(_ context.Context, name string) (*nanocld.CargoImage, error) {
	if err := d.serve(Call{Method: "InspectCargoImage", Target: name}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	img, ok := d.images[name]
	if !ok {
		return nil, notFound("inspect_cargo_image", "image "+name)
	}
	return &img, nil
}

// CreateCargoImage implements nanocld.CargoImageManager.
// It streams PullEvents and stores the image once the stream is built.
func (d *FakeDaemon) CreateCargoImage(_ context.Context, name string) (*nanocld.PullStream, error) {
	if err := d.serve(Call{Method: "CreateCargoImage", Target: name}); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, event := range d.PullEvents {
		if err := enc.Encode(event); err != nil {
			return nil, err
		}
	}
	d.images[name] = nanocld.CargoImage{ID: "sha256:" + name, RepoTags: []string{name}}
	return nanocld.NewPullStream(io.NopCloser(&buf)), nil
}

// Version implements nanocld.SystemManager.
func (d *FakeDaemon) Version(_ context.Context) (*nanocld.Version, error) {
	if err := d.serve(Call{Method: "Version"}); err != nil {
		return nil, err
	}
	return &nanocld.Version{Arch: "amd64", Version: "0.0.0-fake", CommitID: "fake"}, nil
}
