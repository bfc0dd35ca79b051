package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nxthat/nanocl/internal/platform/nanocld"
)

// MockClient is a testify mock of nanocld.Client.
// Use it when a test cares about exact arguments rather than daemon state.
type MockClient struct {
	mock.Mock
}

var _ nanocld.Client = (*MockClient)(nil)

// InspectNamespace mocks nanocld.NamespaceManager.
func (m *MockClient) InspectNamespace(ctx context.Context, name string) (*nanocld.Namespace, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.Namespace), args.Error(1)
}

// CreateNamespace mocks nanocld.NamespaceManager.
func (m *MockClient) CreateNamespace(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// InspectCluster mocks nanocld.ClusterManager.
func (m *MockClient) InspectCluster(ctx context.Context, name, namespace string) (*nanocld.Cluster, error) {
	args := m.Called(ctx, name, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.Cluster), args.Error(1)
}

// CreateCluster mocks nanocld.ClusterManager.
func (m *MockClient) CreateCluster(ctx context.Context, cluster nanocld.ClusterPartial, namespace string) error {
	return m.Called(ctx, cluster, namespace).Error(0)
}

// LinkProxyTemplateToCluster mocks nanocld.ClusterManager.
func (m *MockClient) LinkProxyTemplateToCluster(ctx context.Context, cluster, template, namespace string) error {
	return m.Called(ctx, cluster, template, namespace).Error(0)
}

// JoinClusterCargo mocks nanocld.ClusterManager.
func (m *MockClient) JoinClusterCargo(ctx context.Context, cluster string, join nanocld.ClusterJoinPartial, namespace string) error {
	return m.Called(ctx, cluster, join, namespace).Error(0)
}

// StartCluster mocks nanocld.ClusterManager.
func (m *MockClient) StartCluster(ctx context.Context, cluster, namespace string) error {
	return m.Called(ctx, cluster, namespace).Error(0)
}

// InspectClusterVar mocks nanocld.ClusterVarManager.
func (m *MockClient) InspectClusterVar(ctx context.Context, cluster, name, namespace string) (*nanocld.ClusterVar, error) {
	args := m.Called(ctx, cluster, name, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.ClusterVar), args.Error(1)
}

// CreateClusterVar mocks nanocld.ClusterVarManager.
func (m *MockClient) CreateClusterVar(ctx context.Context, cluster string, variable nanocld.ClusterVarPartial, namespace string) error {
	return m.Called(ctx, cluster, variable, namespace).Error(0)
}

// InspectClusterNetwork mocks nanocld.ClusterNetworkManager.
func (m *MockClient) InspectClusterNetwork(ctx context.Context, cluster, name, namespace string) (*nanocld.ClusterNetwork, error) {
	args := m.Called(ctx, cluster, name, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.ClusterNetwork), args.Error(1)
}

// CreateClusterNetwork mocks nanocld.ClusterNetworkManager.
func (m *MockClient) CreateClusterNetwork(ctx context.Context, cluster string, network nanocld.ClusterNetworkPartial, namespace string) error {
	return m.Called(ctx, cluster, network, namespace).Error(0)
}

// InspectCargo mocks nanocld.CargoManager.
func (m *MockClient) InspectCargo(ctx context.Context, name, namespace string) (*nanocld.Cargo, error) {
	args := m.Called(ctx, name, namespace)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.Cargo), args.Error(1)
}

// CreateCargo mocks nanocld.CargoManager.
func (m *MockClient) CreateCargo(ctx context.Context, cargo nanocld.CargoPartial, namespace string) error {
	return m.Called(ctx, cargo, namespace).Error(0)
}

// InspectCargoImage mocks nanocld.CargoImageManager.
func (m *MockClient) InspectCargoImage(ctx context.Context, name string) (*nanocld.CargoImage, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.CargoImage), args.Error(1)
}

// CreateCargoImage mocks nanocld.CargoImageManager.
func (m *MockClient) CreateCargoImage(ctx context.Context, name string) (*nanocld.PullStream, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.PullStream), args.Error(1)
}

// Version mocks nanocld.SystemManager.
func (m *MockClient) Version(ctx context.Context) (*nanocld.Version, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nanocld.Version), args.Error(1)
}
