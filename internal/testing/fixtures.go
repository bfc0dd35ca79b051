package testing

import "github.com/nxthat/nanocl/internal/config"

// EndToEndNamespace returns the reference document: a new namespace n1 with
// cluster c1 (template t1), network net1, cargo w1 running nginx, a join of
// w1 on net1 and auto start.
func EndToEndNamespace() *config.NamespaceConfig {
	return NewNamespaceBuilder("n1").
		WithCluster(Cluster("c1").
			WithTemplates("t1").
			WithJoin("net1", "w1").
			WithAutoStart(true)).
		WithNetwork("net1").
		WithCargo("w1", "nginx").
		Build()
}

// EndToEndWrites are the state changing calls applying EndToEndNamespace to
// an empty daemon issues, in order.
var EndToEndWrites = []string{
	"CreateNamespace(n1)",
	"CreateCluster(c1)",
	"CreateClusterNetwork(c1/net1)",
	"CreateCargo(w1)",
	"JoinClusterCargo(c1/net1/w1)",
	"StartCluster(c1)",
}

// ConvergedDaemon returns a daemon already holding every entity of
// EndToEndNamespace.
func ConvergedDaemon() *FakeDaemon {
	return NewFakeDaemon().
		WithNamespace("n1").
		WithCluster("n1", "c1", "t1").
		WithNetwork("n1", "c1", "net1").
		WithCargo("n1", "w1", "nginx").
		WithJoin("n1", "c1", "net1", "w1")
}
