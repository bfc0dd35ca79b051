package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const namespaceDoc = `
type: namespace
name: n1
clusters:
  - name: c1
    proxy_templates: [t1]
    variables:
      X: "1"
      A: "2"
    joins:
      - network: net1
        cargo: w1
    auto_start: true
networks:
  - name: net1
cargoes:
  - name: w1
    dns_entry: w1.local
    replicas: 2
    environnements: [FOO=bar]
    environment: [BAZ=qux]
    config:
      image: nginx
      Cmd: ["nginx", "-g", "daemon off;"]
`

func TestLoadFromBytes(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(namespaceDoc))
	require.NoError(t, err)

	assert.Equal(t, TypeNamespace, cfg.Type)
	assert.Equal(t, "n1", cfg.Name)
	require.Len(t, cfg.Clusters, 1)

	cluster := cfg.Clusters[0]
	assert.Equal(t, []string{"t1"}, cluster.ProxyTemplates)
	assert.Equal(t, []string{"A", "X"}, cluster.VariableNames())
	assert.Equal(t, []ClusterJoin{{Network: "net1", Cargo: "w1"}}, cluster.Joins)
	assert.True(t, cluster.ShouldStart())

	require.Len(t, cfg.Cargoes, 1)
	cargo := cfg.Cargoes[0]
	require.NotNil(t, cargo.DNSEntry)
	assert.Equal(t, "w1.local", *cargo.DNSEntry)
	require.NotNil(t, cargo.Replicas)
	assert.Equal(t, 2, *cargo.Replicas)
	assert.Equal(t, []string{"FOO=bar", "BAZ=qux"}, cargo.Environment)
	assert.Empty(t, cargo.EnvironmentAlias)
	assert.Equal(t, "nginx", cargo.Config.Image)
	assert.Contains(t, cargo.Config.Extra, "Cmd")
	assert.NotContains(t, cargo.Config.Extra, "image")
}

func TestLoadFromBytes_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind ErrorKind
	}{
		{name: "invalid yaml", doc: "type: [namespace", kind: KindParse},
		{name: "missing type", doc: "name: n1", kind: KindType},
		{name: "cargo document", doc: "type: cargo\nname: w1", kind: KindType},
		{name: "unknown type", doc: "type: vm\nname: v1", kind: KindType},
		{name: "wrong field type", doc: "type: namespace\nname: n1\nclusters: 3", kind: KindParse},
		{name: "missing name", doc: "type: namespace", kind: KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.doc))
			require.Error(t, err)

			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.kind, cfgErr.Kind)
			assert.True(t, IsConfigError(err))
			assert.False(t, IsIOError(err))
		})
	}
}

func TestLoadFromBytes_NonStringKeysInContainerConfig(t *testing.T) {
	doc := `
type: namespace
name: n1
cargoes:
  - name: w1
    config:
      image: nginx
      Labels: {1: one, true: yes}
      Mounts:
        - {2: two}
`
	cfg, err := LoadFromBytes([]byte(doc))
	require.NoError(t, err)

	extra := cfg.Cargoes[0].Config.Extra
	assert.Equal(t, map[string]any{"1": "one", "true": "yes"}, extra["Labels"])
	assert.Equal(t, []any{map[string]any{"2": "two"}}, extra["Mounts"])

	payload, err := json.Marshal(cfg.Cargoes[0].Partial())
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"Labels":{"1":"one","true":"yes"}`)
}

func TestLoadFromBytes_UnencodableContainerConfig(t *testing.T) {
	doc := `
type: namespace
name: n1
cargoes:
  - name: w1
    config:
      image: nginx
      CpuShares: .nan
`
	_, err := LoadFromBytes([]byte(doc))
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, KindValidation, cfgErr.Kind)
	assert.Contains(t, err.Error(), `cargo "w1": config cannot be encoded`)
}

func TestLoadFromBytes_UnsupportedType(t *testing.T) {
	_, err := LoadFromBytes([]byte("type: cargo\nname: w1"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestDetectType(t *testing.T) {
	typ, err := DetectType([]byte("type: Namespace\nname: n1"))
	require.NoError(t, err)
	assert.Equal(t, TypeNamespace, typ)

	typ, err = DetectType([]byte("type: cargo"))
	require.NoError(t, err)
	assert.Equal(t, TypeCargo, typ)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nanocl.yml")
	require.NoError(t, os.WriteFile(path, []byte(namespaceDoc), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "n1", cfg.Name)
}

func TestLoadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yml")

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, IsIOError(err))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), path)
}

func TestLoadFile_InvalidKeepsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("type: cargo"), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, path, cfgErr.Path)
	assert.Equal(t, KindType, cfgErr.Kind)
}
