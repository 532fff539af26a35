package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "startnode.yaml", `
region: uk-london-1
compartment_id: ocid1.compartment.oc1..aaaa
vcn_id: ocid1.vcn.oc1..bbbb
ad_root: "lVUu:UK-LONDON-1-AD-"
`)

	space, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "uk-london-1", space.Region)
	assert.Equal(t, "ocid1.compartment.oc1..aaaa", space.CompartmentID)
	assert.Equal(t, "ocid1.vcn.oc1..bbbb", space.VcnID)
	assert.Equal(t, "lVUu:UK-LONDON-1-AD-", space.ADRoot)
}

func TestLoad_MissingFields(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "startnode.yaml", `
region: uk-london-1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compartment_id")
	assert.Contains(t, err.Error(), "vcn_id")
	assert.Contains(t, err.Error(), "ad_root")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "startnode.yaml", "region: [unclosed")

	_, err := Load(path)
	require.Error(t, err)
}

func TestReadBootstrapAndSSHKeys(t *testing.T) {
	t.Parallel()
	bootstrap := writeFile(t, "bootstrap.sh", "#!/bin/bash\necho hello\n")
	keys := writeFile(t, "authorized_keys", "ssh-ed25519 AAAA... citc\n")

	data, err := ReadBootstrap(bootstrap)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echo hello")

	material, err := ReadSSHKeys(keys)
	require.NoError(t, err)
	assert.Contains(t, material, "ssh-ed25519")
}
