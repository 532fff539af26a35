package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot_RegistersCommands(t *testing.T) {
	root := Root()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "start")
	assert.Contains(t, names, "stop")
	assert.Contains(t, names, "state")
	assert.Contains(t, names, "version")
}

func TestStart_RequiresHostnames(t *testing.T) {
	root := Root()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"start"})

	err := root.Execute()
	require.Error(t, err)
}

func TestRoot_DefaultFlagValues(t *testing.T) {
	root := Root()

	flag := root.PersistentFlags().Lookup("nodespace")
	require.NotNil(t, flag)
	assert.Equal(t, "/etc/citc/startnode.yaml", flag.DefValue)
}
