// Package commands defines the CLI command structure and flag bindings.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/clusterinthecloud/nodectl/internal/config"
)

var (
	nodespacePath string
	bootstrapPath string
	sshKeysPath   string
	metricsAddr   string
	verbosity     int
)

// Root returns the root command for the nodectl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nodectl",
		Short: "Manage the lifecycle of elastic cluster compute nodes",
	}

	cmd.PersistentFlags().StringVar(&nodespacePath, "nodespace", config.DefaultNodespacePath, "path to the nodespace YAML file")
	cmd.PersistentFlags().StringVar(&bootstrapPath, "bootstrap", config.DefaultBootstrapPath, "path to the node bootstrap script")
	cmd.PersistentFlags().StringVar(&sshKeysPath, "ssh-keys", config.DefaultSSHKeysPath, "path to the authorized keys handed to new nodes")
	cmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on while running (empty disables)")
	cmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "log verbosity")

	cmd.AddCommand(Start())
	cmd.AddCommand(Stop())
	cmd.AddCommand(State())
	cmd.AddCommand(Version())

	return cmd
}
