package commands

import (
	"github.com/spf13/cobra"

	"github.com/clusterinthecloud/nodectl/internal/provisioning"
)

// Stop returns the command that terminates cluster nodes. Slurm invokes
// it as the SuspendProgram with the hostnames to drain away.
func Stop() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <hostname>...",
		Short: "Terminate the backing instances of cluster nodes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := buildRuntime()
			if err != nil {
				return err
			}

			p := provisioning.New(provisioning.Params{
				Log:   rt.log,
				Cloud: rt.cloud,
				Space: rt.space,
			})
			// Per-host failures are logged inside; stop itself always
			// attempts every host.
			p.TerminateNodes(cmd.Context(), args)
			return nil
		},
	}
}
