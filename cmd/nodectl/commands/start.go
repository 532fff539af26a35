package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/clusterinthecloud/nodectl/internal/util/async"
)

// Start returns the command that launches cluster nodes. Slurm invokes
// it as the ResumeProgram with the hostnames to bring up.
func Start() *cobra.Command {
	return &cobra.Command{
		Use:   "start <hostname>...",
		Short: "Launch cluster nodes and register their addresses",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildProvisioner()
			if err != nil {
				return err
			}
			serveMetrics(newLogger())

			// One independent task per node; a failure for one hostname
			// never blocks its siblings.
			tasks := make([]async.Task, len(args))
			for i, hostname := range args {
				tasks[i] = async.Task{
					Name: hostname,
					Func: func(ctx context.Context) error {
						_, err := p.StartNode(ctx, hostname)
						return err
					},
				}
			}
			return async.RunParallel(cmd.Context(), tasks)
		},
	}
}
